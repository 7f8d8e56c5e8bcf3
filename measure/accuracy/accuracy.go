package accuracy

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/cwbudde/algo-fastlog"
	"golang.org/x/sync/errgroup"
)

const defaultSamples = 1 << 20

// ErrNonFinite reports that an approximation produced NaN or ±Inf for a
// finite positive sample. The per-sample division only becomes non-finite
// when a denominator polynomial evaluates to (near) zero inside the
// mantissa domain, so this surfaces a defective coefficient set.
var ErrNonFinite = errors.New("accuracy: non-finite approximation of finite sample")

// Config holds sweep parameters. Zero values select the defaults.
type Config struct {
	// Samples is the number of evenly spaced mantissa values in [1, 2).
	// Defaults to 2^20.
	Samples int

	// Workers is the number of concurrent workers. Defaults to
	// runtime.NumCPU() and is capped at Samples.
	Workers int
}

// Result holds the measured per-order maximum absolute errors.
type Result struct {
	// MaxError[i] is the worst-case |math.Log2(x) - approx(x)| for
	// order i+1 over the sampled domain.
	MaxError [fastlog.NumOrders]float64

	// Samples and Workers are the effective sweep parameters after
	// defaulting.
	Samples int
	Workers int
}

// ByOrder returns the measured maximum error for order o.
func (r Result) ByOrder(o fastlog.Order) float64 {
	return r.MaxError[o-1]
}

func normalizeConfig(cfg Config) Config {
	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Workers > cfg.Samples {
		cfg.Workers = cfg.Samples
	}
	return cfg
}

// MeasureMaxError sweeps all approximation orders over cfg.Samples evenly
// spaced values 1 + i/Samples and returns the per-order maximum absolute
// error against math.Log2.
//
// The index range is tiled into cfg.Workers contiguous partitions with the
// final partition absorbing the remainder, so the union of all partitions
// covers every sample exactly once. Workers share no mutable state; each
// owns one element of the partial-result slice. The reduction is a
// sequential elementwise maximum, which makes the result identical for
// any worker count.
func MeasureMaxError(cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	partials := make([][fastlog.NumOrders]float64, cfg.Workers)

	var g errgroup.Group
	for w := 0; w < cfg.Workers; w++ {
		start, end := partition(cfg.Samples, cfg.Workers, w)
		out := &partials[w]
		g.Go(func() error {
			return sweepRange(cfg.Samples, start, end, out)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Samples: cfg.Samples, Workers: cfg.Workers}
	for _, p := range partials {
		for i, e := range p {
			if e > res.MaxError[i] {
				res.MaxError[i] = e
			}
		}
	}

	return res, nil
}

// partition returns the half-open index range assigned to worker w out of
// workers total. Every worker receives samples/workers indices and the
// final worker additionally absorbs the remainder.
func partition(samples, workers, w int) (start, end int) {
	per := samples / workers
	start = w * per
	end = start + per
	if w == workers-1 {
		end = samples
	}
	return start, end
}

// sweepRange measures samples with indices in [start, end), accumulating
// the per-order running maximum into out. out is owned exclusively by the
// calling worker.
func sweepRange(samples, start, end int, out *[fastlog.NumOrders]float64) error {
	step := 1.0 / float64(samples)

	for i := start; i < end; i++ {
		x := 1.0 + float64(i)*step
		ref := math.Log2(x)

		for _, o := range fastlog.Orders() {
			approx := o.Log2(x)
			if math.IsNaN(approx) || math.IsInf(approx, 0) {
				return fmt.Errorf("%w: %v at x=%v", ErrNonFinite, o, x)
			}

			if diff := math.Abs(ref - approx); diff > out[o-1] {
				out[o-1] = diff
			}
		}
	}

	return nil
}
