// Command logerr measures the worst-case error of the fastlog
// approximations against math.Log2 and prints one row per order.
//
// Usage:
//
//	logerr [flags]
//
// Examples:
//
//	logerr
//	logerr -samples 100000000
//	logerr -samples 100000000 -workers 16
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-fastlog"
	"github.com/cwbudde/algo-fastlog/measure/accuracy"
)

func main() {
	samples := flag.Int("samples", 1<<20, "number of mantissa samples in [1, 2)")
	workers := flag.Int("workers", 0, "number of worker goroutines (0 = all CPUs)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: logerr [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Measures max absolute error of fastlog approximations against math.Log2.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	res, err := accuracy.MeasureMaxError(accuracy.Config{
		Samples: *samples,
		Workers: *workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logerr: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("samples: %d, workers: %d\n\n", res.Samples, res.Workers)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tMAX ERROR\tDOCUMENTED BOUND\tBITS")
	for _, o := range fastlog.Orders() {
		measured := res.ByOrder(o)
		bits := 0.0
		if measured > 0 {
			bits = -math.Log2(measured)
		}
		fmt.Fprintf(w, "%v\t%.6e\t%.6e\t%.1f\n", o, measured, o.MaxError(), bits)
	}
	w.Flush()
}
