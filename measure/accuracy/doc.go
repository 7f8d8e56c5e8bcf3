// Package accuracy measures the worst-case error of the fastlog
// approximations against the standard library's math.Log2.
//
// The sweep evaluates every approximation order over evenly spaced
// mantissa values in [1, 2). Sampling only the mantissa range is
// sufficient: the exponent term of the decomposition is exact, so the
// error of log2(m * 2^e) equals the error of log2(m).
//
// The sample domain is tiled into contiguous index ranges, one per worker
// goroutine. Each worker keeps a private running maximum per order and the
// partial maxima are reduced after all workers finish, so the measured
// result is independent of the worker count.
//
// # Usage
//
// Measure with the defaults and print the bound for one order:
//
//	res, err := accuracy.MeasureMaxError(accuracy.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.ByOrder(fastlog.Order3))
//
// A non-finite approximation of a finite positive sample aborts the sweep
// with an error wrapping [ErrNonFinite]: it means a denominator polynomial
// reached zero inside the mantissa domain, which indicates a faulty
// coefficient set rather than a measurement artifact.
package accuracy
