// Package fastlog provides fast approximations of base-2, natural, and
// base-10 logarithms for float64 values.
//
// Each approximation decomposes its input into mantissa and exponent,
// evaluates a rational polynomial on the mantissa, and recombines the
// result. Six variants of increasing polynomial degree ([Order1] through
// [Order6]) trade arithmetic work against accuracy; the coefficients were
// fitted offline to minimize the worst-case error over the mantissa range
// and are compiled in as fixed tables.
//
// # Accuracy Characteristics
//
// Worst-case absolute error against math.Log2 over mantissas in [1, 2),
// as returned by [Order.MaxError] (the sweep maxima rounded up to true
// upper bounds):
//
//	Order1: 1.5e-3   (9 bits)
//	Order2: 3.5e-6   (18 bits)
//	Order3: 7.8e-9   (27 bits)
//	Order4: 1.8e-11  (36 bits)
//	Order5: 2e-14    (45 bits)
//	Order6: 6e-16    (50 bits)
//
// Order6 operates at the precision limit of float64: its numerator and
// denominator sums combine terms of widely differing magnitude, so
// cancellation near unity mantissas keeps the observed error above the
// theoretical bound of the fitted polynomial. This is inherent to
// double-precision summation and is documented rather than worked around.
//
// # Special Values
//
// Every input maps to a defined output; no variant ever signals an error:
//
//	Log2(NaN)  = NaN
//	Log2(+Inf) = +Inf
//	Log2(-Inf) = NaN
//	Log2(0)    = -Inf
//	Log2(x<0)  = NaN
//
// # Usage
//
// These functions are designed for performance-critical loops where the
// accuracy trade-off is acceptable. For applications requiring correctly
// rounded results, use the standard library math package instead. The
// empirical error bounds can be re-verified with the measure/accuracy
// package.
package fastlog
