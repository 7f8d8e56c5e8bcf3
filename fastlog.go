package fastlog

import (
	"math"
	"strconv"
)

// Order selects the polynomial degree of the approximation. Higher orders
// spend more arithmetic per call for a smaller worst-case error.
type Order int

const (
	Order1 Order = 1 + iota
	Order2
	Order3
	Order4
	Order5
	Order6
)

// Orders returns the available approximation orders in ascending degree.
func Orders() []Order {
	return []Order{Order1, Order2, Order3, Order4, Order5, Order6}
}

// NumOrders is the number of approximation orders.
const NumOrders = 6

// String returns a short name like "order3".
func (o Order) String() string {
	if !o.valid() {
		return "order?"
	}
	return "order" + strconv.Itoa(int(o))
}

func (o Order) valid() bool {
	return o >= Order1 && o <= Order6
}

// coeffs returns the fitted coefficient set for o. Panics for orders
// outside [Order1, Order6]; an invalid order is a programmer error, not an
// input condition.
func (o Order) coeffs() *ratCoeffs {
	if !o.valid() {
		panic("fastlog: invalid order")
	}
	return &coeffTable[o-1]
}

// MaxError returns the documented worst-case absolute error of o.Log2
// against math.Log2. The bounds are empirical; see the measure/accuracy
// package to re-verify them.
func (o Order) MaxError() float64 {
	return o.coeffs().maxError
}

// Log2 returns an approximation of the base-2 logarithm of x.
//
// Special cases are:
//
//	Log2(NaN)  = NaN
//	Log2(+Inf) = +Inf
//	Log2(-Inf) = NaN
//	Log2(0)    = -Inf
//	Log2(x<0)  = NaN
func (o Order) Log2(x float64) float64 {
	return o.coeffs().log2(x)
}

// log2 applies the shared special-value policy and, for finite positive
// inputs, decomposes x into mantissa and exponent before evaluating the
// rational polynomial. All orders and the block variants route through
// this one decision table.
func (c *ratCoeffs) log2(x float64) float64 {
	switch {
	case math.IsNaN(x) || math.IsInf(x, 0):
		if math.IsInf(x, 1) {
			return x
		}
		return math.NaN()
	case x > 0:
		m, e := math.Frexp(x)
		return float64(e) + c.eval(m)
	case x == 0:
		return math.Inf(-1)
	default:
		return math.NaN()
	}
}

// eval computes N(m)/D(m) for a mantissa m in [0.5, 1).
//
// Powers of m are built by balanced splitting (m4 = m2*m2, m5 = m2*m3,
// m6 = m3*m3) and the terms are summed highest-degree-first, with the
// denominator applied as a reciprocal multiply. The published error bounds
// were measured with exactly this rounding behavior; any algebraic
// regrouping (Horner, compensated summation) shifts them and requires
// re-validation.
func (c *ratCoeffs) eval(m float64) float64 {
	deg := len(c.num) - 1

	var p [NumOrders + 1]float64
	p[1] = m
	for k := 2; k <= deg; k++ {
		p[k] = p[k/2] * p[k-k/2]
	}

	num := c.num[0] * p[deg]
	den := c.den[0] * p[deg]
	for i := 1; i < deg; i++ {
		num += c.num[i] * p[deg-i]
		den += c.den[i] * p[deg-i]
	}
	num += c.num[deg]
	den += c.den[deg]

	return (1 / den) * num
}
