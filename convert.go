package fastlog

const (
	// Ln2 is the natural logarithm of 2.
	Ln2 = 0.693147180559945309417232121458176568

	// Log10Of2 is the base-10 logarithm of 2.
	Log10Of2 = 0.301029995663981195213738894724493027
)

// Log2Func is any base-2 logarithm implementation. The method value
// o.Log2 of an [Order] satisfies it, as does math.Log2.
type Log2Func func(float64) float64

// Ln converts a base-2 logarithm approximation into a natural logarithm:
// Ln2 * log2(x). Scaling by a positive finite constant preserves the NaN
// and ±Inf special cases of log2 unchanged.
func Ln(x float64, log2 Log2Func) float64 {
	return Ln2 * log2(x)
}

// Log10 converts a base-2 logarithm approximation into a base-10
// logarithm: Log10Of2 * log2(x).
func Log10(x float64, log2 Log2Func) float64 {
	return Log10Of2 * log2(x)
}

// Ln returns an approximation of the natural logarithm of x, with the same
// special cases and error scaling as o.Log2.
func (o Order) Ln(x float64) float64 {
	return Ln2 * o.Log2(x)
}

// Log10 returns an approximation of the base-10 logarithm of x.
func (o Order) Log10(x float64) float64 {
	return Log10Of2 * o.Log2(x)
}
