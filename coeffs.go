package fastlog

// ratCoeffs holds one fitted coefficient set: numerator and denominator of a
// rational polynomial in the mantissa, both highest-degree-first with
// len(num) == len(den) == degree+1. maxError is the empirically measured
// worst-case absolute error against math.Log2 over mantissas in [1, 2).
//
// The denominator must not evaluate to zero anywhere in the mantissa domain
// [0.5, 1); this is a property of the fitted data, verified by the domain
// sweep in coeffs_test.go.
type ratCoeffs struct {
	num      []float64
	den      []float64
	maxError float64
}

// Coefficient sets per order, fitted offline against log2 on the frexp
// mantissa range [0.5, 1.0]. Orders 1-4 come from a linear program over 1e5
// samples; orders 5 and 6 were refined with differential evolution seeded by
// least-squares fits. Values are reproduced bit-for-bit from the published
// fits: changing them (or the evaluation order in eval) changes the
// documented error bounds and requires re-measurement.
var coeffTable = [...]ratCoeffs{
	{
		num:      []float64{1.4767235475800453, -1.477808113688585},
		den:      []float64{0.60987486544988612, 0.43559347328148307},
		maxError: 1.5e-3,
	},
	{
		num:      []float64{1.9127166899499954, -0.68851400593499545, -1.22420645509838},
		den:      []float64{0.49463685172392841, 1.426594307123505, 0.2533316901691966},
		maxError: 3.5e-6,
	},
	{
		num: []float64{
			1.1098414161667869, 1.4491119665946153,
			-2.0697678829202806, -0.48918550780729392,
		},
		den: []float64{
			0.22977948696488379, 1.4961611668393175,
			1.071708023446889, 0.084444549259932208,
		},
		maxError: 7.8e-9,
	},
	{
		num: []float64{
			0.59329970349044314, 2.3979646338966889, -0.96358966800238843,
			-1.8439274267589987, -0.18374724264449727,
		},
		den: []float64{
			0.1068562844523792, 1.2392957064266512, 2.0062979261642901,
			0.63680961689938775, 0.028211791264274255,
		},
		maxError: 1.8e-11,
	},
	{
		num: []float64{
			1,
			7.71936522214048448375934,
			3.86819598045858414891995,
			-8.62625591215740072925655,
			-3.75643884533287897298237,
			-0.20486644510896143134282,
		},
		den: []float64{
			0.163694582050043557774899,
			2.92653202255549693688863,
			8.32056953375982644161013,
			5.87824918118857908666541,
			1.03190040649530079264196,
			0.0288076245100893947592713,
		},
		maxError: 2e-14,
	},
	{
		num: []float64{
			1.000000000000000000000e+00,
			1.264421020196026468341e+01,
			2.097757281182429878186e+01,
			-1.096689803557884168583e+01,
			-1.931053288761708230936e+01,
			-4.197137193704804758454e+00,
			-1.472148968838493110489e-01,
		},
		den: []float64{
			1.515951847105251049097e-01,
			3.923015269365503598920e+00,
			1.753784228757662333464e+01,
			2.219034855172147757685e+01,
			8.839440525270575221839e+00,
			9.965678875171709583114e-01,
			1.940841159387440492679e-02,
		},
		maxError: 6e-16,
	},
}
