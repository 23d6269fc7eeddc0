package mathfn

import "math"

func init() {
	unary("acos", math.Acos, between(-1, 1))
	unary("acosh", math.Acosh, atLeast(1))
	unary("asin", math.Asin, between(-1, 1))
	unary("asinh", math.Asinh, nil)
	unary("atan", math.Atan, nil)
	unary("atanh", math.Atanh, func(x float64) bool { return x > -1 && x < 1 })
	unary("cbrt", math.Cbrt, nil)
	unary("cos", math.Cos, nil)
	unary("cosh", math.Cosh, nil)
	unary("degrees", func(x float64) float64 { return x * (180 / math.Pi) }, nil)
	unary("erf", math.Erf, nil)
	unary("erfc", math.Erfc, nil)
	unary("exp", math.Exp, nil)
	unary("exp2", math.Exp2, nil)
	unary("expm1", math.Expm1, nil)
	unary("fabs", math.Abs, nil)
	unary("gamma", math.Gamma, notPole)
	unary("lgamma", func(x float64) float64 {
		y, _ := math.Lgamma(x)
		return y
	}, notPole)
	unary("log", math.Log, above(0))
	unary("log10", math.Log10, above(0))
	unary("log1p", math.Log1p, above(-1))
	unary("log2", math.Log2, above(0))
	unary("radians", func(x float64) float64 { return x * (math.Pi / 180) }, nil)
	unary("sin", math.Sin, nil)
	unary("sinh", math.Sinh, nil)
	unary("sqrt", math.Sqrt, atLeast(0))
	unary("tan", math.Tan, nil)
	unary("tanh", math.Tanh, nil)
	unary("ulp", ulp, nil)

	integral("ceil", math.Ceil)
	integral("floor", math.Floor)
	integral("trunc", math.Trunc)

	// Known but not unary; resolving them is a configuration error.
	binary("atan2", math.Atan2, nil)
	binary("copysign", math.Copysign, nil)
	binary("fmod", math.Mod, func(_, y float64) bool { return y != 0 })
	binary("ldexp",
		func(x, e float64) float64 { return math.Ldexp(x, int(e)) },
		func(_, e float64) bool { return e == math.Trunc(e) },
	)
	binary("nextafter", math.Nextafter, nil)
	binary("pow", math.Pow, func(x, y float64) bool { return x != 0 || y >= 0 })
	binary("remainder", math.Remainder, func(_, y float64) bool { return y != 0 })
}

func unary(name string, f func(float64) float64, domain func(float64) bool) {
	Register(name, 1, false, func(args ...float64) (float64, error) {
		x := args[0]
		if domain != nil && !domain(x) {
			return 0, ErrDomain
		}
		return f(x), nil
	})
}

func integral(name string, f func(float64) float64) {
	Register(name, 1, true, func(args ...float64) (float64, error) { return f(args[0]), nil })
}

func binary(name string, f func(x, y float64) float64, domain func(x, y float64) bool) {
	Register(name, 2, false, func(args ...float64) (float64, error) {
		x, y := args[0], args[1]
		if domain != nil && !domain(x, y) {
			return 0, ErrDomain
		}
		return f(x, y), nil
	})
}

func above(lo float64) func(float64) bool   { return func(x float64) bool { return x > lo } }
func atLeast(lo float64) func(float64) bool { return func(x float64) bool { return x >= lo } }

func between(lo, hi float64) func(float64) bool {
	return func(x float64) bool { return x >= lo && x <= hi }
}

// gamma and lgamma have poles at zero and the negative integers.
func notPole(x float64) bool { return x > 0 || x != math.Trunc(x) }

// ulp is the gap between |x| and the next float away from zero. At the top
// of the range the gap below is used, so ulp(MaxFloat64) stays finite.
func ulp(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.Abs(x)
	}
	x = math.Abs(x)
	if next := math.Nextafter(x, math.Inf(1)); !math.IsInf(next, 1) {
		return next - x
	}
	return x - math.Nextafter(x, math.Inf(-1))
}
