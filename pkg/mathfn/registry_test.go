package mathfn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveUnary(t *testing.T) {
	for _, name := range []string{"sin", "sqrt", "log2", "floor", "erf"} {
		u, err := Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, u.Name())
	}

	u, err := Resolve("sqrt")
	require.NoError(t, err)
	y, err := u.Call(9)
	require.NoError(t, err)
	assert.Equal(t, 3.0, y)
	assert.False(t, u.Integral())

	f, err := Resolve("floor")
	require.NoError(t, err)
	assert.True(t, f.Integral())
}

func TestResolveFailures(t *testing.T) {
	_, err := Resolve("pow")
	assert.ErrorIs(t, err, ErrArity)

	_, err = Resolve("atan2")
	assert.ErrorIs(t, err, ErrArity)

	_, err = Resolve("nope")
	assert.ErrorIs(t, err, ErrUnknownFunction)

	_, err = Resolve("")
	assert.ErrorIs(t, err, ErrUnknownFunction)

	// names are case sensitive
	_, err = Resolve("SIN")
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestDomainErrors(t *testing.T) {
	cases := []struct {
		name string
		x    float64
	}{
		{"sqrt", -1},
		{"log2", 0},
		{"log", -3},
		{"log10", 0},
		{"log1p", -1},
		{"acos", 2},
		{"asin", -1.5},
		{"acosh", 0.5},
		{"atanh", 1},
		{"gamma", 0},
		{"gamma", -2},
		{"lgamma", -1},
	}
	for _, c := range cases {
		u, err := Resolve(c.name)
		require.NoError(t, err)
		_, err = u.Call(c.x)
		assert.ErrorIs(t, err, ErrDomain, "%s(%v)", c.name, c.x)
	}
}

func TestDomainEdges(t *testing.T) {
	sqrt, _ := Resolve("sqrt")
	y, err := sqrt.Call(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, y)

	gamma, _ := Resolve("gamma")
	y, err = gamma.Call(-0.5)
	require.NoError(t, err)
	assert.InDelta(t, -2*math.Sqrt(math.Pi), y, 1e-12)

	acos, _ := Resolve("acos")
	y, err = acos.Call(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, y)
}

func TestUlp(t *testing.T) {
	u, err := Resolve("ulp")
	require.NoError(t, err)

	for x, want := range map[float64]float64{
		1:                math.Nextafter(1, 2) - 1,
		-1:               math.Nextafter(1, 2) - 1,
		0:                math.SmallestNonzeroFloat64,
		math.MaxFloat64:  math.Ldexp(1, 971),
		-math.MaxFloat64: math.Ldexp(1, 971),
		math.Inf(-1):     math.Inf(1),
	} {
		y, err := u.Call(x)
		require.NoError(t, err, x)
		assert.Equal(t, want, y, x)
	}
}

func TestOverflow(t *testing.T) {
	for _, name := range []string{"exp", "cosh", "sinh"} {
		u, err := Resolve(name)
		require.NoError(t, err)
		_, err = u.Call(1000)
		assert.ErrorIs(t, err, ErrOverflow, name)
		assert.NotErrorIs(t, err, ErrDomain, name)
	}
}

func TestBinaryCall(t *testing.T) {
	pow, ok := Lookup("pow")
	require.True(t, ok)
	assert.Equal(t, 2, pow.Arity)

	y, err := pow.Call(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 1024.0, y)

	_, err = pow.Call(0, -1)
	assert.ErrorIs(t, err, ErrDomain)

	_, err = pow.Call(2)
	assert.ErrorIs(t, err, ErrArity)

	_, err = pow.Call(10, 400)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestRegister(t *testing.T) {
	Register("test.double", 1, false, func(args ...float64) (float64, error) { return 2 * args[0], nil })

	u, err := Resolve("test.double")
	require.NoError(t, err)
	y, err := u.Call(21)
	require.NoError(t, err)
	assert.Equal(t, 42.0, y)

	assert.Panics(t, func() {
		Register("test.double", 1, false, func(args ...float64) (float64, error) { return 0, nil })
	})
	assert.Panics(t, func() { Register("test.nil", 1, false, nil) })
	assert.Panics(t, func() {
		Register("test.zero", 0, false, func(...float64) (float64, error) { return 0, nil })
	})
}

func TestNames(t *testing.T) {
	unary := Names(1)
	assert.Contains(t, unary, "sqrt")
	assert.NotContains(t, unary, "pow")
	assert.IsIncreasing(t, unary)

	assert.Contains(t, Names(2), "pow")
}
