// pkg/mathfn/registry.go
package mathfn

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
)

var (
	// ErrUnknownFunction is returned by Resolve when no function is registered under the name.
	ErrUnknownFunction = errors.New("mathfn: unknown function")
	// ErrArity is returned by Resolve when the function does not take exactly one argument.
	ErrArity = errors.New("mathfn: function does not take exactly one argument")

	// ErrDomain marks an input the function is undefined for. Callers may skip the value.
	ErrDomain = errors.New("math domain error")
	// ErrOverflow marks a finite input whose result is not representable.
	ErrOverflow = errors.New("math range error")
)

// EvalFunc evaluates a registered function. len(args) always equals the registered arity.
type EvalFunc func(args ...float64) (float64, error)

// Func is a registry entry.
type Func struct {
	Name     string
	Arity    int
	Integral bool // result renders as an integer (floor, ceil, trunc)
	eval     EvalFunc
}

var (
	mu  sync.RWMutex
	reg = map[string]Func{}
)

// Register binds fn under name. Duplicate names, a non-positive arity or a nil fn panic.
func Register(name string, arity int, integral bool, fn EvalFunc) {
	if name == "" || arity < 1 || fn == nil {
		panic("mathfn: name, arity and fn required")
	}
	mu.Lock()
	defer mu.Unlock()
	if _, dup := reg[name]; dup {
		panic("mathfn: duplicate " + name)
	}
	reg[name] = Func{Name: name, Arity: arity, Integral: integral, eval: fn}
}

// Lookup returns the registry entry for name.
func Lookup(name string) (Func, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := reg[name]
	return f, ok
}

// Names lists the registered names of the given arity, sorted.
func Names(arity int) []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n, f := range reg {
		if f.Arity == arity {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}

// Call evaluates f. A NaN result from non-NaN inputs is reported as ErrDomain
// and an infinite result from finite inputs as ErrOverflow.
func (f Func) Call(args ...float64) (float64, error) {
	if len(args) != f.Arity {
		return 0, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, f.Name, f.Arity, len(args))
	}
	y, err := f.eval(args...)
	if err != nil {
		return 0, err
	}
	finite, nan := true, false
	for _, a := range args {
		if math.IsNaN(a) {
			nan = true
		}
		if math.IsInf(a, 0) || math.IsNaN(a) {
			finite = false
		}
	}
	switch {
	case math.IsNaN(y) && !nan:
		return 0, ErrDomain
	case math.IsInf(y, 0) && finite:
		return 0, ErrOverflow
	}
	return y, nil
}

// Unary is a resolved one-argument function. The zero value is not usable.
type Unary struct{ fn Func }

func (u Unary) Name() string   { return u.fn.Name }
func (u Unary) Integral() bool { return u.fn.Integral }

// Call evaluates the function at x.
func (u Unary) Call(x float64) (float64, error) { return u.fn.Call(x) }

// Resolve returns the unary function registered under name.
func Resolve(name string) (Unary, error) {
	f, ok := Lookup(name)
	if !ok {
		return Unary{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	if f.Arity != 1 {
		return Unary{}, fmt.Errorf("%w: %s takes %d", ErrArity, name, f.Arity)
	}
	return Unary{fn: f}, nil
}
