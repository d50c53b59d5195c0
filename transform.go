package kusanagi

import (
	"errors"
	"fmt"
	"math"
)

// DefaultGate is the saturation threshold for the package transforms.
// Inputs strictly above the gate pass through unchanged; inputs at or
// below it are transformed.
const DefaultGate = 1000

// Transform maps one integer to another. Implementations must be pure
// and safe for concurrent use.
type Transform func(x int) int

// ErrOverflow is returned by the *Checked variants when an operation
// would wrap around the int range.
var ErrOverflow = errors.New("integer overflow")

// Square returns x*x for inputs at or below DefaultGate and passes
// larger inputs through unchanged.
//
// Negative inputs never exceed the gate, so they are squared: -5 → 25.
func Square(x int) int {
	if x > DefaultGate {
		return x
	}
	return x * x
}

// SquareChecked is Square with overflow detection. Under DefaultGate a
// squared value is at most 10^6, so the error path only fires for
// transforms built with a larger gate via SquareCheckedAt.
func SquareChecked(x int) (int, error) {
	return SquareCheckedAt(DefaultGate, x)
}

// SquareCheckedAt squares inputs at or below gate, passing larger
// inputs through, and returns ErrOverflow if the product wraps.
func SquareCheckedAt(gate, x int) (int, error) {
	if x > gate {
		return x, nil
	}
	return mulChecked(x, x)
}

// Double returns x+x, the pre-scaling the wrapper transforms apply
// before delegating.
func Double(x int) int {
	return x + x
}

// DoubleChecked is Double with overflow detection.
func DoubleChecked(x int) (int, error) {
	if (x > 0 && x > math.MaxInt-x) || (x < 0 && x < math.MinInt-x) {
		return 0, fmt.Errorf("doubling %d: %w", x, ErrOverflow)
	}
	return x + x, nil
}

// Amplify doubles x and feeds the result through the transform bound
// to DefaultBinding in the package table (Square unless overridden):
//
//	Amplify(5)    // 5 → 10 → 100
//	Amplify(2000) // 2000 → 4000 → 4000 (above the gate)
func Amplify(x int) int {
	return Resolve(DefaultBinding)(Double(x))
}

// Compound amplifies x and squares the result:
//
//	Compound(5)    // 5 → 100 → 10000
//	Compound(501)  // 501 → 1002 → 1002 (both stages gated out)
//	Compound(2000) // 2000 → 4000 → 4000
func Compound(x int) int {
	return Square(Amplify(x))
}

// CompoundChecked runs the default double → square → square chain with
// overflow detection at every step. Unlike Compound it does not go
// through the dispatch table.
func CompoundChecked(x int) (int, error) {
	d, err := DoubleChecked(x)
	if err != nil {
		return 0, fmt.Errorf("compound of %d: %w", x, err)
	}
	a, err := SquareChecked(d)
	if err != nil {
		return 0, fmt.Errorf("compound of %d: %w", x, err)
	}
	out, err := SquareChecked(a)
	if err != nil {
		return 0, fmt.Errorf("compound of %d: %w", x, err)
	}
	return out, nil
}

// Gated wraps f so inputs strictly above gate pass through unchanged.
// Square is Gated(DefaultGate, raw squaring).
func Gated(gate int, f Transform) Transform {
	return func(x int) int {
		if x > gate {
			return x
		}
		return f(x)
	}
}

// Amplified wraps f so it sees the doubled input.
func Amplified(f Transform) Transform {
	return func(x int) int {
		return f(Double(x))
	}
}

// mulChecked multiplies with wrap-around detection.
func mulChecked(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a {
		return 0, fmt.Errorf("squaring %d: %w", a, ErrOverflow)
	}
	return p, nil
}
