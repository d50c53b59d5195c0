package kusanagi

import (
	"errors"
	"math"
	"testing"
)

// TestSquare_BelowGate verifies squaring at or below the gate.
func TestSquare_BelowGate(t *testing.T) {
	cases := map[int]int{
		0:    0,
		1:    1,
		5:    25,
		-5:   25,
		999:  998001,
		1000: 1000000, // Gate is inclusive
	}

	for x, want := range cases {
		if got := Square(x); got != want {
			t.Errorf("Square(%d) = %d, want %d", x, got, want)
		}
	}
}

// TestSquare_AboveGate verifies passthrough above the gate.
func TestSquare_AboveGate(t *testing.T) {
	for _, x := range []int{1001, 2000, 1 << 30, math.MaxInt} {
		if got := Square(x); got != x {
			t.Errorf("Square(%d) = %d, want passthrough", x, got)
		}
	}
}

// TestSquare_Properties runs the full property suite against Square.
func TestSquare_Properties(t *testing.T) {
	AssertTransformProperties(t, Square, DefaultAssertionConfig())
	PrintTransformTable(t, Square, []int{-5, 0, 5, 31, 1000, 1001, 2000})
}

// TestDouble verifies the pre-scaling step.
func TestDouble(t *testing.T) {
	if got := Double(5); got != 10 {
		t.Errorf("Double(5) = %d, want 10", got)
	}
	if got := Double(-3); got != -6 {
		t.Errorf("Double(-3) = %d, want -6", got)
	}
}

// TestAmplify verifies the double-then-dispatch chain.
func TestAmplify(t *testing.T) {
	cases := map[int]int{
		5:    100,     // 5 → 10 → 100
		500:  1000000, // 500 → 1000 → squared at the gate
		501:  1002,    // 501 → 1002 → above the gate, passthrough
		2000: 4000,    // 2000 → 4000 → passthrough
	}

	for x, want := range cases {
		if got := Amplify(x); got != want {
			t.Errorf("Amplify(%d) = %d, want %d", x, got, want)
		}
	}
}

// TestCompound verifies the double-square-square chain.
func TestCompound(t *testing.T) {
	cases := map[int]int{
		5:    10000, // 5 → 100 → 10000
		501:  1002,  // Doubling crosses the gate, both squarings skipped
		2000: 4000,
	}

	for x, want := range cases {
		if got := Compound(x); got != want {
			t.Errorf("Compound(%d) = %d, want %d", x, got, want)
		}
	}

	t.Logf("Compound(5) = %d (5 → 10 → 100 → 10000)", Compound(5))
}

// TestSquareChecked_NeverOverflowsUnderDefaultGate exercises the
// checked path across the whole gated range.
func TestSquareChecked_NeverOverflowsUnderDefaultGate(t *testing.T) {
	inputs := make([]int, 0, 2001)
	for x := -1000; x <= 1000; x++ {
		inputs = append(inputs, x)
	}
	AssertNoOverflow(t, SquareChecked, inputs)
}

// TestSquareCheckedAt_Overflow verifies wrap-around detection with a
// gate large enough to square huge values.
func TestSquareCheckedAt_Overflow(t *testing.T) {
	x := 1 << 32 // x*x wraps 64-bit int

	_, err := SquareCheckedAt(math.MaxInt, x)
	if err == nil {
		t.Fatalf("SquareCheckedAt(MaxInt, %d) did not report overflow", x)
	}
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("error = %v, want ErrOverflow", err)
	}

	// Same input under the default gate passes straight through.
	got, err := SquareChecked(x)
	if err != nil {
		t.Fatalf("SquareChecked(%d) = %v, want passthrough", x, err)
	}
	if got != x {
		t.Errorf("SquareChecked(%d) = %d, want passthrough", x, got)
	}
}

// TestDoubleChecked_Overflow verifies doubling detection at both ends
// of the int range.
func TestDoubleChecked_Overflow(t *testing.T) {
	for _, x := range []int{math.MaxInt, math.MaxInt/2 + 1, math.MinInt, math.MinInt/2 - 1} {
		if _, err := DoubleChecked(x); !errors.Is(err, ErrOverflow) {
			t.Errorf("DoubleChecked(%d) error = %v, want ErrOverflow", x, err)
		}
	}

	got, err := DoubleChecked(math.MaxInt / 2)
	if err != nil {
		t.Fatalf("DoubleChecked(MaxInt/2) failed: %v", err)
	}
	if want := math.MaxInt - 1; got != want {
		t.Errorf("DoubleChecked(MaxInt/2) = %d, want %d", got, want)
	}
}

// TestCompoundChecked verifies the checked chain agrees with Compound
// on safe inputs and rejects inputs whose doubling wraps.
func TestCompoundChecked(t *testing.T) {
	for _, x := range []int{0, 5, 501, 2000, -5} {
		got, err := CompoundChecked(x)
		if err != nil {
			t.Fatalf("CompoundChecked(%d) failed: %v", x, err)
		}
		if want := Compound(x); got != want {
			t.Errorf("CompoundChecked(%d) = %d, Compound = %d", x, got, want)
		}
	}

	if _, err := CompoundChecked(math.MaxInt); !errors.Is(err, ErrOverflow) {
		t.Errorf("CompoundChecked(MaxInt) error = %v, want ErrOverflow", err)
	}
}

// TestGated verifies the combinator against a custom gate.
func TestGated(t *testing.T) {
	triple := Gated(10, func(x int) int { return 3 * x })

	if got := triple(4); got != 12 {
		t.Errorf("triple(4) = %d, want 12", got)
	}
	if got := triple(11); got != 11 {
		t.Errorf("triple(11) = %d, want passthrough", got)
	}
	if got := triple(10); got != 30 {
		t.Errorf("triple(10) = %d, want 30 (gate is inclusive)", got)
	}
}

// TestAmplified verifies the pre-doubling combinator matches Amplify
// when wrapped around the default binding.
func TestAmplified(t *testing.T) {
	f := Amplified(Square)

	for _, x := range []int{0, 5, 500, 501, 2000} {
		if got, want := f(x), Amplify(x); got != want {
			t.Errorf("Amplified(Square)(%d) = %d, Amplify = %d", x, got, want)
		}
	}
}
