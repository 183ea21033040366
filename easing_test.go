package sprig

import "testing"

var allEasings = []Easing{EaseLinear, EaseIn, EaseOut, EaseInOut}

func TestEasingBoundaryLaw(t *testing.T) {
	for _, e := range allEasings {
		if got := e.Eval(0); got != 0 {
			t.Errorf("easing %d: f(0) = %f, want 0", e, got)
		}
		if got := e.Eval(1); got != 1 {
			t.Errorf("easing %d: f(1) = %f, want 1", e, got)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	const samples = 100
	for _, e := range allEasings {
		prev := e.Eval(0)
		for i := 1; i <= samples; i++ {
			p := float64(i) / samples
			v := e.Eval(p)
			if v < prev {
				t.Errorf("easing %d: f(%f) = %f < f(previous) = %f", e, p, v, prev)
			}
			prev = v
		}
	}
}

func TestEasingCurvesDiffer(t *testing.T) {
	// Spot-check at the midpoint: In is behind linear, Out is ahead,
	// InOut matches linear by symmetry.
	linear := EaseLinear.Eval(0.5)
	in := EaseIn.Eval(0.5)
	out := EaseOut.Eval(0.5)

	if in >= linear {
		t.Errorf("EaseIn(0.5) = %f, want < %f", in, linear)
	}
	if out <= linear {
		t.Errorf("EaseOut(0.5) = %f, want > %f", out, linear)
	}
}

func TestEasingRangeBounded(t *testing.T) {
	for _, e := range allEasings {
		for i := 0; i <= 50; i++ {
			p := float64(i) / 50
			v := e.Eval(p)
			if v < 0 || v > 1 {
				t.Errorf("easing %d: f(%f) = %f outside [0, 1]", e, p, v)
			}
		}
	}
}
