package sprig

import "github.com/tanema/gween/ease"

// Easing selects a normalized time-remapping curve f: [0,1] → [0,1] with
// f(0)=0 and f(1)=1, monotonic non-decreasing. The four variants map onto the
// standard quadratic curves from the gween ease package.
type Easing uint8

const (
	EaseLinear Easing = iota // constant-rate interpolation
	EaseIn                   // accelerates from rest
	EaseOut                  // decelerates to rest
	EaseInOut                // accelerates then decelerates
)

// Func returns the underlying gween ease function, for callers that drive
// gween tweens directly.
func (e Easing) Func() ease.TweenFunc {
	switch e {
	case EaseIn:
		return ease.InQuad
	case EaseOut:
		return ease.OutQuad
	case EaseInOut:
		return ease.InOutQuad
	default:
		return ease.Linear
	}
}

// Eval evaluates the easing curve at normalized phase p ∈ [0, 1].
func (e Easing) Eval(p float64) float64 {
	return float64(e.Func()(float32(p), 0, 1, 1))
}
