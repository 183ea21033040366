package sprig

import (
	"fmt"
	"math"
)

// RepeatPolicy controls how many cycles an animation plays. The zero value
// plays a single cycle. Use RepeatCount for a finite count and RepeatForever
// for an unbounded animation.
type RepeatPolicy struct {
	count   int
	forever bool
}

// RepeatForever repeats the animation without bound.
var RepeatForever = RepeatPolicy{forever: true}

// RepeatCount repeats the animation exactly n times. A non-positive n is
// invalid and rejected when the animation is constructed.
func RepeatCount(n int) RepeatPolicy {
	if n <= 0 {
		return RepeatPolicy{count: -1}
	}
	return RepeatPolicy{count: n}
}

// cycles returns the finite cycle count. Only meaningful when !forever.
func (r RepeatPolicy) cycles() int {
	if r.count == 0 {
		return 1
	}
	return r.count
}

func (r RepeatPolicy) valid() bool {
	return r.forever || r.count >= 0
}

// timeline is the shared sampling core of scalar and transform animations:
// phase offset, cycle computation, repeat policy, autoreverse mirroring,
// and easing. It has no internal clock; the caller supplies t.
type timeline struct {
	duration    float64
	easing      Easing
	repeat      RepeatPolicy
	autoreverse bool
	phaseOffset float64
}

func newTimeline(duration float64, easing Easing, repeat RepeatPolicy, autoreverse bool, phaseOffset float64) (timeline, error) {
	if !(duration > 0) {
		return timeline{}, fmt.Errorf("sprig: animation duration must be > 0, got %v", duration)
	}
	if !repeat.valid() {
		return timeline{}, fmt.Errorf("sprig: repeat count must be positive")
	}
	return timeline{
		duration:    duration,
		easing:      easing,
		repeat:      repeat,
		autoreverse: autoreverse,
		phaseOffset: phaseOffset,
	}, nil
}

// eased returns the eased interpolation fraction at time t (seconds since the
// animation's logical start, before phase offset).
//
// Before the (possibly negative) phase offset the animation holds at its
// start value. After the final cycle of a finite repeat it holds at its
// resting value: the end value, or the start value when the last cycle is a
// reverse pass under autoreverse.
func (tl timeline) eased(t float64) float64 {
	local := t - tl.phaseOffset
	if local < 0 {
		return 0
	}

	cycle := math.Floor(local / tl.duration)
	if !tl.repeat.forever && cycle >= float64(tl.repeat.cycles()) {
		last := tl.repeat.cycles() - 1
		if tl.autoreverse && last%2 == 1 {
			return 0
		}
		return 1
	}

	phase := local/tl.duration - cycle
	if tl.autoreverse && int(cycle)%2 == 1 {
		phase = 1 - phase
	}
	return tl.easing.Eval(phase)
}

// finished reports whether t is past the end of a finite repeat.
func (tl timeline) finished(t float64) bool {
	if tl.repeat.forever {
		return false
	}
	return t-tl.phaseOffset >= tl.duration*float64(tl.repeat.cycles())
}

// AnimationConfig describes a scalar keyframe animation: a value range, a
// duration, an easing curve, a repeat policy, an autoreverse flag, and a
// phase offset used to stagger multiple instances.
type AnimationConfig struct {
	// From and To are the animated value range.
	From, To float64
	// Duration is the length of one cycle in seconds. Must be > 0.
	Duration float64
	// Easing is the time-remapping curve applied within each cycle.
	Easing Easing
	// Repeat controls the cycle count. Zero value plays once.
	Repeat RepeatPolicy
	// Autoreverse mirrors the phase of odd-indexed cycles.
	Autoreverse bool
	// PhaseOffset shifts the animation's local time. Negative offsets delay
	// the start; the animation holds at From until its local time reaches 0.
	PhaseOffset float64
}

// Animation is an immutable scalar timeline. Sampling with ValueAt is a pure
// function of t: repeated calls with the same t return the same value, and an
// Animation is safe to share read-only across goroutines.
type Animation struct {
	from, to float64
	tl       timeline
}

// NewAnimation validates the config and returns an immutable Animation.
func NewAnimation(cfg AnimationConfig) (*Animation, error) {
	tl, err := newTimeline(cfg.Duration, cfg.Easing, cfg.Repeat, cfg.Autoreverse, cfg.PhaseOffset)
	if err != nil {
		return nil, err
	}
	return &Animation{from: cfg.From, to: cfg.To, tl: tl}, nil
}

// ValueAt returns the interpolated value at time t seconds.
func (a *Animation) ValueAt(t float64) float64 {
	return lerp(a.from, a.to, a.tl.eased(t))
}

// FinishedAt reports whether the animation has reached its resting value at
// time t. An animation repeating forever never finishes.
func (a *Animation) FinishedAt(t float64) bool {
	return a.tl.finished(t)
}

// TransformAnimationConfig describes a transform-valued animation.
// Interpolation is component-wise over the six affine coefficients.
type TransformAnimationConfig struct {
	From, To    Transform
	Duration    float64
	Easing      Easing
	Repeat      RepeatPolicy
	Autoreverse bool
	PhaseOffset float64
}

// TransformAnimation is an immutable transform-valued timeline.
type TransformAnimation struct {
	from, to Transform
	tl       timeline
}

// NewTransformAnimation validates the config and returns an immutable
// TransformAnimation.
func NewTransformAnimation(cfg TransformAnimationConfig) (*TransformAnimation, error) {
	tl, err := newTimeline(cfg.Duration, cfg.Easing, cfg.Repeat, cfg.Autoreverse, cfg.PhaseOffset)
	if err != nil {
		return nil, err
	}
	return &TransformAnimation{from: cfg.From, to: cfg.To, tl: tl}, nil
}

// ValueAt returns the interpolated transform at time t seconds.
func (a *TransformAnimation) ValueAt(t float64) Transform {
	return a.from.Lerp(a.to, a.tl.eased(t))
}

// FinishedAt reports whether the animation has reached its resting value at
// time t.
func (a *TransformAnimation) FinishedAt(t float64) bool {
	return a.tl.finished(t)
}
