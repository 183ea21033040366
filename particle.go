package sprig

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// EmitterConfig describes a continuous particle emission: a birth rate, a
// lifetime, an initial speed, an angular emission range around a base angle,
// and the appearance interpolated over each particle's life.
//
// The config is immutable once handed to NewEmitter. Appearance ranges are
// sampled per particle at birth.
type EmitterConfig struct {
	// BirthRate is the number of particles born per second. Must be ≥ 0.
	BirthRate float64
	// Lifetime is each particle's lifespan in seconds. Must be > 0.
	Lifetime float64
	// Velocity is the initial particle speed in pixels per second.
	Velocity float64
	// BaseAngle is the center of the angular emission range, in radians
	// measured from the positive x-axis.
	BaseAngle float64
	// EmissionRange is the total angular spread in radians. Each particle's
	// direction is chosen uniformly from BaseAngle ± EmissionRange/2.
	// Must be ≥ 0.
	EmissionRange float64
	// Position is where particles are born.
	Position Point
	// Seed makes the per-particle direction and appearance sampling
	// reproducible. Two emitters with equal configs emit identical particles.
	Seed uint64

	// Appearance at birth, interpolated to the End values at death.
	StartScale Range
	EndScale   Range
	StartAlpha Range
	EndAlpha   Range
	StartColor Color
	EndColor   Color
}

// NewPointBurst returns an EmitterConfig for a radial burst at (x, y):
// full-circle emission with a soft white fade-out.
func NewPointBurst(x, y, velocity float64) EmitterConfig {
	return EmitterConfig{
		BirthRate:     120,
		Lifetime:      1.2,
		Velocity:      velocity,
		EmissionRange: twoPi,
		Position:      Pt(x, y),
		StartScale:    Range{3, 5},
		EndScale:      Range{0.5, 1},
		StartAlpha:    Range{0.9, 1},
		EndAlpha:      Range{0, 0},
		StartColor:    ColorWhite,
		EndColor:      ColorWhite,
	}
}

// ParticleState is a single particle of the pure emission model. Position
// and Age evolve under Advance; the rest is fixed at birth.
type ParticleState struct {
	// Index is the particle's birth index, a stable identity: particle k is
	// born at time k/BirthRate.
	Index uint64
	// BirthTime is the simulation time the particle was born, in seconds.
	BirthTime float64
	// Position is the particle's current position.
	Position Point
	// Velocity is the particle's constant velocity vector.
	Velocity Point
	// Age is the time since birth, in seconds.
	Age float64
}

// Emitter is the pure particle emission model derived from an EmitterConfig.
// All queries are pure functions of their inputs: repeated calls with the
// same arguments return identical results, and an Emitter is safe to share
// read-only across goroutines. The caller owns the clock.
type Emitter struct {
	cfg EmitterConfig
}

// NewEmitter validates the config and returns an immutable Emitter.
func NewEmitter(cfg EmitterConfig) (*Emitter, error) {
	if cfg.BirthRate < 0 || math.IsNaN(cfg.BirthRate) {
		return nil, fmt.Errorf("sprig: emitter birth rate must be ≥ 0, got %v", cfg.BirthRate)
	}
	if !(cfg.Lifetime > 0) {
		return nil, fmt.Errorf("sprig: emitter lifetime must be > 0, got %v", cfg.Lifetime)
	}
	if cfg.EmissionRange < 0 || math.IsNaN(cfg.EmissionRange) {
		return nil, fmt.Errorf("sprig: emission range must be ≥ 0, got %v", cfg.EmissionRange)
	}
	return &Emitter{cfg: cfg}, nil
}

// Config returns a copy of the emitter's config.
func (e *Emitter) Config() EmitterConfig {
	return e.cfg
}

// birthIndexRange returns the half-open birth index range [k0, k1) of
// particles born in the time window [t0, t1). Particle k is born at time
// k/BirthRate, which makes birth counts independent of how a covering
// interval is partitioned into windows.
func (e *Emitter) birthIndexRange(t0, t1 float64) (uint64, uint64) {
	rate := e.cfg.BirthRate
	if rate == 0 || t1 <= t0 {
		return 0, 0
	}
	k0 := math.Ceil(rate * t0)
	if k0 < 0 {
		k0 = 0
	}
	k1 := math.Ceil(rate * t1)
	if k1 < 0 {
		k1 = 0
	}
	if k1 <= k0 {
		return 0, 0
	}
	return uint64(k0), uint64(k1)
}

// BirthCount returns the number of particles born in [t0, t1).
func (e *Emitter) BirthCount(t0, t1 float64) int {
	k0, k1 := e.birthIndexRange(t0, t1)
	return int(k1 - k0)
}

// BornIn returns the particles born in the half-open window [t0, t1), at
// their birth state (Age 0, Position at the emitter).
func (e *Emitter) BornIn(t0, t1 float64) []ParticleState {
	k0, k1 := e.birthIndexRange(t0, t1)
	if k1 == k0 {
		return nil
	}
	out := make([]ParticleState, 0, k1-k0)
	for k := k0; k < k1; k++ {
		out = append(out, e.birth(k))
	}
	return out
}

// birth constructs particle k at its birth state. Direction is a pure
// function of (Seed, k), so queries stay idempotent.
func (e *Emitter) birth(k uint64) ParticleState {
	rng := rand.New(rand.NewPCG(e.cfg.Seed, k))
	angle := e.cfg.BaseAngle + (rng.Float64()-0.5)*e.cfg.EmissionRange
	sin, cos := math.Sincos(angle)
	return ParticleState{
		Index:     k,
		BirthTime: float64(k) / e.cfg.BirthRate,
		Position:  e.cfg.Position,
		Velocity:  Point{X: cos * e.cfg.Velocity, Y: sin * e.cfg.Velocity},
	}
}

// Advance returns the particle's state dt seconds later under constant
// velocity motion. No forces or collisions apply.
func (e *Emitter) Advance(p ParticleState, dt float64) ParticleState {
	p.Position = p.Position.Add(p.Velocity.Mul(dt))
	p.Age += dt
	return p
}

// Alive reports whether the particle is still within its lifetime. A
// particle leaves the live set once its age reaches the configured lifetime.
func (e *Emitter) Alive(p ParticleState) bool {
	return p.Age < e.cfg.Lifetime
}

// AliveAt returns the state at time t of every particle still alive: those
// born in (t - Lifetime, t], advanced to their age at t.
func (e *Emitter) AliveAt(t float64) []ParticleState {
	rate := e.cfg.BirthRate
	if rate == 0 || t < 0 {
		return nil
	}
	// k > rate*(t - lifetime) and k <= rate*t
	kLow := math.Floor(rate*(t-e.cfg.Lifetime)) + 1
	if kLow < 0 {
		kLow = 0
	}
	kHigh := math.Floor(rate * t)
	if kHigh < kLow {
		return nil
	}
	out := make([]ParticleState, 0, uint64(kHigh-kLow)+1)
	for k := uint64(kLow); k <= uint64(kHigh); k++ {
		p := e.birth(k)
		out = append(out, e.Advance(p, t-p.BirthTime))
	}
	return out
}
