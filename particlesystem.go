package sprig

import (
	"math"
	"math/rand/v2"
)

// PoolParticle is a live particle in a ParticleSystem pool. Appearance
// fields are interpolated from the config's Start to End values over the
// particle's normalized age.
type PoolParticle struct {
	Position Point
	Velocity Point
	Scale    float64
	Alpha    float64
	Color    Color

	life    float64 // remaining lifetime in seconds
	maxLife float64

	startScale, endScale float64
	startAlpha, endAlpha float64
}

// ParticleSystem is a frame-driven, pooled simulation over an Emitter. It is
// the mutable consumer-side counterpart of the pure emission model: a
// preallocated pool with swap-removal of dead particles and a fractional
// emit accumulator, advanced by caller-supplied dt.
type ParticleSystem struct {
	emitter   *Emitter
	particles []PoolParticle
	alive     int
	emitAccum float64
	active    bool
	rng       *rand.Rand

	// Gravity is a constant acceleration applied to all particles each
	// update. Zero by default; not part of the pure emission model.
	Gravity Point
}

// NewParticleSystem creates a system over the given emitter with a
// preallocated pool. maxParticles ≤ 0 selects a default pool of 128. New
// particles are silently dropped while the pool is full.
func NewParticleSystem(e *Emitter, maxParticles int) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = 128
	}
	return &ParticleSystem{
		emitter:   e,
		particles: make([]PoolParticle, maxParticles),
		rng:       rand.New(rand.NewPCG(e.cfg.Seed, 0)),
	}
}

// Start begins emitting particles.
func (s *ParticleSystem) Start() {
	s.active = true
}

// Stop stops emitting new particles. Existing particles live out.
func (s *ParticleSystem) Stop() {
	s.active = false
}

// Reset stops emitting and kills all alive particles.
func (s *ParticleSystem) Reset() {
	s.active = false
	s.alive = 0
	s.emitAccum = 0
	s.rng = rand.New(rand.NewPCG(s.emitter.cfg.Seed, 0))
}

// IsActive reports whether the system is currently emitting new particles.
func (s *ParticleSystem) IsActive() bool {
	return s.active
}

// AliveCount returns the number of alive particles.
func (s *ParticleSystem) AliveCount() int {
	return s.alive
}

// Alive returns the live particles. The slice aliases the pool and is only
// valid until the next Update.
func (s *ParticleSystem) Alive() []PoolParticle {
	return s.particles[:s.alive]
}

// Emitter returns the underlying pure emission model.
func (s *ParticleSystem) Emitter() *Emitter {
	return s.emitter
}

// Update advances the simulation by dt seconds: ages and moves live
// particles (swap-removing the dead), interpolates appearance, then emits
// new particles at the configured birth rate using a fractional accumulator
// so counts sum correctly across many short frames.
func (s *ParticleSystem) Update(dt float64) {
	gx := s.Gravity.X * dt
	gy := s.Gravity.Y * dt

	i := 0
	for i < s.alive {
		p := &s.particles[i]
		p.life -= dt
		if p.life <= 0 {
			s.alive--
			s.particles[i] = s.particles[s.alive]
			continue
		}

		p.Velocity.X += gx
		p.Velocity.Y += gy
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt

		cfg := s.emitter.cfg
		t := 1.0 - p.life/p.maxLife
		p.Scale = lerp(p.startScale, p.endScale, t)
		p.Alpha = lerp(p.startAlpha, p.endAlpha, t)
		p.Color = cfg.StartColor.Lerp(cfg.EndColor, t)

		i++
	}

	if s.active && s.emitter.cfg.BirthRate > 0 {
		s.emitAccum += s.emitter.cfg.BirthRate * dt
		for s.emitAccum >= 1.0 {
			s.emitAccum -= 1.0
			if s.alive < len(s.particles) {
				s.spawn()
			}
		}
	}
}

// spawn initializes the particle at slot s.alive and increments alive.
func (s *ParticleSystem) spawn() {
	cfg := s.emitter.cfg
	p := &s.particles[s.alive]

	angle := cfg.BaseAngle + (s.rng.Float64()-0.5)*cfg.EmissionRange
	sin, cos := math.Sincos(angle)
	p.Velocity = Point{X: cos * cfg.Velocity, Y: sin * cfg.Velocity}
	p.Position = cfg.Position

	p.life = cfg.Lifetime
	p.maxLife = cfg.Lifetime

	p.startScale = randomIn(s.rng, cfg.StartScale)
	p.endScale = randomIn(s.rng, cfg.EndScale)
	p.Scale = p.startScale

	p.startAlpha = randomIn(s.rng, cfg.StartAlpha)
	p.endAlpha = randomIn(s.rng, cfg.EndAlpha)
	p.Alpha = p.startAlpha

	p.Color = cfg.StartColor

	s.alive++
}

// randomIn returns a value uniformly drawn from r.
func randomIn(rng *rand.Rand, r Range) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
