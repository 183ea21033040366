package sprig

import (
	"math"
	"testing"
)

func testSystemConfig() EmitterConfig {
	return EmitterConfig{
		BirthRate:  100,
		Lifetime:   1,
		Velocity:   100,
		StartScale: Range{1, 1},
		EndScale:   Range{0.5, 0.5},
		StartAlpha: Range{1, 1},
		EndAlpha:   Range{0, 0},
		StartColor: Color{1, 1, 1, 1},
		EndColor:   Color{1, 0, 0, 1},
	}
}

func newTestSystem(t *testing.T, cfg EmitterConfig, max int) *ParticleSystem {
	t.Helper()
	return NewParticleSystem(mustEmitter(t, cfg), max)
}

func TestSystemEmitsAtConfiguredRate(t *testing.T) {
	s := newTestSystem(t, testSystemConfig(), 256)
	s.Start()

	// One simulated second in 60 frames: 100 births, all within lifetime.
	for i := 0; i < 60; i++ {
		s.Update(1.0 / 60.0)
	}
	if got := s.AliveCount(); got < 95 || got > 100 {
		t.Errorf("alive after 1s = %d, want ~100", got)
	}
}

func TestSystemInactiveDoesNotEmit(t *testing.T) {
	s := newTestSystem(t, testSystemConfig(), 64)

	s.Update(1)
	if s.AliveCount() != 0 {
		t.Errorf("inactive system emitted %d particles", s.AliveCount())
	}
	if s.IsActive() {
		t.Error("system active before Start")
	}
}

func TestSystemStopLetsParticlesLiveOut(t *testing.T) {
	s := newTestSystem(t, testSystemConfig(), 256)
	s.Start()
	s.Update(0.5)
	if s.AliveCount() == 0 {
		t.Fatal("no particles emitted")
	}

	s.Stop()
	before := s.AliveCount()
	s.Update(0.1)
	if s.AliveCount() > before {
		t.Error("stopped system emitted new particles")
	}

	// Past the lifetime everything dies off.
	s.Update(1)
	if s.AliveCount() != 0 {
		t.Errorf("alive after lifetime = %d, want 0", s.AliveCount())
	}
}

func TestSystemPoolCap(t *testing.T) {
	cfg := testSystemConfig()
	cfg.BirthRate = 10000
	s := newTestSystem(t, cfg, 32)
	s.Start()

	s.Update(1)
	if s.AliveCount() > 32 {
		t.Errorf("alive = %d exceeds pool of 32", s.AliveCount())
	}
	if len(s.Alive()) != s.AliveCount() {
		t.Error("Alive() length does not match AliveCount")
	}
}

func TestSystemDefaultPoolSize(t *testing.T) {
	s := newTestSystem(t, testSystemConfig(), 0)
	if cap(s.Alive()) != 128 {
		t.Errorf("default pool = %d, want 128", cap(s.Alive()))
	}
}

func TestSystemReset(t *testing.T) {
	s := newTestSystem(t, testSystemConfig(), 64)
	s.Start()
	s.Update(0.5)

	s.Reset()
	if s.AliveCount() != 0 {
		t.Errorf("alive after Reset = %d, want 0", s.AliveCount())
	}
	if s.IsActive() {
		t.Error("system still active after Reset")
	}
}

func TestSystemGravityAccelerates(t *testing.T) {
	cfg := testSystemConfig()
	cfg.Velocity = 0
	cfg.BirthRate = 60
	s := newTestSystem(t, cfg, 16)
	s.Gravity = Pt(0, 100)
	s.Start()

	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60.0)
	}

	live := s.Alive()
	if len(live) == 0 {
		t.Fatal("no particles emitted")
	}
	// The oldest particle has been falling for ~half a second.
	if live[0].Velocity.Y <= 0 {
		t.Errorf("velocity.Y = %f, want pulled downward", live[0].Velocity.Y)
	}
	if live[0].Position.Y <= cfg.Position.Y {
		t.Errorf("position.Y = %f, particle did not fall", live[0].Position.Y)
	}
}

func TestSystemAppearanceInterpolation(t *testing.T) {
	cfg := testSystemConfig()
	cfg.BirthRate = 60
	s := newTestSystem(t, cfg, 16)
	s.Start()

	// Advance the first particle to roughly half its life.
	for i := 0; i < 30; i++ {
		s.Update(1.0 / 60.0)
	}

	p := s.Alive()[0]
	if p.Scale >= 1 || p.Scale <= 0.5 {
		t.Errorf("scale = %f, want between end 0.5 and start 1", p.Scale)
	}
	if p.Alpha >= 1 || p.Alpha <= 0 {
		t.Errorf("alpha = %f, want fading between 1 and 0", p.Alpha)
	}
	if p.Color.G >= 1 {
		t.Errorf("color.G = %f, want interpolating toward red", p.Color.G)
	}
}

func TestSystemSwapRemoveKeepsLiveSetDense(t *testing.T) {
	cfg := testSystemConfig()
	cfg.Lifetime = 0.1
	s := newTestSystem(t, cfg, 64)
	s.Start()

	// Emit, let some die, keep emitting. Every slot below alive must hold
	// a particle with remaining life.
	for i := 0; i < 120; i++ {
		s.Update(1.0 / 60.0)
		for j, p := range s.Alive() {
			if p.life <= 0 {
				t.Fatalf("dead particle at live slot %d on frame %d", j, i)
			}
		}
	}
}

func TestSystemSeedDeterminism(t *testing.T) {
	cfg := testSystemConfig()
	cfg.EmissionRange = twoPi
	cfg.StartScale = Range{1, 3}
	cfg.Seed = 12345

	a := newTestSystem(t, cfg, 64)
	b := newTestSystem(t, cfg, 64)
	a.Start()
	b.Start()
	for i := 0; i < 30; i++ {
		a.Update(1.0 / 60.0)
		b.Update(1.0 / 60.0)
	}

	pa, pb := a.Alive(), b.Alive()
	if len(pa) != len(pb) {
		t.Fatalf("alive counts differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].Velocity != pb[i].Velocity || pa[i].Scale != pb[i].Scale {
			t.Fatalf("particle %d differs between equal-seed systems", i)
		}
	}
}

func TestSystemResetReplaysIdentically(t *testing.T) {
	cfg := testSystemConfig()
	cfg.EmissionRange = twoPi
	cfg.Seed = 7
	s := newTestSystem(t, cfg, 64)

	run := func() []Point {
		s.Start()
		for i := 0; i < 10; i++ {
			s.Update(1.0 / 60.0)
		}
		out := make([]Point, s.AliveCount())
		for i, p := range s.Alive() {
			out[i] = p.Velocity
		}
		return out
	}

	first := run()
	s.Reset()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("replay lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("particle %d velocity differs after Reset", i)
		}
	}
}

func TestSystemFractionalAccumulator(t *testing.T) {
	cfg := testSystemConfig()
	cfg.BirthRate = 3
	cfg.Lifetime = 100
	s := newTestSystem(t, cfg, 256)
	s.Start()

	// 3/s over 10s in tiny steps: the fractional accumulator must not
	// drop the sub-frame remainders.
	for i := 0; i < 1000; i++ {
		s.Update(0.01)
	}
	if got := s.AliveCount(); math.Abs(float64(got)-30) > 1 {
		t.Errorf("alive = %d, want ~30", got)
	}
}

func TestSystemUpdateAllocs(t *testing.T) {
	s := newTestSystem(t, testSystemConfig(), 256)
	s.Start()
	s.Update(0.5)

	allocs := testing.AllocsPerRun(100, func() {
		s.Update(1.0 / 60.0)
	})
	if allocs != 0 {
		t.Errorf("Update allocates %f per run, want 0", allocs)
	}
}
