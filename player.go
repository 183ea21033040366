package sprig

// AnimGroup samples up to 4 scalar Animations against a shared clock and
// writes each sampled value to a bound float64 field. Create one with
// NewAnimGroup, attach animations with Bind, and call Update(dt) each frame.
// Done is set once every bound animation has reached its resting value;
// animations repeating forever keep the group running.
//
// There is no global animation manager — users call Update themselves. The
// group holds the only clock; the animations stay pure.
type AnimGroup struct {
	anims   [4]*Animation
	fields  [4]*float64
	count   int
	elapsed float64
	Done    bool
}

// NewAnimGroup creates an empty group with its clock at zero.
func NewAnimGroup() *AnimGroup {
	return &AnimGroup{}
}

// Bind attaches an animation to a target field. At most 4 bindings are
// supported; binding more panics.
func (g *AnimGroup) Bind(a *Animation, field *float64) *AnimGroup {
	if g.count >= len(g.anims) {
		panic("sprig: AnimGroup supports at most 4 bindings")
	}
	g.anims[g.count] = a
	g.fields[g.count] = field
	g.count++
	return g
}

// Update advances the group's clock by dt seconds and writes the sampled
// value of every bound animation to its target field. Calling Update after
// Done is a no-op.
func (g *AnimGroup) Update(dt float64) {
	if g.Done {
		return
	}
	g.elapsed += dt
	g.sample()
}

// Seek moves the group's clock to an absolute time and resamples. Seeking
// backwards clears Done.
func (g *AnimGroup) Seek(t float64) {
	g.elapsed = t
	g.Done = false
	g.sample()
}

// Elapsed returns the group's current clock in seconds.
func (g *AnimGroup) Elapsed() float64 {
	return g.elapsed
}

func (g *AnimGroup) sample() {
	allDone := g.count > 0
	for i := 0; i < g.count; i++ {
		*g.fields[i] = g.anims[i].ValueAt(g.elapsed)
		if !g.anims[i].FinishedAt(g.elapsed) {
			allDone = false
		}
	}
	g.Done = allDone
}
