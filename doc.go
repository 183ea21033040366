// Package sprig is a declarative construction layer for vector paths,
// keyframe animation, and particle emission, sitting above a host compositor
// such as [Ebitengine].
//
// Sprig describes what a shape, animation, or particle burst should look
// like and derives the low-level primitives; rendering them is the host's
// job. The three cores are pure, single-threaded value transformations with
// no internal clocks.
//
// # Paths
//
// Build immutable vector paths with a chained [PathBuilder]:
//
//	path := sprig.NewPathBuilder().
//		Circle(50, 50, 50).
//		Rect(0, 0, 100, 100).
//		RoundedRect(10, 10, 80, 80, 5).
//		Build()
//
// A transform context applies to all subsequent commands until changed, and
// never retroactively:
//
//	path := sprig.NewPathBuilder().
//		Transform(sprig.Scale(2, 2)).
//		MoveTo(0, 0).  // scaled
//		LineTo(50, 0). // scaled
//		NoTransform().
//		LineTo(100, 100). // not scaled
//		Build()
//
// Build consumes the builder; using it afterwards panics. The finished
// [Path] is immutable, exposes a tight [Path.BoundingBox], and lowers arcs
// and shapes to a closed algebra of move/line/quad/cubic/close segments.
//
// # Animations
//
// An [Animation] maps wall-clock time to an interpolated value. The caller
// supplies t; sampling is deterministic and idempotent:
//
//	pulse, _ := sprig.NewAnimation(sprig.AnimationConfig{
//		From: 0.85, To: 1.15,
//		Duration:    1,
//		Easing:      sprig.EaseInOut,
//		Repeat:      sprig.RepeatForever,
//		Autoreverse: true,
//	})
//	scale := pulse.ValueAt(t)
//
// Easing curves come from [gween]; [AnimGroup] binds animations to fields
// for frame loops. Phase offsets stagger multiple instances of one animation.
//
// # Particles
//
// An [Emitter] is a pure emission model: BornIn and AliveAt are
// deterministic functions of the query window, with particle birth times
// fixed by the birth rate. [ParticleSystem] is the pooled, frame-driven
// simulator consumers render from:
//
//	emitter, _ := sprig.NewEmitter(sprig.NewPointBurst(320, 240, 100))
//	system := sprig.NewParticleSystem(emitter, 256)
//	system.Start()
//	// each frame:
//	system.Update(dt)
//
// See examples/ for runnable demos.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package sprig
