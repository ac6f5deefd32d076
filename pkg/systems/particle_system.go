package systems

import (
	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/types"
)

// ParticlesCapacity is the fixed number of particle slots in a ParticleSystem.
const ParticlesCapacity = 256

// ParticleSpec describes one particle to emit.
type ParticleSpec struct {
	Velocity float64
	Friction float64
	Angle    float64 // degrees
	Lifetime int     // ticks
	Rect     types.Rect
	Color    types.Color
}

// ParticleSystem is a fixed-capacity arena of particles.
//
// Slots are reused by a first-fit linear scan for a dormant particle. When
// every slot is busy new particles are dropped; this only degrades visuals.
//
// A ParticleSystem may be shared by several emitters within the same tick;
// the game loop is single-threaded so no locking is needed.
type ParticleSystem struct {
	particles [ParticlesCapacity]components.Particle
}

// NewParticleSystem creates an empty particle system.
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Reset makes every slot dormant.
func (ps *ParticleSystem) Reset() {
	ps.particles = [ParticlesCapacity]components.Particle{}
}

// FreeSlot returns the index of the first dormant particle, or -1 if the
// pool is saturated.
func (ps *ParticleSystem) FreeSlot() int {
	for i := range ps.particles {
		if !ps.particles[i].IsActive() {
			return i
		}
	}
	return -1
}

// Emit arms the first dormant particle with spec. It reports false when the
// pool is saturated and the particle was dropped.
func (ps *ParticleSystem) Emit(spec ParticleSpec) bool {
	i := ps.FreeSlot()
	if i < 0 {
		return false
	}
	ps.particles[i].Start(spec.Velocity, spec.Friction, spec.Angle, spec.Lifetime, spec.Rect, spec.Color)
	return true
}

// EmitN emits up to count particles, building each one with next. It stops
// early when the pool saturates and returns the number actually emitted.
// next is only called for particles that have a slot.
func (ps *ParticleSystem) EmitN(count int, next func() ParticleSpec) int {
	emitted := 0
	for i := 0; i < ParticlesCapacity && emitted < count; i++ {
		if ps.particles[i].IsActive() {
			continue
		}
		spec := next()
		ps.particles[i].Start(spec.Velocity, spec.Friction, spec.Angle, spec.Lifetime, spec.Rect, spec.Color)
		emitted++
	}
	return emitted
}

// Update advances every particle by one tick.
func (ps *ParticleSystem) Update() {
	for i := range ps.particles {
		ps.particles[i].Update()
	}
}

// ActiveCount returns the number of live particles.
func (ps *ParticleSystem) ActiveCount() int {
	n := 0
	for i := range ps.particles {
		if ps.particles[i].IsActive() {
			n++
		}
	}
	return n
}

// Get returns the particle in slot i.
func (ps *ParticleSystem) Get(i int) *components.Particle {
	return &ps.particles[i]
}

// Draw emits a filled rectangle for every live particle, fading out with
// its remaining lifetime.
func (ps *ParticleSystem) Draw(dl *types.DrawList, layer types.Layer) {
	for i := range ps.particles {
		p := &ps.particles[i]
		if !p.IsActive() {
			continue
		}
		dl.FillRect(layer, p.Bounds(), p.Color.WithAlpha(p.Alpha()))
	}
}
