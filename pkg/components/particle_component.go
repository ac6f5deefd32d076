package components

import (
	"math"

	"github.com/decker502/cnake/pkg/types"
)

// Particle is a single short-lived visual particle.
//
// A particle is dormant while its timer is inactive. Start arms it; every
// Update integrates position along Direction by Velocity, decays Velocity by
// Friction and ticks the timer down. Once the timer expires the particle is
// dormant again and its slot can be reused.
type Particle struct {
	X, Y   float64 // centre, pixels
	W, H   float64
	DX, DY float64 // unit direction

	Velocity float64
	Friction float64 // (0,1)

	Color types.Color
	Timer Timer
}

// Start arms the particle. angle is in degrees, measured clockwise from the
// +X axis in screen space; rect gives the spawn centre and the size.
func (p *Particle) Start(velocity, friction, angle float64, lifetime int, rect types.Rect, color types.Color) {
	p.X = rect.X
	p.Y = rect.Y
	p.W = rect.W
	p.H = rect.H

	rad := angle * (math.Pi / 180)
	p.DX = math.Cos(rad)
	p.DY = math.Sin(rad)

	p.Velocity = velocity
	p.Friction = friction

	p.Timer.Init(lifetime)
	p.Timer.Start()

	p.Color = color
}

// IsActive reports whether the particle is alive.
func (p *Particle) IsActive() bool {
	return p.Timer.IsActive()
}

// Update advances the particle by one tick. Dormant particles are skipped.
func (p *Particle) Update() {
	if !p.Timer.IsActive() {
		return
	}

	p.X += p.DX * p.Velocity
	p.Y += p.DY * p.Velocity

	p.Velocity *= p.Friction

	p.Timer.Update()
}

// Alpha 随剩余寿命线性淡出
func (p *Particle) Alpha() uint8 {
	return types.AlphaFromUnit(p.Timer.UnitProgress(false))
}

// Bounds returns the particle rectangle centred on its position.
func (p *Particle) Bounds() types.Rect {
	return types.Rect{
		X: math.Trunc(p.X - p.W/2),
		Y: math.Trunc(p.Y - p.H/2),
		W: p.W,
		H: p.H,
	}
}
