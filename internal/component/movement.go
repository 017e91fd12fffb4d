// internal/component/movement.go
package component

// Position is a continuous location in world units.
type Position struct {
	X, Y float64
}

// Velocity in world units per second.
type Velocity struct {
	X, Y float64
}

// Advance moves p by v over dt seconds.
func (p *Position) Advance(v Velocity, dt float64) {
	p.X += v.X * dt
	p.Y += v.Y * dt
}
