// internal/defs/projectiles.go
package defs

// ProjectileDefinition holds the flight and hit parameters of a projectile.
type ProjectileDefinition struct {
	ID        string    `yaml:"id"`
	Damage    float64   `yaml:"damage"`
	Speed     float64   `yaml:"speed"`      // initial horizontal velocity
	Jitter    float64   `yaml:"jitter"`     // +/- random spread on Speed
	Drag      float64   `yaml:"drag"`       // horizontal deceleration, units/s^2
	Gravity   float64   `yaml:"gravity"`    // vertical acceleration, units/s^2
	InitialVY float64   `yaml:"initial_vy"` // vertical launch velocity
	OffsetY   float64   `yaml:"offset_y"`   // spawn offset from the cell origin
	Lifespan  float64   `yaml:"lifespan"`
	HitRadius float64   `yaml:"hit_radius"`
	Animation Animation `yaml:"animation"`
	Visuals   Visuals   `yaml:"visuals"`
}
