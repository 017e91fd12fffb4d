// internal/defs/attackers.go
package defs

// AttackerDefinition holds the static data for one attacker kind.
type AttackerDefinition struct {
	ID              string    `yaml:"id"`
	Name            string    `yaml:"name"`
	Health          float64   `yaml:"health"`
	Velocity        float64   `yaml:"velocity"`          // world units per second, negative = toward the boundary
	DamagePerSecond float64   `yaml:"damage_per_second"` // spread over ticks while chewing
	KnockbackFactor float64   `yaml:"knockback_factor"`  // displacement per point of damage taken
	KnockbackDecay  float64   `yaml:"knockback_decay"`   // units per second
	Reward          Reward    `yaml:"reward"`
	Animation       Animation `yaml:"animation"`
	Visuals         Visuals   `yaml:"visuals"`
}
