// internal/defs/defenders.go
package defs

// BehaviorType selects the update logic of a defender.
type BehaviorType string

const (
	BehaviorShooter  BehaviorType = "SHOOTER"
	BehaviorProducer BehaviorType = "PRODUCER"
	BehaviorDurable  BehaviorType = "DURABLE"
	BehaviorHealer   BehaviorType = "HEALER"
	BehaviorBomb     BehaviorType = "BOMB"
	BehaviorPassive  BehaviorType = "PASSIVE"
)

// DefenderDefinition holds the static data for a placeable defender.
// Exactly one of the behavior stat blocks matching Behavior is expected.
type DefenderDefinition struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Kind      string         `yaml:"kind"` // adjacency tag, e.g. "tree"
	Behavior  BehaviorType   `yaml:"behavior"`
	Price     int            `yaml:"price"`
	Health    float64        `yaml:"health"`
	Shooter   *ShooterStats  `yaml:"shooter,omitempty"`
	Producer  *ProducerStats `yaml:"producer,omitempty"`
	Durable   *DurableStats  `yaml:"durable,omitempty"`
	Healer    *HealerStats   `yaml:"healer,omitempty"`
	Bomb      *BombStats     `yaml:"bomb,omitempty"`
	Animation Animation      `yaml:"animation"`
	Visuals   Visuals        `yaml:"visuals"`
}

type ShooterStats struct {
	Cooldown   float64 `yaml:"cooldown"`   // seconds between shots
	Projectile string  `yaml:"projectile"` // ProjectileDefinition.ID
}

type ProducerStats struct {
	Delay            float64 `yaml:"delay"`
	Amount           int     `yaml:"amount"`
	RequiresNeighbor string  `yaml:"requires_neighbor"` // empty = always produces
}

// DurableStats sets the health fractions at which the presented condition changes.
type DurableStats struct {
	DamagedAt  float64 `yaml:"damaged_at"`
	CriticalAt float64 `yaml:"critical_at"`
}

type HealerStats struct {
	HealPerTick    float64 `yaml:"heal_per_tick"`
	BudgetPerVisit float64 `yaml:"budget_per_visit"`
	Overload       float64 `yaml:"overload"` // allowed health above top health
	Speed          float64 `yaml:"speed"`
	Tolerance      float64 `yaml:"tolerance"`
	IdleSeconds    float64 `yaml:"idle_seconds"`
	IdleJitter     float64 `yaml:"idle_jitter"`
}

type BombStats struct {
	Fuse   float64 `yaml:"fuse"`   // seconds between arming and detonation
	Damage float64 `yaml:"damage"` // dealt to every attacker in the neighborhood
	Linger float64 `yaml:"linger"` // seconds the blast stays before the bomb is removed
}
