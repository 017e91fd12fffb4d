package types

// EntityID identifies a live entity. IDs start at 1 and are never reused.
type EntityID uint64

// Group is the coarse collision and query class of an entity.
type Group string

const (
	GroupDefender   Group = "defender"
	GroupAttacker   Group = "attacker"
	GroupProjectile Group = "projectile"
	GroupNeutral    Group = "neutral"
)

// Matches reports whether g passes a group filter. An empty filter matches every group.
func (g Group) Matches(filter []Group) bool {
	if len(filter) == 0 {
		return true
	}
	for _, f := range filter {
		if f == g {
			return true
		}
	}
	return false
}
