// internal/component/combat.go
package component

// Health holds current and top health. Value only rises above Max through an
// explicit heal with an overload allowance.
type Health struct {
	Value float64
	Max   float64
}

// Fraction returns Value/Max, or 0 for an entity without top health.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Value / h.Max
}

// Wounded reports whether health is below top health.
func (h Health) Wounded() bool {
	return h.Value < h.Max
}

// Cooldown is a countdown that becomes ready once Elapsed reaches Duration.
type Cooldown struct {
	Duration float64
	Elapsed  float64
}

// Advance accumulates dt and reports whether the cooldown is ready.
// Elapsed stops growing once ready, so a ready timer stays armed until Reset.
func (c *Cooldown) Advance(dt float64) bool {
	if c.Elapsed < c.Duration {
		c.Elapsed += dt
	}
	return c.Ready()
}

func (c *Cooldown) Ready() bool {
	return c.Elapsed >= c.Duration
}

func (c *Cooldown) Reset() {
	c.Elapsed = 0
}
