package component

import "testing"

func TestCooldownStaysArmed(t *testing.T) {
	c := Cooldown{Duration: 0.5}
	for i := 0; i < 4; i++ {
		if c.Advance(0.1) {
			t.Fatalf("ready after %d steps", i+1)
		}
	}
	if !c.Advance(0.1) {
		t.Fatal("not ready after 0.5s")
	}
	elapsed := c.Elapsed
	if !c.Advance(0.1) || c.Elapsed != elapsed {
		t.Errorf("armed cooldown kept accumulating: %v -> %v", elapsed, c.Elapsed)
	}
	c.Reset()
	if c.Ready() {
		t.Error("ready after Reset")
	}
}

func TestAnimationAdvance(t *testing.T) {
	tests := []struct {
		name string
		anim Animation
		dt   float64
		want int
	}{
		{"wraps", Animation{Frames: 3, FrameDuration: 0.1}, 0.35, 0},
		{"single step", Animation{Frames: 3, FrameDuration: 0.1}, 0.15, 1},
		{"paused", Animation{Frames: 3, FrameDuration: 0.1, Paused: true}, 1, 0},
		{"one frame", Animation{Frames: 1, FrameDuration: 0.1}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.anim.Advance(tt.dt)
			if tt.anim.Frame != tt.want {
				t.Errorf("Frame = %d, want %d", tt.anim.Frame, tt.want)
			}
		})
	}
}

func TestHealthFraction(t *testing.T) {
	h := Health{Value: 333, Max: 1000}
	if got := h.Fraction(); got != 0.333 {
		t.Errorf("Fraction() = %v", got)
	}
	if !h.Wounded() {
		t.Error("Wounded() = false")
	}
	if (Health{}).Fraction() != 0 {
		t.Error("zero health should have zero fraction")
	}
}
