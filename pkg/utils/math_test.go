package utils

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		diff, want float64
	}{
		{100, 50},
		{-100, -50},
		{20, 0},
		{-20, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := StepToward(tt.diff, 50, 20); got != tt.want {
			t.Errorf("StepToward(%v) = %v, want %v", tt.diff, got, tt.want)
		}
	}
}
