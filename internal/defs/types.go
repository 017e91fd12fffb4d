// internal/defs/types.go
package defs

import (
	"errors"
	"image/color"
)

// ErrUnknownKind is returned when a definition references an id that does not exist.
var ErrUnknownKind = errors.New("unknown unit kind")

// Reward is granted to the player when an attacker of this kind is killed.
type Reward struct {
	Score   int `yaml:"score"`
	Bananas int `yaml:"bananas"`
}

// Visuals contains parameters for drawing a unit when no sprite frames are loaded.
type Visuals struct {
	Color  color.RGBA `yaml:"color"`
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
}

// Animation describes the sprite sequence of a unit. Only the directory name and
// frame timing matter to the simulation; pixels are loaded by the presentation layer.
type Animation struct {
	Res           string  `yaml:"res"`
	FrameDuration float64 `yaml:"frame_duration"`
	Paused        bool    `yaml:"paused"`
}
