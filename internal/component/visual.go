// internal/component/visual.go
package component

// Animation tracks which sprite frame an entity shows. The simulation only needs
// the frame count; pixels live in the presentation layer, keyed by Res.
type Animation struct {
	Res           string
	Frames        int
	FrameDuration float64
	Frame         int
	Timer         float64
	Paused        bool
}

// Advance steps the animation by dt seconds, wrapping at the last frame.
func (a *Animation) Advance(dt float64) {
	if a.Paused || a.Frames <= 1 || a.FrameDuration <= 0 {
		return
	}
	a.Timer += dt
	for a.Timer >= a.FrameDuration {
		a.Timer -= a.FrameDuration
		a.Frame = (a.Frame + 1) % a.Frames
	}
}

// SetFrame jumps to frame i, clamped to the available frames.
func (a *Animation) SetFrame(i int) {
	switch {
	case i < 0:
		i = 0
	case i >= a.Frames:
		i = a.Frames - 1
	}
	if i < 0 {
		i = 0
	}
	a.Frame = i
	a.Timer = 0
}
