// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	X, Y, W, H float64
	Text       string
	BgColor    color.RGBA
	TextColor  color.Color
	Active     bool
}

// NewButton creates a new button.
func NewButton(x, y, w, h float64, label string, bg color.RGBA) *Button {
	return &Button{
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Text:      label,
		BgColor:   bg,
		TextColor: color.White,
	}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Draw renders the button; hovered buttons are drawn darker.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered {
		bg = darken(bg)
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	stroke := color.RGBA{60, 60, 60, 255}
	if b.Active {
		stroke = color.RGBA{255, 255, 255, 255}
	}
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, stroke, false)

	bounds := text.BoundString(face, b.Text)
	tx := int(b.X + (b.W-float64(bounds.Dx()))/2)
	ty := int(b.Y + (b.H+float64(bounds.Dy()))/2)
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.7),
		G: uint8(float64(c.G) * 0.7),
		B: uint8(float64(c.B) * 0.7),
		A: c.A,
	}
}
