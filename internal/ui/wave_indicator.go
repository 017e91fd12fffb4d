// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"jungle-defense/internal/config"
)

// WaveIndicator shows the number of completed waves in roman numerals.
type WaveIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextLightColor,
		OutlineColor: color.Black,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw does nothing before the first wave completes.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waves int) {
	if waves <= 0 {
		return
	}
	label := toRoman(waves)
	fg := i.Color
	if waves%10 == 0 {
		fg = config.RemoveColor
	}
	x := i.X - text.BoundString(face, label).Dx()/2
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
			}
		}
	}
	text.Draw(screen, label, face, x, i.Y, fg)
}
