// internal/ui/toolbar.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"jungle-defense/internal/config"
	"jungle-defense/internal/defs"
)

const (
	removeButtonW   = 150
	placeButtonW    = 125
	placeButtonsX   = 250
	placeButtonStep = 150
)

// RemoveSlot is the toolbar slot of the demobilize button.
const RemoveSlot = -1

// Toolbar is the action bar below the field: one demobilize button and one
// button per placeable defender, labelled with its price.
type Toolbar struct {
	remove *Button
	place  []*Button
}

func NewToolbar(lib *defs.Library) *Toolbar {
	t := &Toolbar{
		remove: NewButton(0, config.ToolbarButtonY, removeButtonW, config.ToolbarButtonH, "Demobilize", config.RemoveButton),
	}
	for i, id := range lib.Placeables {
		x := float64(placeButtonsX + i*placeButtonStep)
		label := fmt.Sprintf("%d$", lib.Defenders[id].Price)
		t.place = append(t.place, NewButton(x, config.ToolbarButtonY, placeButtonW, config.ToolbarButtonH, label, config.PlaceButton))
	}
	return t
}

// HitTest returns the slot under the point: RemoveSlot, a placeable index,
// or ok == false when no button is hit.
func (t *Toolbar) HitTest(x, y float64) (slot int, ok bool) {
	if t.remove.Contains(x, y) {
		return RemoveSlot, true
	}
	for i, b := range t.place {
		if b.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Highlight marks the active slot; any other value clears the highlight.
func (t *Toolbar) Highlight(slot int, active bool) {
	t.remove.Active = active && slot == RemoveSlot
	for i, b := range t.place {
		b.Active = active && slot == i
	}
}

// Draw renders the buttons. icons may return nil for a slot without art.
func (t *Toolbar) Draw(screen *ebiten.Image, face font.Face, cx, cy float64, icons func(slot int) *ebiten.Image) {
	t.remove.Draw(screen, face, t.remove.Contains(cx, cy))
	for i, b := range t.place {
		b.Draw(screen, face, b.Contains(cx, cy))
		if icons == nil {
			continue
		}
		if img := icons(i); img != nil {
			drawIcon(screen, img, b)
		}
	}
}

func drawIcon(screen, img *ebiten.Image, b *Button) {
	const size = 40.0
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(w), size/float64(h))
	op.GeoM.Translate(b.X+4, b.Y+4)
	screen.DrawImage(img, op)
}
