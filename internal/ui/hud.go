//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding    = 6
	hudLineHeight = 15
)

// HUD paints the status overlay into the top-left corner of the screen,
// on a contrasting box so the text stays readable over open maze cells.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs the overlay.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw renders the status lines over the maze view.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	lines := st.Lines()
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13

	maxw := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > maxw {
			maxw = w
		}
	}
	boxW := maxw + 2*hudPadding
	boxH := len(lines)*hudLineHeight + hudPadding

	h.drawBox(screen, 4, 4, boxW, boxH, color.RGBA{R: 245, G: 245, B: 245, A: 255})

	y := 4 + hudPadding + face.Ascent
	for _, line := range lines {
		text.Draw(screen, line, face, 4+hudPadding, y, color.Black)
		y += hudLineHeight
	}
}

func (h *HUD) drawBox(screen *ebiten.Image, x, y, w, hh int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(hh))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(h.pixel, op)
}
