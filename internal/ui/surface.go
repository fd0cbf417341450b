package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/robalobadob/pexeso/internal/game"
)

// imageSurface implements game.Surface on an ebiten image.
type imageSurface struct {
	dst *ebiten.Image
}

var _ game.Surface = imageSurface{}

func (s imageSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s imageSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), clr, false)
}

func (s imageSurface) Text(str string, face font.Face, x, y int, clr color.Color) {
	text.Draw(s.dst, str, face, x, y, clr)
}
