// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Face — единственный шрифт интерфейса, 7×13.
var Face = basicfont.Face7x13

// DrawText рисует строку; y — верхний край строки.
func DrawText(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, Face, x, y+Face.Ascent, clr)
}

// DrawCentered рисует строку по центру относительно cx.
func DrawCentered(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	w := text.BoundString(Face, s).Dx()
	DrawText(dst, s, cx-w/2, y, clr)
}
