// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"constellation-defenders/internal/app"
	"constellation-defenders/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ChargeBar — шкала заряда луча из ChargeBarSegments делений.
type ChargeBar struct {
	X, Y          float32
	SegmentWidth  float32
	SegmentHeight float32
}

func NewChargeBar(x, y float32) *ChargeBar {
	return &ChargeBar{X: x, Y: y, SegmentWidth: 4, SegmentHeight: 3}
}

// Draw заполняет деления до frame включительно; готовая шкала светится белым.
func (b *ChargeBar) Draw(screen *ebiten.Image, frame int, ready bool, charge float64) {
	for i := 0; i < config.ChargeBarSegments; i++ {
		x := b.X + float32(i)*(b.SegmentWidth+1)
		var clr color.Color = config.TextDimColor
		switch {
		case ready:
			clr = config.ChargeFullColor
		case i < frame || (i == frame && charge > 0):
			clr = config.ChargeColor
		}
		vector.DrawFilledRect(screen, x, b.Y, b.SegmentWidth, b.SegmentHeight, clr, false)
	}
}

// RoundIndicator — счётчик раундов "round/cap".
type RoundIndicator struct {
	X, Y int
}

func NewRoundIndicator(x, y int) *RoundIndicator {
	return &RoundIndicator{X: x, Y: y}
}

func (i *RoundIndicator) Draw(screen *ebiten.Image, round, displayCap int) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d/%d", round, displayCap), i.X, i.Y)
}

// StarHealthIndicator — по одной полоске здоровья на звезду.
type StarHealthIndicator struct {
	X, Y  float32
	Width float32
}

func NewStarHealthIndicator(x, y, width float32) *StarHealthIndicator {
	return &StarHealthIndicator{X: x, Y: y, Width: width}
}

func (i *StarHealthIndicator) Draw(screen *ebiten.Image, health []float64) {
	for n, h := range health {
		y := i.Y - float32(n)*3
		fill := i.Width * float32(h/config.StarHealthMax)
		vector.DrawFilledRect(screen, i.X, y, i.Width, 2, config.StarDimColor, false)
		vector.DrawFilledRect(screen, i.X, y, fill, 2, config.StarColor, false)
	}
}

// HUD собирает индикаторы уровня вместе.
type HUD struct {
	Charge *ChargeBar
	Round  *RoundIndicator
	Stars  *StarHealthIndicator
}

func NewHUD() *HUD {
	return &HUD{
		Charge: NewChargeBar(2, 2),
		Round:  NewRoundIndicator(config.ScreenWidth-52, 0),
		Stars:  NewStarHealthIndicator(2, config.ScreenHeight-4, 24),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, snap app.Snapshot) {
	h.Charge.Draw(screen, snap.ChargeFrame, snap.ChargeReady, snap.Charge)
	h.Round.Draw(screen, snap.Round, snap.Cap)
	h.Stars.Draw(screen, snap.StarHealth())
	if !snap.Retaliate {
		DrawText(screen, "R", config.ScreenWidth-9, config.ScreenHeight-14, config.TextDimColor)
	}
	if snap.Milky {
		DrawCentered(screen, "MILKY WAY", config.ScreenWidth/2, config.ScreenHeight-14, config.TextDimColor)
	}
}
