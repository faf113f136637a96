// internal/tty/view.go
package tty

import (
	"fmt"
	"strings"

	"constellation-defenders/internal/app"
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/menu"
	"constellation-defenders/pkg/geom"
	"constellation-defenders/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

const hudRows = 1

var (
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStar   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMech   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBullet = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBeam   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleArc    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleEnemy  = [2]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorRed),
		tcell.StyleDefault.Foreground(tcell.ColorOrange),
	}
)

// View рисует экраны на терминале. Арена 160×144 сжимается до размера окна.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Cell переводит мировые координаты в клетку арены (без учёта строки HUD).
func (v *View) Cell(p geom.Vec2) (int, int) {
	w, h := v.arenaSize()
	x := int((p.X + config.ScreenWidth/2) / config.ScreenWidth * float64(w))
	y := int((config.ScreenHeight/2 - p.Y) / config.ScreenHeight * float64(h))
	return x, y + hudRows
}

func (v *View) arenaSize() (int, int) {
	w, h := v.screen.Size()
	h -= hudRows
	if h < 1 {
		h = 1
	}
	return w, h
}

func (v *View) put(x, y int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if x < 0 || y < hudRows || x >= w || y >= h {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) centered(y int, s string, style tcell.Style) {
	w, _ := v.screen.Size()
	v.text((w-len([]rune(s)))/2, y, s, style)
}

// DrawLevel рисует партию по снимку.
func (v *View) DrawLevel(snap app.Snapshot) {
	v.screen.Clear()

	for _, b := range snap.Beams {
		hx, hy := config.BeamHalfWide, config.BeamHalfLong
		if !b.Facing.Vertical() {
			hx, hy = hy, hx
		}
		v.fillBox(b.Position, hx, hy, '░', styleBeam)
	}
	for _, s := range snap.Stars {
		r := '*'
		if s.Frame >= 4 {
			r = '+'
		}
		x, y := v.Cell(s.Position)
		v.put(x, y, r, styleStar)
	}
	for _, e := range snap.Enemies {
		r := 'a'
		if e.Spec == component.SpecB {
			r = 'b'
		}
		x, y := v.Cell(e.Position)
		v.put(x, y, r, styleEnemy[int(e.Spec)%len(styleEnemy)])
	}
	for _, b := range snap.Bullets {
		x, y := v.Cell(b.Position)
		v.put(x, y, '·', styleBullet)
	}
	if m := snap.Mech; m != nil {
		for _, arc := range m.Arcs {
			if !arc.Active {
				continue
			}
			x, y := v.Cell(m.Position.Add(arc.Facing.ArcOffset()))
			v.put(x, y, '~', styleArc)
		}
		x, y := v.Cell(m.Position)
		style := styleMech
		if m.Stunned {
			style = styleDim
		}
		v.put(x, y, facingRune(m.Facing), style)
	}

	v.drawHUD(snap)
	if snap.Paused {
		_, h := v.screen.Size()
		v.centered(h/2, " PAUSED ", styleText.Reverse(true))
	}
}

func (v *View) drawHUD(snap app.Snapshot) {
	bar := strings.Repeat("=", snap.ChargeFrame) + strings.Repeat(".", config.ChargeBarSegments-snap.ChargeFrame)
	if snap.ChargeReady {
		bar = strings.Repeat("#", config.ChargeBarSegments)
	}
	hud := fmt.Sprintf("[%s] %d/%d K%d", bar, snap.Round, snap.Cap, snap.Kills)
	if !snap.Retaliate {
		hud += " R"
	}
	v.text(0, 0, hud, styleText)
}

func (v *View) fillBox(center geom.Vec2, hx, hy float64, r rune, style tcell.Style) {
	x0, y0 := v.Cell(center.Add(geom.V(-hx, hy)))
	x1, y1 := v.Cell(center.Add(geom.V(hx, -hy)))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v.put(x, y, r, style)
		}
	}
}

func facingRune(d component.Direction) rune {
	switch d {
	case component.Backward:
		return '^'
	case component.Forward:
		return 'v'
	case component.Left:
		return '<'
	case component.Right:
		return '>'
	}
	return '@'
}

// DrawMenu — титульный экран.
func (v *View) DrawMenu() {
	v.screen.Clear()
	_, h := v.screen.Size()
	v.centered(h/2-2, "CONSTELLATION DEFENDERS", styleStar)
	v.centered(h/2+1, "press A or Enter", styleText)
	v.centered(h-1, "arrows move  z melee  x ranged  s select  q quit", styleDim)
}

// DrawSelect — шесть слотов уровней.
func (v *View) DrawSelect(sel *menu.Selector, names []string) {
	v.screen.Clear()
	w, _ := v.screen.Size()
	v.centered(1, "SELECT LEVEL", styleText)
	colWidth := w / sel.Columns
	for i, name := range names {
		label := fmt.Sprintf(" %s %s ", utils.ToRoman(i+1), name)
		style := styleDim
		if i == sel.Index {
			style = styleStar.Reverse(true)
		}
		v.text((i%sel.Columns)*colWidth+1, 3+(i/sel.Columns)*2, label, style)
	}
	status := "retaliate on"
	if !sel.Retaliate {
		status = "retaliate off"
	}
	v.centered(8, status, styleDim)
}

// DrawResults — открытые панели итогов.
func (v *View) DrawResults(seq *menu.ResultsSequence) {
	v.screen.Clear()
	_, h := v.screen.Size()
	if seq.Visible() {
		for i, line := range seq.Lines() {
			v.centered(h/2-3+i*2, line, styleText)
		}
	}
	if seq.Complete() {
		v.centered(h-2, fmt.Sprintf("kills %d", seq.Kills), styleDim)
	}
}
