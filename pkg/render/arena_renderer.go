// pkg/render/arena_renderer.go
package render

import (
	"image/color"

	"constellation-defenders/internal/app"
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	mechSize   = 10
	enemySize  = 6
	bulletSize = 2
	starRadius = 3
)

// ArenaRenderer рисует арену по снимку партии. Начало координат
// симуляции в центре экрана, ось Y направлена вверх.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	colors       *ArenaColors
	arenaImage   *ebiten.Image // предрендеренный задник
}

func NewArenaRenderer(screenWidth, screenHeight int, colors *ArenaColors) *ArenaRenderer {
	r := &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		arenaImage:   ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderArenaImage()
	return r
}

// RenderArenaImage рисует неподвижный задник: поле и границы, в которых ходит мех.
func (r *ArenaRenderer) RenderArenaImage() {
	r.arenaImage.Fill(r.colors.BackgroundColor)

	x0, y0 := r.ToScreen(geom.V(-config.MechBoundX, config.MechBoundY))
	w := float32(2 * config.MechBoundX)
	h := float32(2 * config.MechBoundY)
	vector.DrawFilledRect(r.arenaImage, x0, y0, w, h, r.colors.ArenaColor, false)
	vector.StrokeRect(r.arenaImage, x0, y0, w, h, r.colors.StrokeWidth, DarkenColor(r.colors.MechColor), false)

	// редкая сетка точек
	dot := DarkenColor(r.colors.ArenaColor)
	for x := -64; x <= 64; x += 16 {
		for y := -56; y <= 56; y += 16 {
			sx, sy := r.ToScreen(geom.V(float64(x), float64(y)))
			vector.DrawFilledRect(r.arenaImage, sx, sy, 1, 1, LerpColor(dot, r.colors.StarDimColor, 0.3), false)
		}
	}
}

// ToScreen переводит мировые координаты в экранные.
func (r *ArenaRenderer) ToScreen(p geom.Vec2) (float32, float32) {
	return float32(float64(r.screenWidth)/2 + p.X), float32(float64(r.screenHeight)/2 - p.Y)
}

// Draw рисует кадр: задник, следы, звёзды, врагов, меха, снаряды и лучи.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, corpses []app.Corpse) {
	screen.DrawImage(r.arenaImage, nil)

	for _, c := range corpses {
		t := 1 - float64(c.Frame)/float64(config.CorpseFrames)
		r.drawSquare(screen, c.Position, enemySize, FadeColor(DarkenColor(r.enemyColor(c.Spec)), t))
	}

	for _, star := range snap.Stars {
		clr := LerpColor(r.colors.StarColor, r.colors.StarDimColor, float64(star.Frame)/7)
		x, y := r.ToScreen(star.Render)
		vector.DrawFilledCircle(screen, x, y, starRadius, clr, true)
		if star.Frame == 0 {
			vector.StrokeCircle(screen, x, y, starRadius+2, 1, FadeColor(clr, 0.5), true)
		}
	}

	for _, e := range snap.Enemies {
		pos := e.Render
		if e.Frame%2 == 1 {
			pos.Y++
		}
		r.drawSquare(screen, pos, enemySize, r.enemyColor(e.Spec))
	}

	if snap.Mech != nil {
		r.drawMech(screen, snap.Mech)
	}

	for _, b := range snap.Bullets {
		r.drawSquare(screen, b.Render, bulletSize, r.colors.BulletColor)
	}

	for _, b := range snap.Beams {
		t := 1 - float64(b.Frame)/float64(config.BeamFrames)
		hx, hy := config.BeamHalfWide, config.BeamHalfLong
		if !b.Facing.Vertical() {
			hx, hy = hy, hx
		}
		r.drawBox(screen, b.Position, hx, hy, FadeColor(r.colors.BeamColor, t), true)
	}
}

func (r *ArenaRenderer) drawMech(screen *ebiten.Image, m *app.MechView) {
	body := r.colors.MechColor
	if m.Stunned {
		body = DarkenColor(body)
	}
	pos := m.Render
	if m.Moving && m.Frame%2 == 1 {
		pos.Y++
	}
	r.drawSquare(screen, pos, mechSize, body)

	// "нос" показывает направление взгляда
	nose := pos.Add(m.Facing.Unit().Scale(mechSize / 2))
	r.drawSquare(screen, nose, 3, r.colors.ArcColor)

	for _, arc := range m.Arcs {
		if !arc.Active {
			continue
		}
		hx, hy := config.MeleeHalfLong, config.MeleeHalfShort
		if !arc.Facing.Vertical() {
			hx, hy = hy, hx
		}
		t := 1 - float64(arc.Frame)/float64(config.ArcFrames)
		r.drawBox(screen, m.Position.Add(arc.Facing.ArcOffset()), hx, hy, FadeColor(r.colors.ArcColor, t), false)
	}
}

func (r *ArenaRenderer) enemyColor(spec component.EnemySpec) color.RGBA {
	if int(spec) < len(r.colors.EnemyColors) {
		return r.colors.EnemyColors[spec]
	}
	return r.colors.MechColor
}

func (r *ArenaRenderer) drawSquare(screen *ebiten.Image, center geom.Vec2, size float32, clr color.Color) {
	x, y := r.ToScreen(center)
	vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, clr, false)
}

// drawBox рисует прямоугольник с полуразмерами hx, hy вокруг center.
func (r *ArenaRenderer) drawBox(screen *ebiten.Image, center geom.Vec2, hx, hy float64, clr color.Color, filled bool) {
	x, y := r.ToScreen(center.Add(geom.V(-hx, hy)))
	w, h := float32(2*hx), float32(2*hy)
	if filled {
		vector.DrawFilledRect(screen, x, y, w, h, clr, false)
		return
	}
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, clr, false)
}
