// pkg/render/color.go
package render

import "image/color"

// ArenaColors holds all the colors needed to render the arena.
type ArenaColors struct {
	BackgroundColor color.RGBA
	ArenaColor      color.RGBA
	MechColor       color.RGBA
	ArcColor        color.RGBA
	EnemyColors     []color.RGBA
	StarColor       color.RGBA
	StarDimColor    color.RGBA
	BulletColor     color.RGBA
	BeamColor       color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor blends c1 towards c2 by t in [0, 1].
func LerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return color.RGBA{
		R: mix(c1.R, c2.R),
		G: mix(c1.G, c2.G),
		B: mix(c1.B, c2.B),
		A: mix(c1.A, c2.A),
	}
}

// FadeColor scales the alpha channel by t.
func FadeColor(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	f := func(v uint8) uint8 { return uint8(float64(v) * t) }
	// premultiplied alpha: каналы масштабируются вместе с альфой
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}
