// pkg/geom/vec2.go
package geom

import "math"

// Vec2 — двумерный вектор в координатах арены (центр арены в нуле).
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

// Distance между двумя точками.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Normalize возвращает единичный вектор или нулевой, если длина равна нулю.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// ClampLength ограничивает длину вектора диапазоном [min, max].
// Нулевой вектор не имеет направления и возвращается как есть.
func (v Vec2) ClampLength(min, max float64) Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	switch {
	case l < min:
		return v.Scale(min / l)
	case l > max:
		return v.Scale(max / l)
	}
	return v
}

// Rotate поворачивает вектор на угол в радианах (против часовой стрелки).
func (v Vec2) Rotate(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Round — позиция для отрисовки; истинная позиция остаётся дробной.
func (v Vec2) Round() Vec2 {
	return Vec2{math.Round(v.X), math.Round(v.Y)}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// FromAngle строит единичный вектор под углом rad к оси X.
func FromAngle(rad float64) Vec2 {
	sin, cos := math.Sincos(rad)
	return Vec2{cos, sin}
}

func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
