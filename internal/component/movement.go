// internal/component/movement.go
package component

import "constellation-defenders/pkg/geom"

// Position — истинная (дробная) позиция сущности.
type Position struct {
	geom.Vec2
}

// Velocity — скорость в единицах арены в секунду.
type Velocity struct {
	geom.Vec2
}

func NewPosition(v geom.Vec2) *Position {
	return &Position{Vec2: v}
}
