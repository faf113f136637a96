// internal/defs/constellation.go
package defs

import (
	"fmt"
	"math"

	"constellation-defenders/pkg/geom"
)

const (
	milkyChance    = 0.05
	randomMinStars = 2
	randomMaxStars = 8
	randomSpreadX  = 120.0
	randomSpreadY  = 80.0
	sunName        = "sun"
)

// StarPlacement — позиция и имя звезды созвездия.
type StarPlacement struct {
	Name     string
	Position geom.Vec2
}

// RollMilky решает, выпадет ли на случайном уровне одиночное "Солнце" (5%).
func RollMilky(r Rand) bool {
	return r.Float64() >= 1-milkyChance
}

// Constellation возвращает расстановку звёзд уровня.
// milky влияет только на случайную расстановку.
func (lvl LevelDefinition) Constellation(r Rand, milky bool) []StarPlacement {
	switch lvl.Layout {
	case LayoutFixed:
		stars := make([]StarPlacement, len(lvl.Stars))
		for i, p := range lvl.Stars {
			stars[i] = StarPlacement{
				Name:     fmt.Sprintf("%s-%d", lvl.Name, i+1),
				Position: geom.V(p[0], p[1]),
			}
		}
		return stars
	case LayoutRandom:
		return RandomConstellation(r, milky)
	}
	return nil
}

// RandomConstellation — от 2 до 8 звёзд в центральной части арены
// или одно "Солнце" в центре, если milky.
func RandomConstellation(r Rand, milky bool) []StarPlacement {
	if milky {
		return []StarPlacement{{Name: sunName, Position: geom.V(0.5, 0.5)}}
	}
	n := randomMinStars + r.Intn(randomMaxStars-randomMinStars+1)
	stars := make([]StarPlacement, n)
	for i := range stars {
		x := math.Round((r.Float64()-0.5)*randomSpreadX) + 0.5
		y := math.Round((r.Float64()-0.5)*randomSpreadY) + 0.5
		stars[i] = StarPlacement{Name: fmt.Sprintf("uncharted-%d", i+1), Position: geom.V(x, y)}
	}
	return stars
}
