// internal/system/utils.go
package system

import (
	"math"

	"constellation-defenders/internal/config"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

// KillSource — чем убит враг. От источника зависит начисление заряда.
type KillSource int

const (
	KillMelee KillSource = iota
	KillRanged
	KillStun
	KillBeam
)

// RegisterKill помечает врага к удалению, увеличивает счётчик убийств и заряд
// и отправляет событие трупа. Уже помеченный враг не засчитывается повторно.
func RegisterKill(ecs *entity.ECS, enemyID types.EntityID, source KillSource) bool {
	enemy, ok := ecs.Enemies[enemyID]
	if !ok || ecs.IsPending(enemyID) {
		return false
	}
	pos := ecs.Positions[enemyID].Vec2

	ecs.Destroy(enemyID)
	ecs.GameState.Kills++
	if source != KillBeam {
		ecs.GameState.AddCharge(config.ChargePerKill)
	}
	ecs.Events().Emit(event.CorpseSpawned, event.CorpseData{Position: pos, Spec: enemy.Spec.String()})
	return true
}

// liveStars — живые звёзды в порядке идентификаторов.
func liveStars(ecs *entity.ECS) []types.EntityID {
	ids := ecs.StarIDs()
	live := ids[:0]
	for _, id := range ids {
		if !ecs.IsPending(id) && !ecs.Stars[id].Dead() {
			live = append(live, id)
		}
	}
	return live
}

// inBox — точка p внутри прямоугольника с центром c и полуразмерами hx, hy (строго).
func inBox(p, c geom.Vec2, hx, hy float64) bool {
	d := p.Sub(c)
	return math.Abs(d.X) < hx && math.Abs(d.Y) < hy
}
