// internal/system/steering.go
package system

import (
	"math"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

// SteeringSystem ведёт врагов к звёздам или к меху в зависимости от типа,
// режима ответного удара и числа оставшихся звёзд. Враг у звезды наносит ей урон.
type SteeringSystem struct {
	ecs *entity.ECS
}

func NewSteeringSystem(ecs *entity.ECS) *SteeringSystem {
	return &SteeringSystem{ecs: ecs}
}

func (s *SteeringSystem) Update(deltaTime float64) {
	mechID, mech, mechPos, ok := s.ecs.Mech()
	if !ok {
		return
	}
	retaliate := s.ecs.GameState.Retaliate

	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.IsPending(id) {
			continue
		}
		enemy := s.ecs.Enemies[id]
		pos := s.ecs.Positions[id]
		vel := s.ecs.Velocities[id]
		stars := liveStars(s.ecs)

		toMech := mechPos.Sub(pos.Vec2)
		dist := toMech.Length()
		dir := toMech.Normalize()

		if !retaliate {
			if dist <= config.CaptureRadius || len(stars) == 0 {
				if dist < config.FleeRadius {
					dir = dir.Neg()
				} else {
					dir = dir.Rotate(geom.Deg2Rad(config.OrbitAngleDeg) * enemy.RotationSign)
				}
			} else {
				dir = s.seekStar(enemy, pos.Vec2, mechPos.Vec2, stars, deltaTime)
			}
		} else {
			switch {
			case dist <= config.StunRange && mech.Stun.Finished() && len(stars) <= config.RetaliateStarLimit:
				// враг бросается на меха; вплотную оглушает его
				if dist < config.EnemyContactRadius {
					mech.Stun.Reset()
					s.ecs.Events().EmitCue(event.CueUnstun, mechID)
				}
			case enemy.Spec == component.SpecA && dist <= config.StunRange && len(stars) > config.RetaliateStarLimit:
				dir = dir.Rotate(geom.Deg2Rad(config.TightOrbitAngleDeg) * enemy.RotationSign)
			case len(stars) == 0:
				// звёзд нет: идём на меха
			default:
				dir = s.seekStar(enemy, pos.Vec2, mechPos.Vec2, stars, deltaTime)
			}
		}

		vel.Vec2 = vel.Add(dir.Scale(config.EnemyAcceleration)).ClampLength(config.EnemyMinSpeed, config.EnemyMaxSpeed)
		pos.Vec2 = pos.Add(vel.Scale(deltaTime))
	}
}

// seekStar выбирает звезду по метрике типа врага и возвращает направление к ней.
// Вплотную к звезде враг наносит урон и отскакивает.
func (s *SteeringSystem) seekStar(enemy *component.Enemy, pos, mechPos geom.Vec2, stars []types.EntityID, deltaTime float64) geom.Vec2 {
	target := stars[0]
	best := math.Inf(1)
	for i, id := range stars {
		starPos := s.ecs.Positions[id].Vec2
		var metric float64
		if enemy.Spec == component.SpecA {
			metric = starPos.Distance(pos)
		} else {
			// звезда, дальняя от меха
			metric = 1 / starPos.Distance(mechPos)
		}
		if i == 0 || metric < best {
			target = id
			best = metric
		}
	}

	toStar := s.ecs.Positions[target].Sub(pos)
	dir := toStar.Normalize()
	if toStar.Length() < config.EnemyContactRadius {
		s.ecs.Stars[target].Damage(enemy.DPS * deltaTime)
		dir = dir.Neg()
	}
	return dir
}
