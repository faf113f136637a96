// internal/system/animation.go
package system

import (
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/entity"
)

// AnimationSystem переключает кадры ходьбы меха и врагов.
// Интерфейс только читает номера кадров.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	if _, mech, _, ok := s.ecs.Mech(); ok {
		if mech.Moving {
			mech.WalkTimer.Tick(deltaTime)
			mech.WalkFrame = (mech.WalkFrame + mech.WalkTimer.TimesFinished()) % config.WalkFrames
		}
	}
	for _, id := range s.ecs.EnemyIDs() {
		e := s.ecs.Enemies[id]
		e.WalkTimer.Tick(deltaTime)
		e.WalkFrame = (e.WalkFrame + e.WalkTimer.TimesFinished()) % config.WalkFrames
	}
}
