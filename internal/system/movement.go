// internal/system/movement.go
package system

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/input"
	"constellation-defenders/pkg/utils"
)

// MovementSystem двигает меха, снаряды и врагов, следит за временем жизни лучей
// и убирает погасшие звёзды до боевого прохода.
type MovementSystem struct {
	ecs      *entity.ECS
	steering *SteeringSystem
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs, steering: NewSteeringSystem(ecs)}
}

func (s *MovementSystem) Update(deltaTime float64, in input.Snapshot) {
	s.moveMech(deltaTime, in)
	s.steering.Update(deltaTime)
	s.moveBullets(deltaTime)
	s.updateBeams(deltaTime)
	s.removeDeadStars()
	s.ecs.Flush()
}

// directionFromInput — приоритет Up > Down > Left > Right.
func directionFromInput(in input.Snapshot) (component.Direction, bool) {
	switch {
	case in.Held(input.Up):
		return component.Backward, true
	case in.Held(input.Down):
		return component.Forward, true
	case in.Held(input.Left):
		return component.Left, true
	case in.Held(input.Right):
		return component.Right, true
	}
	return component.Forward, false
}

func (s *MovementSystem) moveMech(deltaTime float64, in input.Snapshot) {
	_, mech, pos, ok := s.ecs.Mech()
	if !ok {
		return
	}
	mech.Moving = false

	dir, pressed := directionFromInput(in)
	if !pressed {
		return
	}
	mech.Facing = dir
	if !mech.CanAct() {
		return
	}

	speed := config.MechSpeed
	if mech.Attacking() {
		speed *= config.MechSlowdown
	}
	next := pos.Add(dir.Unit().Scale(speed * deltaTime))
	next.X = utils.ClampF(next.X, -config.MechBoundX, config.MechBoundX)
	next.Y = utils.ClampF(next.Y, -config.MechBoundY, config.MechBoundY)
	pos.Vec2 = next
	mech.Moving = true
}

func (s *MovementSystem) moveBullets(deltaTime float64) {
	for _, id := range s.ecs.BulletIDs() {
		pos := s.ecs.Positions[id]
		if vel, ok := s.ecs.Velocities[id]; ok {
			pos.Vec2 = pos.Add(vel.Scale(deltaTime))
		}
		if component.OutOfBounds(*pos) {
			s.ecs.Destroy(id)
		}
	}
}

func (s *MovementSystem) updateBeams(deltaTime float64) {
	for _, id := range s.ecs.BeamIDs() {
		if s.ecs.Beams[id].Advance(deltaTime) {
			s.ecs.Destroy(id)
		}
	}
}

func (s *MovementSystem) removeDeadStars() {
	for _, id := range s.ecs.StarIDs() {
		if s.ecs.Stars[id].Dead() {
			s.ecs.Destroy(id)
		}
	}
}
