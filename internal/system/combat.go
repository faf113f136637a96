// internal/system/combat.go
package system

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/types"
)

// CombatSystem запускает действия меха по кулдаунам и проверяет попадания
// дуг, снарядов и лучей.
type CombatSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update(deltaTime float64, in input.Snapshot) {
	mechID, mech, _, ok := s.ecs.Mech()
	if !ok {
		return
	}

	mech.TickCooldowns(deltaTime)
	s.fireAction(mechID, mech, in)
	killed := false
	if mech.Stun.JustFinished() && s.ecs.GameState.Retaliate {
		killed = s.stunRelease(mechID, mech)
	}

	s.meleePass(mechID, mech, killed)
	s.rangedPass()
	s.beamPass()

	for i := range mech.Arcs {
		mech.Arcs[i].Advance(deltaTime)
	}
	s.ecs.Flush()
}

// fireAction — не больше одного действия за тик: луч, затем удар, затем выстрел.
func (s *CombatSystem) fireAction(mechID types.EntityID, mech *component.Mech, in input.Snapshot) {
	if !mech.CanAct() {
		return
	}
	gs := s.ecs.GameState
	pos := s.ecs.Positions[mechID].Vec2

	switch {
	case gs.Charge >= config.ChargeRequirement && in.Held(input.Melee) && in.Held(input.Ranged):
		gs.Charge = 0
		mech.Area.Reset()
		s.ecs.SpawnBeam(pos.Add(mech.Facing.Unit().Scale(config.BeamOffset)), mech.Facing)
		s.eventDispatcher.EmitCue(event.CueBeam, mechID)
	case in.JustPressed(input.Melee) && mech.Melee.Finished():
		mech.Melee.Reset()
		mech.Arc(mech.Facing).Start()
		s.eventDispatcher.EmitCue(event.CueSlash, mechID)
	case in.Held(input.Ranged) && mech.Ranged.Finished():
		mech.Ranged.Reset()
		s.ecs.SpawnBullet(pos, mech.Facing, config.BulletSpeed)
		s.eventDispatcher.EmitCue(event.CuePew, mechID)
	}
}

// stunRelease — выход из оглушения в режиме ответного удара:
// все четыре дуги и уничтожение врагов рядом с мехом.
// Сигнал enemy_destroyed отправляет meleePass: источник у них один, мех.
func (s *CombatSystem) stunRelease(mechID types.EntityID, mech *component.Mech) bool {
	for _, d := range component.Directions {
		mech.Arc(d).Start()
	}
	s.eventDispatcher.EmitCue(event.CueSlash, mechID)

	center := s.ecs.Positions[mechID].Vec2
	killed := false
	for _, id := range s.ecs.EnemyIDs() {
		if s.ecs.IsPending(id) {
			continue
		}
		if s.ecs.Positions[id].Distance(center) < config.StunKillRadius {
			killed = RegisterKill(s.ecs, id, KillStun) || killed
		}
	}
	return killed
}
