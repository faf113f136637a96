// internal/system/hit_passes.go
package system

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

// Каждый проход отправляет не больше одного сигнала enemy_destroyed за тик.

// meleePass проверяет активные дуги. killed — были ли убийства при выходе
// из оглушения в этом же тике.
func (s *CombatSystem) meleePass(mechID types.EntityID, mech *component.Mech, killed bool) {
	center := s.ecs.Positions[mechID].Vec2
	for _, d := range component.Directions {
		if !mech.Arc(d).Active {
			continue
		}
		arcCenter := center.Add(d.ArcOffset())
		hx, hy := config.MeleeHalfLong, config.MeleeHalfShort
		if !d.Vertical() {
			hx, hy = hy, hx
		}
		for _, id := range s.ecs.EnemyIDs() {
			if s.ecs.IsPending(id) {
				continue
			}
			if inBox(s.ecs.Positions[id].Vec2, arcCenter, hx, hy) {
				killed = RegisterKill(s.ecs, id, KillMelee) || killed
			}
		}
	}
	if killed {
		s.eventDispatcher.EmitCue(event.CueEnemyDestroyed, mechID)
	}
}

func (s *CombatSystem) rangedPass() {
	var source types.EntityID
	for _, bulletID := range s.ecs.BulletIDs() {
		if s.ecs.IsPending(bulletID) {
			continue
		}
		bulletPos := s.ecs.Positions[bulletID].Vec2
		hit := false
		for _, id := range s.ecs.EnemyIDs() {
			if s.ecs.IsPending(id) {
				continue
			}
			if s.ecs.Positions[id].Distance(bulletPos) < config.BulletHitRadius {
				hit = RegisterKill(s.ecs, id, KillRanged) || hit
			}
		}
		if hit {
			s.ecs.Destroy(bulletID)
			if source == 0 {
				source = bulletID
			}
		}
	}
	if source != 0 {
		s.eventDispatcher.EmitCue(event.CueEnemyDestroyed, source)
	}
}

func (s *CombatSystem) beamPass() {
	var source types.EntityID
	for _, beamID := range s.ecs.BeamIDs() {
		if s.ecs.IsPending(beamID) {
			continue
		}
		beam := s.ecs.Beams[beamID]
		beamPos := s.ecs.Positions[beamID].Vec2
		for _, id := range s.ecs.EnemyIDs() {
			if s.ecs.IsPending(id) {
				continue
			}
			if inBeam(s.ecs.Positions[id].Vec2, beamPos, beam.Facing) && RegisterKill(s.ecs, id, KillBeam) && source == 0 {
				source = beamID
			}
		}
	}
	if source != 0 {
		s.eventDispatcher.EmitCue(event.CueEnemyDestroyed, source)
	}
}

// inBeam — точка внутри коридора луча.
func inBeam(p, beamPos geom.Vec2, facing component.Direction) bool {
	if facing.Vertical() {
		return inBox(p, beamPos, config.BeamHalfWide, config.BeamHalfLong)
	}
	return inBox(p, beamPos, config.BeamHalfLong, config.BeamHalfWide)
}
