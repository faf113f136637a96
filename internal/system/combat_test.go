package system

import (
	"testing"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

func TestMeleeHitsInsideArc(t *testing.T) {
	tests := []struct {
		name    string
		facing  component.Direction
		offset  geom.Vec2 // от центра дуги
		wantHit bool
	}{
		{"forward hit", component.Forward, geom.V(10, 5), true},
		{"forward miss on short axis", component.Forward, geom.V(10, 12), false},
		{"forward miss on long axis", component.Forward, geom.V(16, 0), false},
		{"left hit", component.Left, geom.V(5, 10), true},
		{"left miss", component.Left, geom.V(12, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, geom.Vec2{})
			w.mech().Facing = tt.facing
			enemyPos := tt.facing.ArcOffset().Add(tt.offset)
			id := w.enemy(enemyPos, component.SpecB, 5)

			NewCombatSystem(w.ecs, w.events).Update(dt, input.Snapshot{}.Press(input.Melee))

			if got := w.rec.cues(event.CueSlash); got != 1 {
				t.Errorf("expected 1 slash cue, got %d", got)
			}
			_, alive := w.ecs.Enemies[id]
			gs := w.ecs.GameState
			if tt.wantHit {
				if alive || gs.Kills != 1 || gs.Charge != 1 {
					t.Errorf("expected kill: alive=%v kills=%d charge=%v", alive, gs.Kills, gs.Charge)
				}
				if w.rec.count(event.CorpseSpawned) != 1 {
					t.Errorf("expected a corpse event")
				}
			} else if !alive || gs.Kills != 0 || gs.Charge != 0 {
				t.Errorf("expected miss: alive=%v kills=%d charge=%v", alive, gs.Kills, gs.Charge)
			}
		})
	}
}

func TestAreaActionFiresAtThreshold(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	w.ecs.GameState.Charge = config.ChargeRequirement

	NewCombatSystem(w.ecs, w.events).Update(dt, input.Snapshot{}.Hold(input.Melee, input.Ranged))

	gs := w.ecs.GameState
	if gs.Charge != 0 {
		t.Errorf("charge must reset to 0, got %v", gs.Charge)
	}
	if w.mech().Area.Finished() {
		t.Errorf("area cooldown must restart")
	}
	ids := w.ecs.BeamIDs()
	if len(ids) != 1 {
		t.Fatalf("expected one beam, got %d", len(ids))
	}
	beamPos := w.ecs.Positions[ids[0]].Vec2
	if beamPos.X != 0 || beamPos.Y != -config.BeamOffset {
		t.Errorf("beam must spawn in front of the mech, got %v", beamPos)
	}
	if w.ecs.Beams[ids[0]].Facing != component.Forward {
		t.Errorf("beam must face forward")
	}
	if len(w.ecs.Bullets) != 0 {
		t.Errorf("only one action per tick")
	}
	if w.rec.cues(event.CueBeam) != 1 {
		t.Errorf("expected a beam cue")
	}
}

func TestAreaActionNeedsCharge(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	w.ecs.GameState.Charge = config.ChargeRequirement - 0.5

	NewCombatSystem(w.ecs, w.events).Update(dt, input.Snapshot{}.Hold(input.Melee, input.Ranged))

	if len(w.ecs.Beams) != 0 {
		t.Errorf("beam must not fire below the threshold")
	}
	if w.ecs.GameState.Charge != config.ChargeRequirement-0.5 {
		t.Errorf("charge must be untouched, got %v", w.ecs.GameState.Charge)
	}
	if len(w.ecs.Bullets) != 1 {
		t.Errorf("held ranged input must fire a bullet, got %d", len(w.ecs.Bullets))
	}
}

func TestOneProjectileTwoKillsOneCue(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	bullet := w.ecs.SpawnBullet(geom.V(0, -40), component.Forward, config.BulletSpeed)
	w.enemy(geom.V(3, -40), component.SpecA, 25)
	w.enemy(geom.V(-3, -40), component.SpecB, 5)

	NewCombatSystem(w.ecs, w.events).Update(dt, input.Snapshot{})

	gs := w.ecs.GameState
	if gs.Kills != 2 || gs.Charge != 2 {
		t.Errorf("expected 2 kills and 2 charge, got %d and %v", gs.Kills, gs.Charge)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("both enemies must be removed")
	}
	if _, ok := w.ecs.Bullets[bullet]; ok {
		t.Errorf("bullet must be destroyed after a hit")
	}
	if got := w.rec.cues(event.CueEnemyDestroyed); got != 1 {
		t.Errorf("expected exactly one enemy_destroyed cue, got %d", got)
	}
}

func TestBeamKillsGiveNoCharge(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	w.ecs.SpawnBeam(geom.V(0, -80), component.Forward)
	inside := w.enemy(geom.V(20, -100), component.SpecB, 5)
	outside := w.enemy(geom.V(31, -80), component.SpecB, 5)

	NewCombatSystem(w.ecs, w.events).Update(dt, input.Snapshot{})

	if _, ok := w.ecs.Enemies[inside]; ok {
		t.Errorf("enemy inside the corridor must die")
	}
	if _, ok := w.ecs.Enemies[outside]; !ok {
		t.Errorf("enemy outside the corridor must survive")
	}
	gs := w.ecs.GameState
	if gs.Kills != 1 || gs.Charge != 0 {
		t.Errorf("expected 1 kill and no charge, got %d and %v", gs.Kills, gs.Charge)
	}
}

func TestStunRelease(t *testing.T) {
	for _, retaliate := range []bool{true, false} {
		w := newWorld(t, geom.Vec2{})
		w.ecs.GameState.Retaliate = retaliate
		w.mech().Stun.Reset()
		id := w.enemy(geom.V(10, 0), component.SpecA, 25)
		cs := NewCombatSystem(w.ecs, w.events)

		cs.Update(config.StunCooldown/2, input.Snapshot{})
		if _, ok := w.ecs.Enemies[id]; !ok {
			t.Fatalf("retaliate=%v: nothing may happen while stunned", retaliate)
		}
		cs.Update(config.StunCooldown/2, input.Snapshot{})

		_, alive := w.ecs.Enemies[id]
		if retaliate {
			if alive || w.ecs.GameState.Kills != 1 || w.ecs.GameState.Charge != 1 {
				t.Errorf("release must kill nearby enemy once: alive=%v kills=%d", alive, w.ecs.GameState.Kills)
			}
			if w.rec.cues(event.CueSlash) != 1 || w.rec.cues(event.CueEnemyDestroyed) != 1 {
				t.Errorf("expected slash and enemy_destroyed cues")
			}
		} else if !alive {
			t.Errorf("without retaliate the stun ends quietly")
		}
	}
}

func TestStunReleaseAndArcsShareOneCue(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	w.ecs.GameState.Retaliate = true
	w.mech().Stun.Reset()
	byMech := w.enemy(geom.V(10, 0), component.SpecA, 25) // радиус выхода из оглушения
	inArc := w.enemy(geom.V(0, -26), component.SpecB, 5)  // только в передней дуге
	cs := NewCombatSystem(w.ecs, w.events)

	cs.Update(config.StunCooldown/2, input.Snapshot{})
	cs.Update(config.StunCooldown/2, input.Snapshot{})

	for _, id := range []types.EntityID{byMech, inArc} {
		if _, ok := w.ecs.Enemies[id]; ok {
			t.Errorf("enemy %d must die on stun release", id)
		}
	}
	if got := w.ecs.GameState.Kills; got != 2 {
		t.Errorf("expected 2 kills, got %d", got)
	}
	if got := w.rec.cues(event.CueEnemyDestroyed); got != 1 {
		t.Errorf("expected 1 enemy_destroyed cue from the mech, got %d", got)
	}
}

func TestKilledEnemySkippedByLaterPasses(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	id := w.enemy(geom.V(0, -20), component.SpecB, 5)
	bullet := w.ecs.SpawnBullet(geom.V(0, -22), component.Backward, config.BulletSpeed)
	w.ecs.SpawnBeam(geom.V(0, -80), component.Forward)

	NewCombatSystem(w.ecs, w.events).Update(dt, input.Snapshot{}.Press(input.Melee))

	if _, ok := w.ecs.Enemies[id]; ok {
		t.Fatal("enemy inside the arc must die")
	}
	gs := w.ecs.GameState
	if gs.Kills != 1 || gs.Charge != 1 {
		t.Errorf("expected one melee kill with charge, got %d kills and %v charge", gs.Kills, gs.Charge)
	}
	if _, ok := w.ecs.Bullets[bullet]; !ok {
		t.Error("bullet scored no hit and must survive")
	}
	if got := w.rec.cues(event.CueEnemyDestroyed); got != 1 {
		t.Errorf("expected 1 enemy_destroyed cue, got %d", got)
	}
}

func TestCooldownGating(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	cs := NewCombatSystem(w.ecs, w.events)

	cs.Update(dt, input.Snapshot{}.Press(input.Melee))
	cs.Update(dt, input.Snapshot{}.Press(input.Melee))
	if got := w.rec.cues(event.CueSlash); got != 1 {
		t.Errorf("melee cooldown must block the second swing, got %d", got)
	}

	// луч и удар не выходят, пока мех оглушён
	w.mech().Stun.Reset()
	w.ecs.GameState.Charge = 100
	cs.Update(dt, input.Snapshot{}.Press(input.Melee, input.Ranged))
	if len(w.ecs.Beams) != 0 || len(w.ecs.Bullets) != 0 {
		t.Errorf("stunned mech must not act")
	}
}

func TestRangedRepeatsWhileHeld(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	cs := NewCombatSystem(w.ecs, w.events)
	held := input.Snapshot{}.Hold(input.Ranged)

	// 1 секунда по 1/64: выстрел каждые 0.25с
	for i := 0; i < 64; i++ {
		cs.Update(dt, held)
	}
	if got := w.rec.cues(event.CuePew); got != 4 {
		t.Errorf("expected 4 shots in one second, got %d", got)
	}
}
