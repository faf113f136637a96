package system

import (
	"testing"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/input"
	"constellation-defenders/pkg/geom"
)

func TestMechMovement(t *testing.T) {
	tests := []struct {
		name       string
		start      geom.Vec2
		held       []input.Button
		setup      func(m *component.Mech)
		wantPos    geom.Vec2
		wantFacing component.Direction
	}{
		{
			name:       "up wins over left",
			held:       []input.Button{input.Left, input.Up},
			wantPos:    geom.V(0, config.MechSpeed*dt),
			wantFacing: component.Backward,
		},
		{
			name:       "down moves forward",
			held:       []input.Button{input.Down, input.Right},
			wantPos:    geom.V(0, -config.MechSpeed*dt),
			wantFacing: component.Forward,
		},
		{
			name:       "slowed while attacking",
			held:       []input.Button{input.Right},
			setup:      func(m *component.Mech) { m.Melee.Reset() },
			wantPos:    geom.V(config.MechSpeed*config.MechSlowdown*dt, 0),
			wantFacing: component.Right,
		},
		{
			name:       "stunned mech turns but stays",
			held:       []input.Button{input.Left},
			setup:      func(m *component.Mech) { m.Stun.Reset() },
			wantPos:    geom.V(0, 0),
			wantFacing: component.Left,
		},
		{
			name:       "beam cooldown freezes the mech",
			held:       []input.Button{input.Left},
			setup:      func(m *component.Mech) { m.Area.Reset() },
			wantPos:    geom.V(0, 0),
			wantFacing: component.Left,
		},
		{
			name:       "clamped at the arena edge",
			start:      geom.V(config.MechBoundX, 0),
			held:       []input.Button{input.Right},
			wantPos:    geom.V(config.MechBoundX, 0),
			wantFacing: component.Right,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, tt.start)
			if tt.setup != nil {
				tt.setup(w.mech())
			}
			NewMovementSystem(w.ecs).Update(dt, input.Snapshot{}.Hold(tt.held...))

			got := w.mechPos()
			if !near(got.X, tt.wantPos.X) || !near(got.Y, tt.wantPos.Y) {
				t.Errorf("expected position %v, got %v", tt.wantPos, got)
			}
			if w.mech().Facing != tt.wantFacing {
				t.Errorf("expected facing %s, got %s", tt.wantFacing, w.mech().Facing)
			}
		})
	}
}

func TestBulletsLeaveArena(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	inside := w.ecs.SpawnBullet(geom.V(0, 0), component.Right, config.BulletSpeed)
	leaving := w.ecs.SpawnBullet(geom.V(80.9, 0), component.Right, config.BulletSpeed)

	NewMovementSystem(w.ecs).Update(dt, input.Snapshot{})

	if _, ok := w.ecs.Bullets[leaving]; ok {
		t.Errorf("bullet past x=81 must be destroyed")
	}
	pos, ok := w.ecs.Positions[inside]
	if !ok {
		t.Fatalf("bullet inside the arena must survive")
	}
	if !near(pos.X, config.BulletSpeed*dt) {
		t.Errorf("expected bullet at x=%v, got %v", config.BulletSpeed*dt, pos.X)
	}
}

func TestBeamExpiresAfterEightFrames(t *testing.T) {
	w := newWorld(t, geom.Vec2{})
	id := w.ecs.SpawnBeam(geom.V(0, -80), component.Forward)
	ms := NewMovementSystem(w.ecs)

	for i := 0; i < 7; i++ {
		ms.Update(config.BeamFrameDuration, input.Snapshot{})
	}
	if _, ok := w.ecs.Beams[id]; !ok {
		t.Fatalf("beam must live for 8 frames")
	}
	ms.Update(config.BeamFrameDuration, input.Snapshot{})
	if _, ok := w.ecs.Beams[id]; ok {
		t.Errorf("beam must be gone after 8 frames")
	}
}
