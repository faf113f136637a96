package system

import (
	"math"
	"testing"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/utils"
	"constellation-defenders/pkg/geom"
)

func TestBatchSize(t *testing.T) {
	tests := []struct{ round, want int }{
		{1, 1}, {9, 1}, {10, 1}, {19, 1}, {20, 2}, {55, 5}, {99, 9}, {100, 10}, {250, 10},
	}
	for _, tt := range tests {
		if got := BatchSize(tt.round); got != tt.want {
			t.Errorf("round %d: expected %d, got %d", tt.round, tt.want, got)
		}
	}
}

func TestSpawnOffset(t *testing.T) {
	got := SpawnOffset(geom.V(50, 0), 90, 0.5, 0)
	if !near(got.X, -config.SpawnDistance) || math.Abs(got.Y) > 1e-9 {
		t.Errorf("expected spawn opposite the mech at (-120,0), got %v", got)
	}

	// крайние значения сектора 90 градусов
	edge := SpawnOffset(geom.V(50, 0), 90, 1, 0)
	angle := math.Atan2(edge.Y, edge.X)
	if math.Abs(math.Abs(angle)-geom.Deg2Rad(135)) > 1e-9 {
		t.Errorf("expected edge of the band at 135 degrees, got %v", angle*180/math.Pi)
	}

	center := SpawnOffset(geom.V(0.5, 0.5), 360, 0.3, 0.25)
	if l := center.Length(); l < config.SpawnDistance-1e-9 || l > config.SpawnDistanceMax {
		t.Errorf("spawn distance %v outside the ring", l)
	}
}

func newWaveWorld(t *testing.T, cap int, endless bool) (*world, *WaveSystem) {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	w := newWorld(t, geom.V(10, -20))
	w.ecs.Wave = component.NewWave(cap, endless)
	return w, NewWaveSystem(w.ecs, catalog, utils.NewPRNGService(99), w.events)
}

func TestRoundsAdvanceUntilCap(t *testing.T) {
	w, ws := newWaveWorld(t, 12, false)

	ws.Update(0.5)
	if w.ecs.Wave.Round != 0 {
		t.Fatalf("no round before the cadence elapses")
	}
	ws.Update(0.2)
	if w.ecs.Wave.Round != 1 || len(w.ecs.Enemies) != 1 {
		t.Fatalf("expected round 1 with one enemy, got round %d, %d enemies", w.ecs.Wave.Round, len(w.ecs.Enemies))
	}

	prev := w.ecs.Wave.Round
	for i := 0; i < 100; i++ {
		ws.Update(0.25)
		if w.ecs.Wave.Round < prev {
			t.Fatalf("round counter must not decrease")
		}
		if w.ecs.Wave.Round > 12 {
			t.Fatalf("round counter exceeded the cap: %d", w.ecs.Wave.Round)
		}
		prev = w.ecs.Wave.Round
	}
	if w.ecs.Wave.Round != 12 {
		t.Errorf("expected round pinned at the cap, got %d", w.ecs.Wave.Round)
	}
	// раунды 1..9 по одному, 10..12 тоже по одному
	if got := len(w.ecs.Enemies); got != 12 {
		t.Errorf("expected 12 enemies, got %d", got)
	}
	if got := w.rec.count(event.RoundAdvanced); got != 12 {
		t.Errorf("expected 12 round events, got %d", got)
	}

	for _, id := range w.ecs.EnemyIDs() {
		d := w.ecs.Positions[id].Length()
		if d < config.SpawnDistance-1e-6 || d > config.SpawnDistanceMax+1e-6 {
			t.Errorf("enemy spawned %v away from the arena center", d)
		}
		e := w.ecs.Enemies[id]
		if e.RotationSign != 1 && e.RotationSign != -1 {
			t.Errorf("rotation sign must be +-1, got %v", e.RotationSign)
		}
		if (e.Spec == component.SpecA && e.DPS != 25) || (e.Spec == component.SpecB && e.DPS != 5) {
			t.Errorf("unexpected dps %v for spec %s", e.DPS, e.Spec)
		}
		if !w.ecs.Velocities[id].IsZero() {
			t.Errorf("enemies spawn at rest")
		}
	}
}

func TestSpawnRingAroundCenter(t *testing.T) {
	w, ws := newWaveWorld(t, 0, true)
	corner := geom.V(config.MechBoundX, config.MechBoundY)
	w.ecs.Positions[w.mechID].Vec2 = corner

	for i := 0; i < 20; i++ {
		ws.Update(config.RoundCadence)
	}
	if len(w.ecs.Enemies) == 0 {
		t.Fatal("expected enemies to spawn")
	}
	for _, id := range w.ecs.EnemyIDs() {
		pos := w.ecs.Positions[id].Vec2
		if d := pos.Length(); d < config.SpawnDistance-1e-6 || d > config.SpawnDistanceMax+1e-6 {
			t.Errorf("spawn radius from arena center %v outside the ring", d)
		}
	}
}

func TestEndlessIgnoresCap(t *testing.T) {
	w, ws := newWaveWorld(t, 0, true)
	for i := 0; i < 40; i++ {
		ws.Update(config.RoundCadence)
	}
	if w.ecs.Wave.Round != 40 {
		t.Errorf("expected 40 rounds in endless mode, got %d", w.ecs.Wave.Round)
	}
	if w.ecs.Wave.CapReached() {
		t.Errorf("endless wave never reaches its cap")
	}
	// 9 раундов по 1, 10 по 1, 10 по 2, 10 по 3, раунд 40 — 4
	if got := len(w.ecs.Enemies); got != 9+10+20+30+4 {
		t.Errorf("expected 73 enemies, got %d", got)
	}
}
