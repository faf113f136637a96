package system

import (
	"testing"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

const dt = 1.0 / 64.0

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) cues(cue event.Cue) int {
	n := 0
	for _, e := range r.events {
		if c, ok := e.Data.(event.CueData); ok && e.Type == event.SoundCue && c.Cue == cue {
			n++
		}
	}
	return n
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type world struct {
	ecs    *entity.ECS
	events *event.Dispatcher
	rec    *recorder
	mechID types.EntityID
}

// newWorld — реестр с готовым к действиям мехом в точке mechPos.
func newWorld(t *testing.T, mechPos geom.Vec2) *world {
	t.Helper()
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec,
		event.SoundCue, event.CorpseSpawned, event.EntitySpawned, event.EntityDestroyed,
		event.RoundAdvanced, event.MatchEnded, event.GraceStarted)
	ecs := entity.NewECS(d)
	id := ecs.SpawnMech(mechPos)
	ecs.Mechs[id].FinishCooldowns()
	return &world{ecs: ecs, events: d, rec: rec, mechID: id}
}

func (w *world) mech() *component.Mech {
	return w.ecs.Mechs[w.mechID]
}

func (w *world) mechPos() geom.Vec2 {
	return w.ecs.Positions[w.mechID].Vec2
}

func (w *world) enemy(pos geom.Vec2, spec component.EnemySpec, dps float64) types.EntityID {
	return w.ecs.SpawnEnemy(pos, component.NewEnemy(spec, dps, 1))
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
