// internal/app/snapshot.go
package app

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

// EntityView — то, что интерфейсу нужно знать о сущности для отрисовки.
type EntityView struct {
	ID       types.EntityID
	Kind     types.Kind
	Position geom.Vec2 // истинная позиция
	Render   geom.Vec2 // округлённая позиция для спрайта
	Facing   component.Direction
	Spec     component.EnemySpec
	Frame    int
	Health   float64
}

// ArcView — состояние дуги удара.
type ArcView struct {
	Facing component.Direction
	Active bool
	Frame  int
}

// MechView — состояние меха для интерфейса.
type MechView struct {
	EntityView
	Moving  bool
	Stunned bool
	Arcs    [4]ArcView
}

// Snapshot — телеметрия партии между тиками. Только для чтения.
type Snapshot struct {
	LevelName   string
	Round       int
	Cap         int
	Endless     bool
	Charge      float64
	ChargeFrame int
	ChargeReady bool
	Kills       int
	Retaliate   bool
	Paused      bool
	Milky       bool
	Outcome     component.Outcome
	GameTime    float64

	Mech    *MechView
	Stars   []EntityView
	Enemies []EntityView
	Bullets []EntityView
	Beams   []EntityView
}

// Snapshot собирает телеметрию в детерминированном порядке идентификаторов.
func (m *Match) Snapshot() Snapshot {
	ecs := m.ECS
	gs := ecs.GameState
	snap := Snapshot{
		LevelName:   m.Level.Name,
		Endless:     gs.Endless,
		Charge:      gs.Charge,
		ChargeFrame: ChargeFrame(gs.Charge),
		ChargeReady: gs.Charge >= config.ChargeRequirement,
		Kills:       gs.Kills,
		Retaliate:   gs.Retaliate,
		Paused:      gs.Paused,
		Milky:       gs.Milky,
		Outcome:     gs.Outcome,
		GameTime:    m.gameTime,
	}
	if ecs.Wave != nil {
		snap.Round = ecs.Wave.Round
		snap.Cap = ecs.Wave.DisplayCap()
	}

	if id, mech, pos, ok := ecs.Mech(); ok {
		mv := &MechView{
			EntityView: view(id, types.KindMech, pos.Vec2),
			Moving:     mech.Moving,
			Stunned:    mech.Stunned(),
		}
		mv.Facing = mech.Facing
		mv.Frame = mech.WalkFrame
		for i, d := range component.Directions {
			arc := mech.Arc(d)
			mv.Arcs[i] = ArcView{Facing: d, Active: arc.Active, Frame: arc.Frame}
		}
		snap.Mech = mv
	}

	for _, id := range ecs.StarIDs() {
		star := ecs.Stars[id]
		v := view(id, types.KindStar, ecs.Positions[id].Vec2)
		v.Health = star.Health
		v.Frame = star.HealthFrame()
		snap.Stars = append(snap.Stars, v)
	}
	for _, id := range ecs.EnemyIDs() {
		e := ecs.Enemies[id]
		v := view(id, types.KindEnemy, ecs.Positions[id].Vec2)
		v.Spec = e.Spec
		v.Frame = e.WalkFrame
		snap.Enemies = append(snap.Enemies, v)
	}
	for _, id := range ecs.BulletIDs() {
		v := view(id, types.KindBullet, ecs.Positions[id].Vec2)
		v.Facing = ecs.Bullets[id].Facing
		snap.Bullets = append(snap.Bullets, v)
	}
	for _, id := range ecs.BeamIDs() {
		beam := ecs.Beams[id]
		v := view(id, types.KindBeam, ecs.Positions[id].Vec2)
		v.Facing = beam.Facing
		v.Frame = beam.Frame
		snap.Beams = append(snap.Beams, v)
	}
	return snap
}

// StarHealth — здоровье звёзд в порядке идентификаторов.
func (s Snapshot) StarHealth() []float64 {
	out := make([]float64, len(s.Stars))
	for i, st := range s.Stars {
		out[i] = st.Health
	}
	return out
}

func view(id types.EntityID, kind types.Kind, pos geom.Vec2) EntityView {
	return EntityView{ID: id, Kind: kind, Position: pos, Render: pos.Round()}
}
