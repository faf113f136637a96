// internal/component/mech.go
package component

import (
	"constellation-defenders/internal/config"
	"constellation-defenders/pkg/geom"
)

// Direction — куда смотрит мех.
type Direction int

const (
	Forward  Direction = iota // вниз по экрану, -Y
	Backward                  // вверх, +Y
	Left
	Right
)

var Directions = [4]Direction{Forward, Backward, Left, Right}

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Unit — единичный вектор направления.
func (d Direction) Unit() geom.Vec2 {
	switch d {
	case Forward:
		return geom.V(0, -1)
	case Backward:
		return geom.V(0, 1)
	case Left:
		return geom.V(-1, 0)
	case Right:
		return geom.V(1, 0)
	}
	return geom.Vec2{}
}

// Vertical — true для Forward/Backward.
func (d Direction) Vertical() bool {
	return d == Forward || d == Backward
}

// ArcOffset — смещение центра дуги удара от меха.
func (d Direction) ArcOffset() geom.Vec2 {
	return d.Unit().Scale(config.MeleeArcOffset)
}

// MeleeArc — дуга удара. Активна, пока проигрывается анимация.
type MeleeArc struct {
	Active     bool
	Frame      int
	FrameTimer Timer
}

// Start запускает анимацию дуги с первого кадра.
func (a *MeleeArc) Start() {
	a.Active = true
	a.Frame = 0
	a.FrameTimer = NewTimer(config.ArcFrameDuration, Repeating)
}

// Advance продвигает анимацию; дуга гаснет после последнего кадра.
func (a *MeleeArc) Advance(dt float64) {
	if !a.Active {
		return
	}
	a.FrameTimer.Tick(dt)
	a.Frame += a.FrameTimer.TimesFinished()
	if a.Frame >= config.ArcFrames {
		a.Active = false
		a.Frame = 0
	}
}

// Mech — управляемый игроком юнит. Кулдауны принадлежат самому меху.
type Mech struct {
	Facing Direction
	Stun   Timer
	Melee  Timer
	Ranged Timer
	Area   Timer
	Arcs   [4]MeleeArc

	Moving    bool
	WalkFrame int
	WalkTimer Timer
}

// NewMech создаёт меха с запущенными кулдаунами: первая секунда уходит на "загрузку".
func NewMech() *Mech {
	m := &Mech{
		Facing:    Forward,
		Stun:      NewTimer(config.StunCooldown, Once),
		Melee:     NewTimer(config.MeleeCooldown, Once),
		Ranged:    NewTimer(config.RangedCooldown, Once),
		Area:      NewTimer(config.AreaCooldown, Once),
		WalkTimer: NewTimer(config.AnimationSpeed, Repeating),
	}
	for i := range m.Arcs {
		m.Arcs[i].FrameTimer = NewTimer(config.ArcFrameDuration, Repeating)
	}
	return m
}

// Arc возвращает дугу для направления.
func (m *Mech) Arc(d Direction) *MeleeArc {
	return &m.Arcs[d]
}

// Stunned — мех оглушён (кулдаун оглушения ещё идёт).
func (m *Mech) Stunned() bool {
	return !m.Stun.Finished()
}

// Attacking — идёт кулдаун ближней или дальней атаки.
func (m *Mech) Attacking() bool {
	return !m.Melee.Finished() || !m.Ranged.Finished()
}

// CanAct — мех не оглушён и не занят лучом.
func (m *Mech) CanAct() bool {
	return m.Stun.Finished() && m.Area.Finished()
}

// TickCooldowns продвигает все четыре кулдауна.
func (m *Mech) TickCooldowns(dt float64) {
	m.Stun.Tick(dt)
	m.Melee.Tick(dt)
	m.Ranged.Tick(dt)
	m.Area.Tick(dt)
}

// FinishCooldowns делает меха сразу готовым к действиям.
func (m *Mech) FinishCooldowns() {
	m.Stun.Finish()
	m.Melee.Finish()
	m.Ranged.Finish()
	m.Area.Finish()
}
