// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State — экран фронтенда. Enter и Exit вызываются при каждой смене,
// в том числе при возврате с паузы.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine держит текущий экран. Экраны сами решают, куда переходить.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState выходит из текущего экрана и входит в новый. nil допустим.
func (sm *StateMachine) SetState(next State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = next
	if sm.current != nil {
		sm.current.Enter()
	}
}

func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Shutdown выходит из текущего экрана при закрытии окна.
func (sm *StateMachine) Shutdown() {
	sm.SetState(nil)
}
