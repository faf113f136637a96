// internal/state/pause_state.go
package state

import (
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState рисует замершую партию под затемнением. Секретный код
// продолжает приниматься; Start, если код его не поглотил, снимает паузу.
type PauseState struct {
	stateMachine  *StateMachine
	ctx           *Context
	previousState *LevelState
}

func NewPauseState(sm *StateMachine, ctx *Context, prevState *LevelState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		ctx:           ctx,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	in := s.ctx.Keys.Poll()
	match := s.previousState.Session()
	retaliate := match.ECS.GameState.Retaliate

	// на паузе шаг не двигает симуляцию, только кормит секретный код
	match.Update(0, in)
	if match.ECS.GameState.Retaliate != retaliate {
		return
	}
	if in.JustPressed(input.Start) {
		match.Resume()
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.PauseOverlay, false)
	ui.DrawCentered(screen, "PAUSED", config.ScreenWidth/2, config.ScreenHeight/2-6, config.TextLightColor)
}

func (s *PauseState) Exit() {}
