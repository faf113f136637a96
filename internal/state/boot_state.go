// internal/state/boot_state.go
package state

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*BootState)(nil)

// BootState — заставка. Уходит в меню по таймеру или любой кнопке.
type BootState struct {
	sm    *StateMachine
	ctx   *Context
	timer component.Timer
}

func NewBootState(sm *StateMachine, ctx *Context) *BootState {
	return &BootState{sm: sm, ctx: ctx, timer: component.NewTimer(config.BootDuration, component.Once)}
}

func (s *BootState) Enter() {}

func (s *BootState) Update(deltaTime float64) {
	in := s.ctx.Keys.Poll()
	s.timer.Tick(deltaTime)
	if s.timer.Finished() || !in.PressedOnly().Empty() {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *BootState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	fade := s.timer.Percent()
	clr := config.TextDimColor
	if fade > 0.3 {
		clr = config.TextLightColor
	}
	ui.DrawCentered(screen, "CONSTELLATION", config.ScreenWidth/2, 52, clr)
	ui.DrawCentered(screen, "DEFENDERS", config.ScreenWidth/2, 68, clr)
}

func (s *BootState) Exit() {}
