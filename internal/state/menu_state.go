// internal/state/menu_state.go
package state

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*MenuState)(nil)

// MenuState — титульный экран. Start ведёт к выбору уровня, Select выключает звук.
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	blink component.Timer
	shown bool
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		blink: component.NewTimer(0.5, component.Repeating),
		shown: true,
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	in := m.ctx.Keys.Poll()
	m.blink.Tick(deltaTime)
	if m.blink.TimesFinished()%2 == 1 {
		m.shown = !m.shown
	}
	if in.JustPressed(input.Select) && m.ctx.Audio != nil {
		m.ctx.Audio.SetMuted(!m.ctx.Audio.Muted())
		m.ctx.Cue(event.CueUISelect)
	}
	if in.JustPressed(input.Start) {
		m.ctx.Cue(event.CueUISelect)
		m.sm.SetState(NewSelectState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "CONSTELLATION", config.ScreenWidth/2, 36, config.StarColor)
	ui.DrawCentered(screen, "DEFENDERS", config.ScreenWidth/2, 50, config.StarColor)
	if m.shown {
		ui.DrawCentered(screen, "PRESS START", config.ScreenWidth/2, 96, config.TextLightColor)
	}
	if m.ctx.Audio != nil && m.ctx.Audio.Muted() {
		ui.DrawCentered(screen, "SOUND OFF", config.ScreenWidth/2, config.ScreenHeight-18, config.TextDimColor)
	}
}

func (m *MenuState) Exit() {}
