// internal/state/results_state.go
package state

import (
	"fmt"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/menu"
	"constellation-defenders/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*ResultsState)(nil)

// ResultsState показывает итог партии по панелям и возвращает в меню.
type ResultsState struct {
	sm  *StateMachine
	ctx *Context
	seq *menu.ResultsSequence
}

func NewResultsState(sm *StateMachine, ctx *Context, outcome component.Outcome, kills int) *ResultsState {
	return &ResultsState{sm: sm, ctx: ctx, seq: menu.NewResultsSequence(outcome, kills)}
}

func (r *ResultsState) Enter() {}

func (r *ResultsState) Update(deltaTime float64) {
	in := r.ctx.Keys.Poll()
	shown := r.seq.Shown()
	if r.seq.Update(deltaTime, in.JustPressed(input.Start)) {
		r.ctx.Cue(event.CueUISelect)
		r.sm.SetState(NewMenuState(r.sm, r.ctx))
		return
	}
	if r.seq.Shown() != shown {
		r.ctx.Cue(event.CueUISelect)
	}
}

func (r *ResultsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	if r.seq.Visible() {
		for i, line := range r.seq.Lines() {
			ui.DrawCentered(screen, line, config.ScreenWidth/2, 30+i*22, config.TextLightColor)
		}
	}
	if r.seq.Complete() {
		ui.DrawCentered(screen, fmt.Sprintf("KILLS %d", r.seq.Kills), config.ScreenWidth/2, config.ScreenHeight-24, config.TextDimColor)
	}
}

func (r *ResultsState) Exit() {}
