// internal/state/level_state.go
package state

import (
	"constellation-defenders/internal/app"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/ui"
	"constellation-defenders/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*LevelState)(nil)

// LevelState — идущая партия. Шаги симуляции фиксированные, отрисовка по кадрам.
type LevelState struct {
	sm       *StateMachine
	ctx      *Context
	match    *app.Match
	clock    *app.Clock
	corpses  *app.Corpses
	renderer *render.ArenaRenderer
	hud      *ui.HUD
}

func NewLevelState(sm *StateMachine, ctx *Context, match *app.Match) *LevelState {
	colors := &render.ArenaColors{
		BackgroundColor: config.BackgroundColor,
		ArenaColor:      config.ArenaColor,
		MechColor:       config.MechColor,
		ArcColor:        config.ArcColor,
		EnemyColors:     config.EnemyColors,
		StarColor:       config.StarColor,
		StarDimColor:    config.StarDimColor,
		BulletColor:     config.BulletColor,
		BeamColor:       config.BeamColor,
		StrokeWidth:     1,
	}
	l := &LevelState{
		sm:       sm,
		ctx:      ctx,
		match:    match,
		clock:    app.NewClock(config.FixedStep, config.MaxSubSteps),
		corpses:  app.NewCorpses(),
		renderer: render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight, colors),
		hud:      ui.NewHUD(),
	}
	ctx.Dispatcher.Subscribe(event.CorpseSpawned, l.corpses)
	return l
}

func (l *LevelState) Enter() {}

func (l *LevelState) Update(deltaTime float64) {
	in := l.ctx.Keys.Poll()
	l.clock.Advance(deltaTime, in, l.match.Update)
	l.corpses.Update(deltaTime)

	if outcome := l.match.Outcome(); outcome.Terminal() {
		l.ctx.Dispatcher.Unsubscribe(event.CorpseSpawned, l.corpses)
		l.sm.SetState(NewResultsState(l.sm, l.ctx, outcome, l.match.Kills()))
		return
	}
	if l.match.IsPaused() {
		l.sm.SetState(NewPauseState(l.sm, l.ctx, l))
	}
}

func (l *LevelState) Draw(screen *ebiten.Image) {
	snap := l.match.Snapshot()
	l.renderer.Draw(screen, snap, l.corpses.Items())
	l.hud.Draw(screen, snap)
}

func (l *LevelState) Exit() {}

// Session — партия уровня, нужна экрану паузы.
func (l *LevelState) Session() *app.Match {
	return l.match
}
