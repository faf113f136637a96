// internal/tty/frontend.go
package tty

import (
	"log"
	"time"

	"constellation-defenders/internal/app"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/menu"
	"constellation-defenders/internal/utils"

	"github.com/gdamore/tcell/v2"
)

// Mode — экран терминального фронтенда.
type Mode int

const (
	ModeMenu Mode = iota
	ModeSelect
	ModeLevel
	ModeResults
)

// Frontend — терминальная версия: меню, выбор уровня, партия, итоги.
type Frontend struct {
	screen     tcell.Screen
	view       *View
	catalog    *defs.Catalog
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	seed       int64
	latch      *Latch

	mode     Mode
	selector *menu.Selector
	match    *app.Match
	clock    *app.Clock
	results  *menu.ResultsSequence
	quit     bool
}

// NewFrontend создаёт фронтенд поверх инициализированного экрана.
func NewFrontend(screen tcell.Screen, catalog *defs.Catalog, dispatcher *event.Dispatcher, seed int64) *Frontend {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Frontend{
		screen:     screen,
		view:       NewView(screen),
		catalog:    catalog,
		dispatcher: dispatcher,
		rng:        utils.NewPRNGService(seed),
		seed:       seed,
		latch:      NewLatch(),
		mode:       ModeMenu,
		selector:   menu.NewSelector(),
	}
}

func (f *Frontend) Mode() Mode { return f.mode }

// Match — текущая партия или nil.
func (f *Frontend) Match() *app.Match { return f.match }

func (f *Frontend) Quit() bool { return f.quit }

// HandleEvent принимает событие терминала. Возвращает false, когда пора выходить.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			f.quit = true
			return false
		}
		f.latch.HandleKey(ev)
	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Update продвигает текущий экран на deltaTime секунд.
func (f *Frontend) Update(deltaTime float64) {
	in := f.latch.Poll()
	f.latch.Tick(deltaTime)

	switch f.mode {
	case ModeMenu:
		if in.JustPressed(input.Start) {
			f.dispatcher.EmitCue(event.CueUISelect, 0)
			f.mode = ModeSelect
		}
	case ModeSelect:
		if f.selector.Apply(in) {
			f.startMatch()
		}
	case ModeLevel:
		f.updateLevel(deltaTime, in)
	case ModeResults:
		if f.results.Update(deltaTime, in.JustPressed(input.Start)) {
			f.mode = ModeMenu
		}
	}
}

func (f *Frontend) startMatch() {
	cfg, err := f.selector.MatchConfig(f.catalog, f.rng, f.seed)
	if err != nil {
		log.Printf("Level %d unavailable: %v", f.selector.Index, err)
		return
	}
	m, err := app.NewMatch(cfg, f.catalog, f.dispatcher)
	if err != nil {
		log.Printf("Failed to start level %d: %v", f.selector.Index, err)
		return
	}
	f.match = m
	f.clock = app.NewClock(config.FixedStep, config.MaxSubSteps)
	f.mode = ModeLevel
}

func (f *Frontend) updateLevel(deltaTime float64, in input.Snapshot) {
	if f.match.IsPaused() {
		retaliate := f.match.ECS.GameState.Retaliate
		f.match.Update(0, in)
		if f.match.ECS.GameState.Retaliate == retaliate && in.JustPressed(input.Start) {
			f.match.Resume()
		}
		return
	}
	f.clock.Advance(deltaTime, in, f.match.Update)
	if outcome := f.match.Outcome(); outcome.Terminal() {
		f.results = menu.NewResultsSequence(outcome, f.match.Kills())
		f.mode = ModeResults
	}
}

// Draw рисует текущий экран и показывает его.
func (f *Frontend) Draw() {
	switch f.mode {
	case ModeMenu:
		f.view.DrawMenu()
	case ModeSelect:
		names := make([]string, 0, f.catalog.Len())
		for i := 0; i < f.catalog.Len(); i++ {
			lvl, _ := f.catalog.Level(i)
			names = append(names, lvl.Name)
		}
		f.view.DrawSelect(f.selector, names)
	case ModeLevel:
		f.view.DrawLevel(f.match.Snapshot())
	case ModeResults:
		f.view.DrawResults(f.results)
	}
	f.screen.Show()
}

// Run крутит цикл ~60 кадров в секунду, пока игрок не выйдет.
func (f *Frontend) Run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !f.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			f.Update(dt)
			f.Draw()
		}
	}
}
