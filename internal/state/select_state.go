// internal/state/select_state.go
package state

import (
	"log"
	"strconv"

	"constellation-defenders/internal/app"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/menu"
	"constellation-defenders/internal/ui"
	"constellation-defenders/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*SelectState)(nil)

const (
	slotWidth  = 48
	slotHeight = 40
	slotGap    = 4
	slotTop    = 28
)

// SelectState — сетка из шести слотов уровней.
type SelectState struct {
	sm       *StateMachine
	ctx      *Context
	selector *menu.Selector
}

func NewSelectState(sm *StateMachine, ctx *Context) *SelectState {
	return &SelectState{sm: sm, ctx: ctx, selector: menu.NewSelector()}
}

func (s *SelectState) Enter() {}

func (s *SelectState) Update(deltaTime float64) {
	in := s.ctx.Keys.Poll()
	prev, retaliate := s.selector.Index, s.selector.Retaliate
	confirmed := s.selector.Apply(in)
	if s.selector.Index != prev || s.selector.Retaliate != retaliate {
		s.ctx.Cue(event.CueUISelect)
	}
	if !confirmed {
		return
	}

	cfg, err := s.selector.MatchConfig(s.ctx.Catalog, s.ctx.Rng, s.ctx.Seed)
	if err != nil {
		log.Printf("Level %d unavailable: %v", s.selector.Index, err)
		return
	}
	match, err := app.NewMatch(cfg, s.ctx.Catalog, s.ctx.Dispatcher)
	if err != nil {
		log.Printf("Failed to start level %d: %v", s.selector.Index, err)
		return
	}
	s.sm.SetState(NewLevelState(s.sm, s.ctx, match))
}

func (s *SelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawCentered(screen, "SELECT LEVEL", config.ScreenWidth/2, 6, config.TextLightColor)

	left := (config.ScreenWidth - (config.SelectColumns*slotWidth + (config.SelectColumns-1)*slotGap)) / 2
	for i := 0; i < config.LevelSlots; i++ {
		level, err := s.ctx.Catalog.Level(i)
		if err != nil {
			continue
		}
		col, row := i%config.SelectColumns, i/config.SelectColumns
		x := float32(left + col*(slotWidth+slotGap))
		y := float32(slotTop + row*(slotHeight+slotGap))

		clr := config.TextDimColor
		if i == s.selector.Index {
			clr = config.StarColor
		}
		vector.StrokeRect(screen, x, y, slotWidth, slotHeight, 1, clr, false)

		label := utils.ToRoman(i + 1)
		if level.Endless {
			label = "INF"
		}
		cx := int(x) + slotWidth/2
		ui.DrawCentered(screen, label, cx, int(y)+6, clr)
		if !level.Endless {
			ui.DrawCentered(screen, strconv.Itoa(level.RoundCap), cx, int(y)+22, clr)
		}
	}

	status := "RETALIATE ON"
	if !s.selector.Retaliate {
		status = "RETALIATE OFF"
	}
	ui.DrawCentered(screen, status, config.ScreenWidth/2, config.ScreenHeight-18, config.TextDimColor)
}

func (s *SelectState) Exit() {}
