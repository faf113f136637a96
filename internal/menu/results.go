// internal/menu/results.go
package menu

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
)

// resultPanels[panel][presentationIndex]
var resultPanels = [config.ResultsPanels][3]string{
	{"THE SKY IS DARK", "THE NIGHT IS OVER", "THE SKY IS DARK"},
	{"CONSTELLATION LOST", "CONSTELLATION HELD", "CONSTELLATION LOST"},
	{"BUT YOU FOUGHT", "YOU WIN", "NOT ONE FELL"},
}

// ResultsSequence открывает панели итогов по одной: по нажатию Start
// или на каждом втором срабатывании секундного таймера.
type ResultsSequence struct {
	Outcome component.Outcome
	Kills   int

	shown   int
	timer   component.Timer
	divider bool
	hidden  bool
}

func NewResultsSequence(outcome component.Outcome, kills int) *ResultsSequence {
	return &ResultsSequence{
		Outcome: outcome,
		Kills:   kills,
		timer:   component.NewTimer(config.ResultsRevealStep, component.Repeating),
	}
}

// Update продвигает последовательность. Возвращает true, когда все панели
// открыты и игрок нажал Start.
func (r *ResultsSequence) Update(dt float64, confirm bool) bool {
	r.timer.Tick(dt)
	auto := r.timer.JustFinished()
	if auto {
		r.divider = !r.divider
	}
	if confirm {
		auto = false
		r.timer.Reset()
		r.divider = false
	}

	if confirm || (auto && r.divider) {
		if r.shown < config.ResultsPanels {
			r.shown++
		} else if confirm {
			return true
		}
	}

	// после полного показа итог мигает, кроме LostNoKills
	if r.Complete() && r.Outcome.PresentationIndex() != 2 && r.timer.JustFinished() {
		r.hidden = !r.hidden
	}
	return false
}

// Shown — сколько панелей уже открыто.
func (r *ResultsSequence) Shown() int { return r.shown }

func (r *ResultsSequence) Complete() bool { return r.shown >= config.ResultsPanels }

// Visible — видны ли панели в текущий момент мигания.
func (r *ResultsSequence) Visible() bool { return !r.hidden }

// Lines — тексты открытых панелей.
func (r *ResultsSequence) Lines() []string {
	idx := r.Outcome.PresentationIndex()
	if idx < 0 {
		return nil
	}
	lines := make([]string, 0, r.shown)
	for i := 0; i < r.shown; i++ {
		lines = append(lines, resultPanels[i][idx])
	}
	return lines
}
