// internal/menu/selector.go
package menu

import (
	"constellation-defenders/internal/app"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/input"
	"constellation-defenders/pkg/utils"
)

// Selector — курсор экрана выбора уровня. Слоты расположены сеткой
// SelectColumns × 2; навигация заворачивается по кругу.
type Selector struct {
	Index     int
	Slots     int
	Columns   int
	Retaliate bool
}

func NewSelector() *Selector {
	return &Selector{
		Slots:     config.LevelSlots,
		Columns:   config.SelectColumns,
		Retaliate: true,
	}
}

// Apply обрабатывает нажатия. Возвращает true, когда игрок подтвердил выбор.
// Select переключает ответный удар.
func (s *Selector) Apply(in input.Snapshot) bool {
	switch {
	case in.JustPressed(input.Up), in.JustPressed(input.Down):
		s.move(s.Columns)
	case in.JustPressed(input.Left):
		s.move(-1)
	case in.JustPressed(input.Right):
		s.move(1)
	}
	if in.JustPressed(input.Select) {
		s.Retaliate = !s.Retaliate
	}
	return in.JustPressed(input.Start)
}

func (s *Selector) move(delta int) {
	if s.Slots <= 0 {
		return
	}
	s.Index = utils.Wrap(s.Index+delta, s.Slots)
}

// Row и Column — положение курсора в сетке.
func (s *Selector) Row() int    { return s.Index / s.Columns }
func (s *Selector) Column() int { return s.Index % s.Columns }

// MatchConfig собирает настройки партии для выбранного слота.
// Для процедурного уровня бросается шанс "Млечного пути".
func (s *Selector) MatchConfig(catalog *defs.Catalog, r defs.Rand, seed int64) (app.MatchConfig, error) {
	level, err := catalog.Level(s.Index)
	if err != nil {
		return app.MatchConfig{}, err
	}
	cfg := app.DefaultMatchConfig(s.Index)
	cfg.Retaliate = s.Retaliate
	cfg.Seed = seed
	if level.Layout == defs.LayoutRandom {
		cfg.Milky = defs.RollMilky(r)
	}
	return cfg, cfg.Validate(catalog)
}
