// internal/component/game_state.go
package component

// Outcome — состояние партии для автомата победы/поражения.
type Outcome int

const (
	Active Outcome = iota
	// Won: все звёзды потеряны, но был хотя бы один убитый враг.
	Won
	// LostNoKills: все звёзды потеряны без единого убийства.
	LostNoKills
	// LostTimeout: раунды исчерпаны, враги кончились, пауза ожидания истекла.
	LostTimeout
)

func (o Outcome) String() string {
	switch o {
	case Active:
		return "active"
	case Won:
		return "won"
	case LostNoKills:
		return "lost_no_kills"
	case LostTimeout:
		return "lost_timeout"
	}
	return "unknown"
}

func (o Outcome) Terminal() bool {
	return o != Active
}

// PresentationIndex — номер экрана результатов: 0, 1 или 2.
// Для Active возвращает -1.
func (o Outcome) PresentationIndex() int {
	switch o {
	case Won:
		return 0
	case LostTimeout:
		return 1
	case LostNoKills:
		return 2
	}
	return -1
}

// GameState — счётчики партии, которые читает интерфейс.
type GameState struct {
	Outcome   Outcome
	Kills     int
	Charge    float64
	Retaliate bool
	Endless   bool
	Milky     bool
	Paused    bool
	Grace     Timer
}

// AddCharge увеличивает заряд; заряд не бывает отрицательным.
func (g *GameState) AddCharge(v float64) {
	g.Charge += v
	if g.Charge < 0 {
		g.Charge = 0
	}
}
