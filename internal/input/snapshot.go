// internal/input/snapshot.go
package input

// Button — логическая кнопка. Привязка к клавишам делается во фронтенде.
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Melee  // Confirm
	Ranged // Cancel
	Start
	Select
	buttonCount
)

var buttonNames = [buttonCount]string{"up", "down", "left", "right", "melee", "ranged", "start", "select"}

func (b Button) String() string {
	if b < 0 || b >= buttonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// Buttons — все кнопки в порядке объявления.
func Buttons() []Button {
	out := make([]Button, buttonCount)
	for i := range out {
		out[i] = Button(i)
	}
	return out
}

// Snapshot — состояние кнопок на один тик: зажатые и нажатые в этом тике.
type Snapshot struct {
	held    uint16
	pressed uint16
}

// Held — кнопка зажата.
func (s Snapshot) Held(b Button) bool {
	return s.held&(1<<b) != 0
}

// JustPressed — кнопка нажата в этом тике.
func (s Snapshot) JustPressed(b Button) bool {
	return s.pressed&(1<<b) != 0
}

// Press отмечает нажатие: кнопка становится и нажатой, и зажатой.
func (s Snapshot) Press(buttons ...Button) Snapshot {
	for _, b := range buttons {
		s.held |= 1 << b
		s.pressed |= 1 << b
	}
	return s
}

// Hold отмечает зажатую кнопку без события нажатия.
func (s Snapshot) Hold(buttons ...Button) Snapshot {
	for _, b := range buttons {
		s.held |= 1 << b
	}
	return s
}

// HeldOnly — тот же снимок без событий нажатия.
// Используется для дополнительных шагов фиксированного такта.
func (s Snapshot) HeldOnly() Snapshot {
	return Snapshot{held: s.held}
}

// PressedOnly — только нажатия этого тика (нажатая кнопка считается и зажатой).
func (s Snapshot) PressedOnly() Snapshot {
	return Snapshot{held: s.pressed, pressed: s.pressed}
}

// Merge объединяет два снимка.
func (s Snapshot) Merge(o Snapshot) Snapshot {
	return Snapshot{held: s.held | o.held, pressed: s.pressed | o.pressed}
}

// Empty — ни одна кнопка не зажата.
func (s Snapshot) Empty() bool {
	return s.held == 0 && s.pressed == 0
}

// Tracker строит снимки по состояниям "зажата" от устройства,
// вычисляя нажатия как переход из отпущенной в зажатую.
type Tracker struct {
	prev uint16
}

// Next принимает функцию опроса устройства и возвращает снимок тика.
func (t *Tracker) Next(isDown func(Button) bool) Snapshot {
	var s Snapshot
	for b := Button(0); b < buttonCount; b++ {
		if isDown(b) {
			s.held |= 1 << b
		}
	}
	s.pressed = s.held &^ t.prev
	t.prev = s.held
	return s
}
