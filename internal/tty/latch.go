// internal/tty/latch.go
package tty

import (
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/input"

	"github.com/gdamore/tcell/v2"
)

// Latch превращает поток нажатий терминала в состояние "зажата".
// Терминал не сообщает об отпускании, поэтому кнопка считается зажатой
// ещё TTYHoldLatch секунд после последнего события (автоповтор продлевает).
type Latch struct {
	remaining map[input.Button]float64
	tracker   input.Tracker
}

func NewLatch() *Latch {
	return &Latch{remaining: make(map[input.Button]float64)}
}

// HandleKey отмечает кнопку. Возвращает false, если клавиша ни к чему не привязана.
func (l *Latch) HandleKey(ev *tcell.EventKey) bool {
	b, ok := ButtonForKey(ev)
	if !ok {
		return false
	}
	l.remaining[b] = config.TTYHoldLatch
	return true
}

// Poll возвращает снимок кадра.
func (l *Latch) Poll() input.Snapshot {
	return l.tracker.Next(func(b input.Button) bool {
		return l.remaining[b] > 0
	})
}

// Tick отсчитывает время удержания.
func (l *Latch) Tick(deltaTime float64) {
	for b, r := range l.remaining {
		r -= deltaTime
		if r <= 0 {
			delete(l.remaining, b)
			continue
		}
		l.remaining[b] = r
	}
}

// ButtonForKey — раскладка: стрелки, z удар, x выстрел, a/Enter Start, s Select.
func ButtonForKey(ev *tcell.EventKey) (input.Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Up, true
	case tcell.KeyDown:
		return input.Down, true
	case tcell.KeyLeft:
		return input.Left, true
	case tcell.KeyRight:
		return input.Right, true
	case tcell.KeyEnter:
		return input.Start, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'z', 'Z':
			return input.Melee, true
		case 'x', 'X':
			return input.Ranged, true
		case 'a', 'A':
			return input.Start, true
		case 's', 'S':
			return input.Select, true
		}
	}
	return 0, false
}

// IsQuit — Esc, Ctrl-C или q.
func IsQuit(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Rune() == 'q'
}
