// internal/state/context.go
package state

import (
	"constellation-defenders/internal/audio"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

// Context — общее для всех экранов: таблицы уровней, события, звук, клавиатура.
type Context struct {
	Catalog    *defs.Catalog
	Dispatcher *event.Dispatcher
	Audio      *audio.Player
	Rng        *utils.PRNGService
	Seed       int64 // 0 — новое зерно на каждую партию
	Keys       *Keyboard
}

// Cue отправляет звуковой сигнал интерфейса.
func (c *Context) Cue(cue event.Cue) {
	c.Dispatcher.EmitCue(cue, 0)
}

// Keyboard переводит клавиши в кнопки. Раскладка как у карманной консоли:
// стрелки, Z — удар, X — выстрел, A — Start, S — Select.
type Keyboard struct {
	tracker  input.Tracker
	bindings map[input.Button][]ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{
		bindings: map[input.Button][]ebiten.Key{
			input.Up:     {ebiten.KeyArrowUp},
			input.Down:   {ebiten.KeyArrowDown},
			input.Left:   {ebiten.KeyArrowLeft},
			input.Right:  {ebiten.KeyArrowRight},
			input.Melee:  {ebiten.KeyZ},
			input.Ranged: {ebiten.KeyX},
			input.Start:  {ebiten.KeyA, ebiten.KeyEnter},
			input.Select: {ebiten.KeyS, ebiten.KeyBackspace},
		},
	}
}

// Poll опрашивает клавиатуру. Вызывается один раз за кадр.
func (k *Keyboard) Poll() input.Snapshot {
	return k.tracker.Next(func(b input.Button) bool {
		for _, key := range k.bindings[b] {
			if ebiten.IsKeyPressed(key) {
				return true
			}
		}
		return false
	})
}
