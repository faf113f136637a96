// internal/app/corpses.go
package app

import (
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/pkg/geom"
)

// Corpse — след убитого врага. Чисто визуальный, в симуляции не участвует.
type Corpse struct {
	Position geom.Vec2
	Spec     component.EnemySpec
	Frame    int
	timer    component.Timer
}

// Corpses собирает CorpseSpawned и проигрывает короткую анимацию.
type Corpses struct {
	items []Corpse
}

func NewCorpses() *Corpses {
	return &Corpses{}
}

func (c *Corpses) OnEvent(e event.Event) {
	if e.Type != event.CorpseSpawned {
		return
	}
	data, ok := e.Data.(event.CorpseData)
	if !ok {
		return
	}
	spec, err := defs.ParseSpec(data.Spec)
	if err != nil {
		spec = component.SpecA
	}
	c.items = append(c.items, Corpse{
		Position: data.Position,
		Spec:     spec,
		timer:    component.NewTimer(config.CorpseFrameSeconds, component.Repeating),
	})
}

// Update продвигает кадры и убирает доигравшие следы.
func (c *Corpses) Update(deltaTime float64) {
	alive := c.items[:0]
	for _, corpse := range c.items {
		corpse.timer.Tick(deltaTime)
		corpse.Frame += corpse.timer.TimesFinished()
		if corpse.Frame < config.CorpseFrames {
			alive = append(alive, corpse)
		}
	}
	c.items = alive
}

// Items — живые следы в порядке появления.
func (c *Corpses) Items() []Corpse {
	return c.items
}

// Reset убирает все следы, например при новой партии.
func (c *Corpses) Reset() {
	c.items = c.items[:0]
}
