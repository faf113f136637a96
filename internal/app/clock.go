// internal/app/clock.go
package app

import (
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/input"
)

// Clock переводит переменное время кадра в фиксированные шаги симуляции.
// Нажатия доставляются только первому шагу; если шагов в кадре не было,
// они ждут следующего кадра.
type Clock struct {
	Step     float64
	MaxSteps int

	accumulator float64
	pending     input.Snapshot
}

func NewClock(step float64, maxSteps int) *Clock {
	if step <= 0 {
		step = config.FixedStep
	}
	if maxSteps <= 0 {
		maxSteps = config.MaxSubSteps
	}
	return &Clock{Step: step, MaxSteps: maxSteps}
}

// Advance накапливает elapsed и вызывает tick для каждого полного шага.
// Возвращает число выполненных шагов.
func (c *Clock) Advance(elapsed float64, in input.Snapshot, tick func(dt float64, in input.Snapshot)) int {
	if elapsed > config.MaxDeltaTime {
		elapsed = config.MaxDeltaTime
	}
	if elapsed < 0 {
		elapsed = 0
	}
	c.accumulator += elapsed
	c.pending = c.pending.Merge(in.PressedOnly())

	steps := 0
	for c.accumulator >= c.Step && steps < c.MaxSteps {
		c.accumulator -= c.Step
		if steps == 0 {
			tick(c.Step, in.Merge(c.pending))
			c.pending = input.Snapshot{}
		} else {
			tick(c.Step, in.HeldOnly())
		}
		steps++
	}
	if steps == c.MaxSteps && c.accumulator >= c.Step {
		// не догоняем бесконечно после долгого кадра
		c.accumulator = 0
	}
	return steps
}

// Alpha — доля следующего шага, уже накопленная (для интерполяции отрисовки).
func (c *Clock) Alpha() float64 {
	return c.accumulator / c.Step
}
