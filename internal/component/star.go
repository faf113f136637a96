// internal/component/star.go
package component

import "constellation-defenders/internal/config"

// Star — защищаемая цель. Здоровье всегда в [0, 100].
type Star struct {
	Name   string
	Health float64
}

func NewStar(name string) *Star {
	return &Star{Name: name, Health: config.StarHealthInitial}
}

// Damage уменьшает здоровье с ограничением снизу нулём.
func (s *Star) Damage(amount float64) {
	s.SetHealth(s.Health - amount)
}

func (s *Star) SetHealth(h float64) {
	switch {
	case h < 0:
		h = 0
	case h > config.StarHealthMax:
		h = config.StarHealthMax
	}
	s.Health = h
}

func (s *Star) Dead() bool {
	return s.Health <= 0
}

// HealthFrame — кадр спрайта звезды: 0 у полной, 7 у погасшей.
func (s *Star) HealthFrame() int {
	f := 8 - int(s.Health/10)
	if f < 0 {
		return 0
	}
	if f > 7 {
		return 7
	}
	return f
}
