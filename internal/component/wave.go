// internal/component/wave.go
package component

import "constellation-defenders/internal/config"

// Wave — состояние планировщика раундов.
type Wave struct {
	Round   int
	Cap     int
	Endless bool
	Cadence Timer
}

func NewWave(cap int, endless bool) *Wave {
	return &Wave{
		Cap:     cap,
		Endless: endless,
		Cadence: NewTimer(config.RoundCadence, Repeating),
	}
}

// CapReached — раунды исчерпаны (в бесконечном режиме никогда).
func (w *Wave) CapReached() bool {
	return !w.Endless && w.Round >= w.Cap
}

// DisplayCap — предел раундов для индикатора.
func (w *Wave) DisplayCap() int {
	if w.Endless {
		return config.EndlessCapDisplay
	}
	return w.Cap
}
