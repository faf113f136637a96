// internal/component/timer.go
package component

// TimerMode — режим таймера.
type TimerMode int

const (
	Once TimerMode = iota
	Repeating
)

// Timer — обратный отсчёт с фиксацией момента срабатывания.
// Once-таймер после срабатывания остаётся завершённым до Reset.
// Repeating-таймер переносит остаток времени в следующий цикл.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished      bool
	justFinished  bool
	timesFinished int
}

func NewTimer(duration float64, mode TimerMode) Timer {
	return Timer{Duration: duration, Mode: mode}
}

// Tick продвигает таймер на dt секунд.
func (t *Timer) Tick(dt float64) {
	t.justFinished = false
	t.timesFinished = 0
	if dt < 0 {
		dt = 0
	}

	if t.Mode == Once {
		if t.finished {
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			t.justFinished = true
			t.timesFinished = 1
		}
		return
	}

	if t.Duration <= 0 {
		t.justFinished = true
		t.timesFinished = 1
		return
	}
	t.Elapsed += dt
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		t.timesFinished++
	}
	t.justFinished = t.timesFinished > 0
	t.finished = t.justFinished
}

// Finished — для Once: таймер истёк (кулдаун готов).
func (t *Timer) Finished() bool {
	return t.finished
}

// JustFinished — таймер сработал на последнем Tick.
func (t *Timer) JustFinished() bool {
	return t.justFinished
}

// TimesFinished — сколько циклов завершилось на последнем Tick.
func (t *Timer) TimesFinished() int {
	return t.timesFinished
}

// Reset перезапускает отсчёт с нуля.
func (t *Timer) Reset() {
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesFinished = 0
}

// Finish переводит таймер в завершённое состояние без события срабатывания.
func (t *Timer) Finish() {
	t.Elapsed = t.Duration
	t.finished = t.Mode == Once
	t.justFinished = false
	t.timesFinished = 0
}

// Percent — доля прошедшего времени в [0, 1].
func (t *Timer) Percent() float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := t.Elapsed / t.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Remaining — сколько секунд осталось до срабатывания.
func (t *Timer) Remaining() float64 {
	r := t.Duration - t.Elapsed
	if r < 0 {
		return 0
	}
	return r
}
