// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"constellation-defenders/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate — частота дискретизации всех сигналов.
const SampleRate = beep.SampleRate(44100)

// Wave — форма волны осциллятора.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator генерирует волну заданной длины.
type oscillator struct {
	freq     float64
	phase    float64
	total    int
	position int
	wave     Wave
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator создаёт осциллятор длительностью d.
func NewOscillator(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		noise: rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}
	step := o.freq / float64(o.rate)
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2*o.phase - 1
		case WaveNoise:
			v = o.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v
		o.phase += step
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — линейная атака и затухание поверх потока.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope оборачивает поток огибающей attack/release.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume переводит линейную громкость в effects.Volume; 0 — тишина.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

func tone(freq float64, d time.Duration, wave Wave) beep.Streamer {
	osc := NewOscillator(freq, d, wave, SampleRate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, SampleRate)
}

// Synthesize возвращает поток для сигнала или nil для неизвестного.
func Synthesize(cue event.Cue) beep.Streamer {
	switch cue {
	case event.CueEnemyDestroyed:
		return volume(tone(0, 90*time.Millisecond, WaveNoise), 0.5)
	case event.CueSlash:
		return beep.Seq(
			tone(330, 30*time.Millisecond, WaveSaw),
			tone(220, 40*time.Millisecond, WaveSaw),
		)
	case event.CuePew:
		return volume(beep.Seq(
			tone(880, 25*time.Millisecond, WaveSquare),
			tone(660, 25*time.Millisecond, WaveSquare),
		), 0.4)
	case event.CueBeam:
		return beep.Mix(
			volume(tone(165, 250*time.Millisecond, WaveSaw), 0.6),
			volume(tone(330, 250*time.Millisecond, WaveSine), 0.4),
		)
	case event.CueUnstun:
		return beep.Seq(
			tone(440, 40*time.Millisecond, WaveSquare),
			tone(660, 60*time.Millisecond, WaveSquare),
		)
	case event.CueSecret:
		notes := []float64{523.25, 659.25, 783.99, 1046.5}
		parts := make([]beep.Streamer, 0, len(notes))
		for _, f := range notes {
			parts = append(parts, tone(f, 60*time.Millisecond, WaveSine))
		}
		return beep.Seq(parts...)
	case event.CueUISelect:
		sine, err := generators.SineTone(SampleRate, 880)
		if err != nil {
			return nil
		}
		return volume(beep.Take(SampleRate.N(50*time.Millisecond), sine), 0.5)
	case event.CueBGMFade:
		d := time.Second
		return NewEnvelope(NewOscillator(220, d, WaveSine, SampleRate), d, 0, d, SampleRate)
	}
	return nil
}
