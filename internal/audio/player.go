// internal/audio/player.go
package audio

import (
	"log"
	"time"

	"constellation-defenders/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Sink — куда уходят готовые потоки.
type Sink interface {
	Play(s beep.Streamer)
	Close()
}

type speakerSink struct{}

func (speakerSink) Play(s beep.Streamer) { speaker.Play(s) }
func (speakerSink) Close()               { speaker.Close() }

// NullSink глотает звук. Используется, когда устройство недоступно.
type NullSink struct{}

func (NullSink) Play(beep.Streamer) {}
func (NullSink) Close()             {}

// Player слушает SoundCue и проигрывает синтезированные сигналы.
type Player struct {
	sink   Sink
	volume float64
	muted  bool
	played map[event.Cue]int
}

// NewPlayer открывает динамик. При ошибке игра продолжается без звука.
func NewPlayer(volume float64) *Player {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio initialization failed: %v", err)
		return NewPlayerWithSink(NullSink{}, volume)
	}
	return NewPlayerWithSink(speakerSink{}, volume)
}

// NewPlayerWithSink создаёт плеер поверх произвольного приёмника.
func NewPlayerWithSink(sink Sink, volume float64) *Player {
	if sink == nil {
		sink = NullSink{}
	}
	return &Player{
		sink:   sink,
		volume: volume,
		played: make(map[event.Cue]int),
	}
}

// Attach подписывает плеер на звуковые сигналы диспетчера.
func (p *Player) Attach(d *event.Dispatcher) {
	d.Subscribe(event.SoundCue, p)
}

// Detach отписывает плеер.
func (p *Player) Detach(d *event.Dispatcher) {
	d.Unsubscribe(event.SoundCue, p)
}

func (p *Player) OnEvent(e event.Event) {
	if e.Type != event.SoundCue {
		return
	}
	data, ok := e.Data.(event.CueData)
	if !ok {
		return
	}
	p.Play(data.Cue)
}

// Play синтезирует и отправляет сигнал в приёмник.
func (p *Player) Play(cue event.Cue) {
	if p.muted {
		return
	}
	s := Synthesize(cue)
	if s == nil {
		log.Printf("Unknown sound cue: %s", cue)
		return
	}
	p.played[cue]++
	p.sink.Play(volume(s, p.volume))
}

// SetMuted включает и выключает звук.
func (p *Player) SetMuted(m bool) { p.muted = m }

// Muted сообщает, выключен ли звук.
func (p *Player) Muted() bool { return p.muted }

// Played — сколько раз сигнал был проигран.
func (p *Player) Played(cue event.Cue) int { return p.played[cue] }

// Close освобождает устройство.
func (p *Player) Close() { p.sink.Close() }
