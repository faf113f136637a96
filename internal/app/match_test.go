package app

import (
	"errors"
	"reflect"
	"testing"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/utils"
)

const dt = 1.0 / 64.0

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func (r *recorder) cues(cue event.Cue) int {
	n := 0
	for _, e := range r.events {
		if c, ok := e.Data.(event.CueData); ok && c.Cue == cue {
			n++
		}
	}
	return n
}

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestMatch(t *testing.T, cfg MatchConfig) (*Match, *recorder) {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.SoundCue, event.MatchEnded, event.RetaliateToggled, event.PauseChanged, event.EntitySpawned)
	m, err := NewMatch(cfg, catalog, d)
	if err != nil {
		t.Fatalf("failed to create match: %v", err)
	}
	return m, rec
}

func TestNewMatchLevels(t *testing.T) {
	tests := []struct {
		level     int
		wantStars int
		wantCap   int
		endless   bool
	}{
		{0, 5, 30, false},
		{1, 5, 45, false},
		{2, 7, 60, false},
		{3, 8, 75, false},
		{5, 0, config.EndlessCapDisplay, true},
	}
	for _, tt := range tests {
		cfg := DefaultMatchConfig(tt.level)
		cfg.Seed = 5
		m, rec := newTestMatch(t, cfg)
		snap := m.Snapshot()
		if len(snap.Stars) != tt.wantStars || snap.Cap != tt.wantCap || snap.Endless != tt.endless {
			t.Errorf("level %d: expected %d stars, cap %d, endless %v; got %d, %d, %v",
				tt.level, tt.wantStars, tt.wantCap, tt.endless, len(snap.Stars), snap.Cap, snap.Endless)
		}
		if snap.Mech == nil || !snap.Mech.Position.IsZero() {
			t.Errorf("level %d: mech must start in the center", tt.level)
		}
		if !snap.Mech.Stunned {
			t.Errorf("level %d: mech must boot stunned", tt.level)
		}
		if rec.cues(event.CueUnstun) != 1 {
			t.Errorf("level %d: expected the start cue", tt.level)
		}
		if rec.count(event.EntitySpawned) != tt.wantStars+1 {
			t.Errorf("level %d: expected spawn events for mech and stars", tt.level)
		}
	}
}

func TestRandomLevelMilky(t *testing.T) {
	cfg := DefaultMatchConfig(4)
	cfg.Milky = true
	m, _ := newTestMatch(t, cfg)
	snap := m.Snapshot()
	if len(snap.Stars) != 1 || !snap.Milky {
		t.Errorf("milky random level must have a single star, got %d", len(snap.Stars))
	}

	cfg.Milky = false
	m, _ = newTestMatch(t, cfg)
	if n := len(m.Snapshot().Stars); n < 2 || n > 8 {
		t.Errorf("random level must have 2..8 stars, got %d", n)
	}
}

func TestNewMatchErrors(t *testing.T) {
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewMatch(DefaultMatchConfig(6), catalog, nil); !errors.Is(err, defs.ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}

	broken := &defs.Catalog{
		EnemySpecs: catalog.EnemySpecs,
		SpawnBands: catalog.SpawnBands,
		Levels:     []defs.LevelDefinition{{Name: "uncapped", Layout: defs.LayoutEmpty}},
	}
	if _, err := NewMatch(DefaultMatchConfig(0), broken, nil); !errors.Is(err, defs.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestBootStunRelease(t *testing.T) {
	for _, retaliate := range []bool{true, false} {
		cfg := DefaultMatchConfig(0)
		cfg.Retaliate = retaliate
		cfg.Seed = 11
		m, rec := newTestMatch(t, cfg)

		for i := 0; i < 63; i++ {
			m.Update(dt, input.Snapshot{})
		}
		if !m.Snapshot().Mech.Stunned {
			t.Fatalf("mech must stay stunned for a second")
		}
		m.Update(dt, input.Snapshot{})
		if m.Snapshot().Mech.Stunned {
			t.Fatalf("stun must end after a second")
		}

		want := 0
		if retaliate {
			want = 1
		}
		if got := rec.cues(event.CueSlash); got != want {
			t.Errorf("retaliate=%v: expected %d slash cues, got %d", retaliate, want, got)
		}
	}
}

func TestPauseGate(t *testing.T) {
	m, rec := newTestMatch(t, MatchConfig{Level: 0, Seed: 3})
	m.Update(dt, input.Snapshot{}.Press(input.Start))
	if !m.IsPaused() {
		t.Fatalf("start must pause the match")
	}
	for i := 0; i < 200; i++ {
		m.Update(dt, input.Snapshot{})
	}
	if snap := m.Snapshot(); snap.Round != 0 || snap.GameTime != 0 {
		t.Errorf("paused match must not advance, round %d, time %v", snap.Round, snap.GameTime)
	}

	m.Resume()
	for i := 0; i < 64; i++ {
		m.Update(dt, input.Snapshot{})
	}
	if snap := m.Snapshot(); snap.Round != 1 {
		t.Errorf("expected round 1 after resuming, got %d", snap.Round)
	}
	if rec.count(event.PauseChanged) != 2 || rec.cues(event.CueUISelect) != 2 {
		t.Errorf("pause and resume must be announced")
	}
}

func TestSecretCodeTogglesRetaliate(t *testing.T) {
	m, rec := newTestMatch(t, DefaultMatchConfig(0))
	for _, b := range input.RetaliateCode {
		m.Update(dt, input.Snapshot{}.Press(b))
		m.Update(dt, input.Snapshot{})
	}
	if m.Snapshot().Retaliate {
		t.Errorf("code must disable retaliation")
	}
	if m.IsPaused() {
		t.Errorf("start that completes the code must not pause")
	}
	if rec.cues(event.CueSecret) != 1 || rec.count(event.RetaliateToggled) != 1 {
		t.Errorf("toggle must be announced once")
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	run := func() Snapshot {
		cfg := DefaultMatchConfig(4)
		cfg.Seed = 1234
		m, _ := newTestMatch(t, cfg)
		for i := 0; i < 600; i++ {
			in := input.Snapshot{}
			switch {
			case i%40 < 10:
				in = in.Hold(input.Left, input.Ranged)
			case i%40 < 20:
				in = in.Hold(input.Up).Press(input.Melee)
			}
			m.Update(dt, in)
		}
		return m.Snapshot()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input must give the same match")
	}
}

func TestMatchEndsAndFreezes(t *testing.T) {
	m, rec := newTestMatch(t, DefaultMatchConfig(0))
	for _, star := range m.ECS.Stars {
		star.SetHealth(0)
	}
	m.Update(dt, input.Snapshot{})

	if m.Outcome() != component.LostNoKills {
		t.Fatalf("expected lost_no_kills, got %s", m.Outcome())
	}
	if rec.count(event.MatchEnded) != 1 {
		t.Errorf("expected one MatchEnded event")
	}
	if m.ECS.Count() != 0 {
		t.Errorf("registry must be cleared at the end")
	}
	time := m.GetGameTime()
	for i := 0; i < 10; i++ {
		m.Update(dt, input.Snapshot{}.Press(input.Start))
	}
	if m.GetGameTime() != time || m.Outcome() != component.LostNoKills || m.IsPaused() {
		t.Errorf("finished match must be frozen")
	}
}

// Случайный ввод на протяжении всей партии не нарушает инварианты.
func TestInvariantsUnderRandomInput(t *testing.T) {
	cfg := DefaultMatchConfig(0)
	cfg.Seed = 77
	m, _ := newTestMatch(t, cfg)
	r := utils.NewPRNGService(9)
	buttons := []input.Button{input.Up, input.Down, input.Left, input.Right, input.Melee, input.Ranged}

	prevRound := 0
	terminal := component.Active
	for i := 0; i < 64*60; i++ {
		in := input.Snapshot{}
		for _, b := range buttons {
			switch r.Intn(4) {
			case 0:
				in = in.Press(b)
			case 1:
				in = in.Hold(b)
			}
		}
		m.Update(dt, in)

		snap := m.Snapshot()
		for _, h := range snap.StarHealth() {
			if h < 0 || h > 100 {
				t.Fatalf("tick %d: star health %v out of range", i, h)
			}
		}
		if snap.Charge < 0 {
			t.Fatalf("tick %d: negative charge", i)
		}
		if snap.Round < prevRound || snap.Round > 30 {
			t.Fatalf("tick %d: round %d after %d", i, snap.Round, prevRound)
		}
		prevRound = snap.Round
		if terminal.Terminal() && snap.Outcome != terminal {
			t.Fatalf("tick %d: terminal outcome changed from %s to %s", i, terminal, snap.Outcome)
		}
		terminal = snap.Outcome
	}
}
