// internal/tty/tty_test.go
package tty

import (
	"strings"
	"testing"

	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/input"
	"constellation-defenders/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

const frame = 1.0 / 60.0

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(80, 25)
	t.Cleanup(screen.Fini)
	return screen
}

func newFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	screen := newScreen(t)
	return NewFrontend(screen, catalog, nil, 42), screen
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

// tap нажимает клавишу, проигрывает кадр и ждёт отпускания защёлки.
func tap(f *Frontend, ev *tcell.EventKey) {
	f.HandleEvent(ev)
	f.Update(frame)
	f.Update(0.2)
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestLatchHoldsAndReleases(t *testing.T) {
	l := NewLatch()
	if !l.HandleKey(runeKey('z')) {
		t.Fatal("z should be bound")
	}
	if l.HandleKey(runeKey('k')) {
		t.Error("k should not be bound")
	}

	in := l.Poll()
	if !in.JustPressed(input.Melee) {
		t.Error("expected a melee press")
	}
	l.Tick(0.1)
	in = l.Poll()
	if !in.Held(input.Melee) || in.JustPressed(input.Melee) {
		t.Error("expected melee to stay held without a new press")
	}
	l.Tick(0.1)
	if l.Poll().Held(input.Melee) {
		t.Error("expected melee to be released after the latch")
	}
}

func TestButtonForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want input.Button
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), input.Up},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.Left},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), input.Start},
		{"x", runeKey('x'), input.Ranged},
		{"a", runeKey('a'), input.Start},
		{"s", runeKey('s'), input.Select},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ButtonForKey(tt.ev)
			if !ok || got != tt.want {
				t.Errorf("expected %v, got %v (ok=%v)", tt.want, got, ok)
			}
		})
	}
	if !IsQuit(runeKey('q')) || !IsQuit(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("q and Esc should quit")
	}
}

func TestFrontendFlow(t *testing.T) {
	f, screen := newFrontend(t)

	f.Draw()
	if !strings.Contains(row(screen, 25/2-2), "CONSTELLATION DEFENDERS") {
		t.Errorf("expected the title, got %q", row(screen, 25/2-2))
	}

	tap(f, runeKey('a'))
	if f.Mode() != ModeSelect {
		t.Fatalf("expected select mode, got %v", f.Mode())
	}

	tap(f, tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	f.Draw()
	if !strings.Contains(row(screen, 3), "II cepheus") {
		t.Errorf("expected the level grid, got %q", row(screen, 3))
	}

	f.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	f.Update(frame)
	if f.Mode() != ModeLevel || f.Match() == nil {
		t.Fatalf("expected a running match, got mode %v", f.Mode())
	}
	if f.Match().Level.Name != "cepheus" {
		t.Errorf("expected cepheus, got %s", f.Match().Level.Name)
	}

	f.Draw()
	if hud := row(screen, 0); !strings.HasPrefix(hud, "[") || !strings.Contains(hud, "/45") {
		t.Errorf("unexpected HUD: %q", hud)
	}
	x, y := f.view.Cell(geom.Vec2{})
	if r, _, _, _ := screen.GetContent(x, y); !strings.ContainsRune("^v<>", r) {
		t.Errorf("expected the mech at the arena centre, got %q", r)
	}

	if f.HandleEvent(runeKey('q')) || !f.Quit() {
		t.Error("q should end the frontend")
	}
}

func TestFrontendPause(t *testing.T) {
	f, screen := newFrontend(t)
	tap(f, runeKey('a'))
	tap(f, runeKey('a'))
	if f.Mode() != ModeLevel {
		t.Fatalf("expected level mode, got %v", f.Mode())
	}

	tap(f, runeKey('a'))
	if !f.Match().IsPaused() {
		t.Fatal("start should pause the match")
	}
	time := f.Match().GetGameTime()
	f.Update(0.5)
	if f.Match().GetGameTime() != time {
		t.Error("paused match should not advance")
	}
	f.Draw()
	if !strings.Contains(row(screen, 25/2), "PAUSED") {
		t.Errorf("expected the pause banner, got %q", row(screen, 25/2))
	}

	tap(f, runeKey('a'))
	if f.Match().IsPaused() {
		t.Error("start should resume the match")
	}
}

func TestFrontendResults(t *testing.T) {
	f, _ := newFrontend(t)
	tap(f, runeKey('a'))
	tap(f, runeKey('a'))
	if f.Mode() != ModeLevel {
		t.Fatalf("expected level mode, got %v", f.Mode())
	}

	ecs := f.Match().ECS
	for _, id := range ecs.StarIDs() {
		ecs.Stars[id].SetHealth(0)
	}
	f.Update(frame)
	if f.Mode() != ModeResults {
		t.Fatalf("expected results mode, got %v", f.Mode())
	}

	for i := 0; i < 3; i++ {
		tap(f, runeKey('a'))
	}
	if f.Mode() != ModeResults {
		t.Fatal("results should wait for a final confirm")
	}
	tap(f, runeKey('a'))
	if f.Mode() != ModeMenu {
		t.Errorf("expected menu mode, got %v", f.Mode())
	}
}
