// internal/interfaces/session.go
package interfaces

import (
	"constellation-defenders/internal/app"
	"constellation-defenders/internal/component"
	"constellation-defenders/internal/input"
)

// Session — то, что фронтенду нужно от партии.
type Session interface {
	Update(deltaTime float64, in input.Snapshot)
	Snapshot() app.Snapshot
	IsPaused() bool
	Resume()
	Outcome() component.Outcome
	Kills() int
}

var _ Session = (*app.Match)(nil)
