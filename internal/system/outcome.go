// internal/system/outcome.go
package system

import (
	"log"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/types"
)

// OutcomeSystem определяет конец партии. Конечные состояния не меняются.
type OutcomeSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	graceStarted    bool
}

func NewOutcomeSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *OutcomeSystem {
	if ecs.GameState.Grace.Duration == 0 {
		ecs.GameState.Grace = component.NewTimer(config.GraceDuration, component.Once)
	}
	return &OutcomeSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *OutcomeSystem) Update(deltaTime float64) {
	gs := s.ecs.GameState
	if gs.Outcome.Terminal() {
		return
	}
	wave := s.ecs.Wave

	if !gs.Endless && s.ecs.LiveCount(types.KindStar) == 0 {
		if gs.Kills > 0 {
			s.finish(component.Won)
		} else {
			s.finish(component.LostNoKills)
		}
		return
	}

	if wave != nil && wave.CapReached() && s.ecs.LiveCount(types.KindEnemy) == 0 {
		if !s.graceStarted {
			s.graceStarted = true
			s.eventDispatcher.Emit(event.GraceStarted, nil)
			s.eventDispatcher.EmitCue(event.CueBGMFade, 0)
		}
		gs.Grace.Tick(deltaTime)
		if gs.Grace.Finished() {
			s.finish(component.LostTimeout)
		}
	}
}

func (s *OutcomeSystem) finish(outcome component.Outcome) {
	gs := s.ecs.GameState
	gs.Outcome = outcome
	log.Printf("Match ended: %s, kills %d", outcome, gs.Kills)
	s.eventDispatcher.Emit(event.MatchEnded, event.MatchEndData{
		Outcome:           outcome.String(),
		PresentationIndex: outcome.PresentationIndex(),
		Kills:             gs.Kills,
	})
	s.ecs.Clear()
}
