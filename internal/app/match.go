// internal/app/match.go
package app

import (
	"fmt"
	"log"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/input"
	"constellation-defenders/internal/system"
	"constellation-defenders/internal/utils"
	"constellation-defenders/pkg/geom"
)

// MatchConfig задаётся меню выбора уровня до начала партии.
type MatchConfig struct {
	Level     int
	Endless   bool // бесконечный режим; включается и самим уровнем
	Retaliate bool
	Milky     bool // случайный уровень превращается в одиночное "Солнце"
	Seed      int64
}

// DefaultMatchConfig — настройки по умолчанию: ответный удар включён.
func DefaultMatchConfig(level int) MatchConfig {
	return MatchConfig{Level: level, Retaliate: true}
}

// Validate проверяет, что уровень существует и партия на нём может закончиться.
func (c MatchConfig) Validate(catalog *defs.Catalog) error {
	level, err := catalog.Level(c.Level)
	if err != nil {
		return err
	}
	if !c.Endless && !level.Endless && level.RoundCap <= 0 {
		return fmt.Errorf("%w: level %q has no round cap", defs.ErrInvalidLevel, level.Name)
	}
	return nil
}

// Match — одна партия: реестр сущностей и системы в фиксированном порядке.
type Match struct {
	Config          MatchConfig
	Level           defs.LevelDefinition
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	MovementSystem  *system.MovementSystem
	CombatSystem    *system.CombatSystem
	WaveSystem      *system.WaveSystem
	OutcomeSystem   *system.OutcomeSystem
	AnimationSystem *system.AnimationSystem

	secret   *input.SecretCode
	gameTime float64
}

// NewMatch готовит партию: меха в центре арены, звёзды уровня и планировщик раундов.
// dispatcher может быть nil; тогда создаётся собственный.
func NewMatch(cfg MatchConfig, catalog *defs.Catalog, dispatcher *event.Dispatcher) (*Match, error) {
	if catalog == nil {
		panic("catalog cannot be nil")
	}
	if err := cfg.Validate(catalog); err != nil {
		return nil, fmt.Errorf("failed to start match: %w", err)
	}
	level, _ := catalog.Level(cfg.Level)
	endless := cfg.Endless || level.Endless
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}

	rng := utils.NewPRNGService(cfg.Seed)
	ecs := entity.NewECS(dispatcher)
	ecs.GameState.Retaliate = cfg.Retaliate
	ecs.GameState.Endless = endless
	ecs.GameState.Milky = cfg.Milky && level.Layout == defs.LayoutRandom
	ecs.Wave = component.NewWave(level.RoundCap, endless)

	m := &Match{
		Config:          cfg,
		Level:           level,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Rng:             rng,
		MovementSystem:  system.NewMovementSystem(ecs),
		CombatSystem:    system.NewCombatSystem(ecs, dispatcher),
		WaveSystem:      system.NewWaveSystem(ecs, catalog, rng, dispatcher),
		OutcomeSystem:   system.NewOutcomeSystem(ecs, dispatcher),
		AnimationSystem: system.NewAnimationSystem(ecs),
		secret:          input.NewSecretCode(input.RetaliateCode),
	}

	ecs.SpawnMech(geom.Vec2{})
	for _, star := range level.Constellation(rng, ecs.GameState.Milky) {
		ecs.SpawnStar(star.Position, star.Name)
	}
	dispatcher.EmitCue(event.CueUnstun, 0)

	log.Printf("Match started: level %d (%s), stars %d, cap %d, endless %v, retaliate %v, seed %d",
		cfg.Level, level.Name, len(ecs.Stars), ecs.Wave.DisplayCap(), endless, cfg.Retaliate, rng.Seed())
	return m, nil
}

// Update продвигает партию на один шаг. Порядок: движение, бой, раунды, исход.
func (m *Match) Update(deltaTime float64, in input.Snapshot) {
	gs := m.ECS.GameState
	if gs.Outcome.Terminal() {
		return
	}

	if m.secret.Feed(in) {
		m.toggleRetaliate()
	} else if in.JustPressed(input.Start) && !gs.Paused {
		m.SetPaused(true)
	}
	if gs.Paused {
		return
	}

	m.gameTime += deltaTime
	m.ECS.GameTime = m.gameTime

	m.MovementSystem.Update(deltaTime, in)
	m.CombatSystem.Update(deltaTime, in)
	m.WaveSystem.Update(deltaTime)
	m.OutcomeSystem.Update(deltaTime)
	m.AnimationSystem.Update(deltaTime)
}

func (m *Match) toggleRetaliate() {
	gs := m.ECS.GameState
	gs.Retaliate = !gs.Retaliate
	log.Printf("Retaliation override accepted: %v", gs.Retaliate)
	m.EventDispatcher.EmitCue(event.CueSecret, 0)
	m.EventDispatcher.Emit(event.RetaliateToggled, gs.Retaliate)
}

// SetPaused ставит или снимает паузу.
func (m *Match) SetPaused(paused bool) {
	gs := m.ECS.GameState
	if gs.Paused == paused {
		return
	}
	gs.Paused = paused
	m.EventDispatcher.EmitCue(event.CueUISelect, 0)
	m.EventDispatcher.Emit(event.PauseChanged, paused)
}

func (m *Match) Pause()  { m.SetPaused(true) }
func (m *Match) Resume() { m.SetPaused(false) }

// IsPaused возвращает текущее состояние паузы.
func (m *Match) IsPaused() bool {
	return m.ECS.GameState.Paused
}

func (m *Match) Outcome() component.Outcome {
	return m.ECS.GameState.Outcome
}

func (m *Match) Kills() int {
	return m.ECS.GameState.Kills
}

func (m *Match) GetGameTime() float64 {
	return m.gameTime
}

// ChargeFrame — деление шкалы заряда, 0..7.
func ChargeFrame(charge float64) int {
	f := int(charge / (config.ChargeRequirement / config.ChargeBarSegments))
	if f < 0 {
		return 0
	}
	if f > config.ChargeBarSegments-1 {
		return config.ChargeBarSegments - 1
	}
	return f
}
