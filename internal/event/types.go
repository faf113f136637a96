// internal/event/types.go
package event

import (
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

const (
	EntitySpawned    EventType = "EntitySpawned"
	EntityDestroyed  EventType = "EntityDestroyed"
	CorpseSpawned    EventType = "CorpseSpawned" // враг убит, интерфейс рисует труп
	SoundCue         EventType = "SoundCue"
	RoundAdvanced    EventType = "RoundAdvanced"
	MatchEnded       EventType = "MatchEnded"
	RetaliateToggled EventType = "RetaliateToggled"
	PauseChanged     EventType = "PauseChanged"
	GraceStarted     EventType = "GraceStarted"
)

// Cue — имя звукового сигнала.
type Cue string

const (
	CueEnemyDestroyed Cue = "enemy_destroyed"
	CueSlash          Cue = "slash"
	CuePew            Cue = "pew"
	CueBeam           Cue = "beam"
	CueUnstun         Cue = "unstun"
	CueSecret         Cue = "secret"
	CueUISelect       Cue = "ui_select"
	CueBGMFade        Cue = "bgm_fade"
)

// SpawnData — данные EntitySpawned.
type SpawnData struct {
	ID       types.EntityID
	Kind     types.Kind
	Position geom.Vec2
	Spec     string // для врагов
	Facing   string // для снарядов и лучей
	Health   float64
}

// DestroyData — данные EntityDestroyed.
type DestroyData struct {
	ID       types.EntityID
	Kind     types.Kind
	Position geom.Vec2
}

// CorpseData — данные CorpseSpawned.
type CorpseData struct {
	Position geom.Vec2
	Spec     string
}

// CueData — данные SoundCue. Source равен нулю для сигналов без источника.
type CueData struct {
	Cue    Cue
	Source types.EntityID
}

// RoundData — данные RoundAdvanced.
type RoundData struct {
	Round   int
	Cap     int
	Spawned int
}

// MatchEndData — данные MatchEnded.
type MatchEndData struct {
	Outcome           string
	PresentationIndex int
	Kills             int
}
