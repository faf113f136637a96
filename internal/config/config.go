// internal/config/config.go
package config

import "image/color"

// Экран: логическое разрешение арены и масштаб окна.
const (
	ScreenWidth  = 160
	ScreenHeight = 144
	WindowScale  = 5
	MaxDeltaTime = 0.06
	FixedStep    = 1.0 / 64.0 // шаг симуляции
	MaxSubSteps  = 8
)

// Мех
const (
	MechSpeed      = 60.0
	MechSlowdown   = 0.4 // множитель скорости, пока идёт кулдаун атаки
	MechBoundX     = 72.0
	MechBoundY     = 64.0
	StunCooldown   = 1.0
	MeleeCooldown  = 0.5
	RangedCooldown = 0.25
	AreaCooldown   = 0.8
	MeleeArcOffset = 16.0
	StunRange      = 32.0 // дистанция, с которой враг может атаковать меха
	StunKillRadius = 16.0
)

// Оружие
const (
	BulletSpeed        = 80.0
	BulletBoundX       = 81.0
	BulletBoundY       = 73.0
	BulletHitRadius    = 8.0
	MeleeHalfLong      = 16.0 // полуширина дуги вдоль фронта
	MeleeHalfShort     = 12.0
	BeamOffset         = 80.0
	BeamHalfWide       = 30.0
	BeamHalfLong       = 72.0
	BeamFrames         = 8
	BeamFrameDuration  = 0.125
	ArcFrames          = 8
	ArcFrameDuration   = 0.05
	ChargeRequirement  = 30.0
	ChargePerKill      = 1.0
	ChargeBarSegments  = 8
	CorpseFrames       = 8
	CorpseFrameSeconds = 0.05
)

// Враги
const (
	EnemyMaxSpeed        = 35.0
	EnemyMinSpeed        = 0.1
	EnemyAcceleration    = 5.0
	EnemyContactRadius   = 8.0 // контакт со звездой и с мехом
	CaptureRadius        = 32.0
	FleeRadius           = 12.0
	OrbitAngleDeg        = 95.0
	TightOrbitAngleDeg   = 70.0
	RetaliateStarLimit   = 2 // при большем числе звёзд враги не нападают на меха
	SpawnDistance        = 120.0
	SpawnDistanceMax     = 128.0
	SpawnCenterThreshold = 1.0
)

// Раунды и исход
const (
	RoundCadence      = 0.6
	RoundsPerSpawnInc = 10
	MaxBatch          = 10
	EndlessCapDisplay = 999
	GraceDuration     = 2.0
	StarHealthInitial = 80.0
	StarHealthMax     = 100.0
	AnimationSpeed    = 0.35 // кадры ходьбы меха и врагов
	WalkFrames        = 2
)

// Интерфейс
const (
	BootDuration      = 1.5 // заставка до меню
	ResultsRevealStep = 1.0 // таймер последовательности итогов
	ResultsPanels     = 3
	LevelSlots        = 6
	SelectColumns     = 3
	TTYHoldLatch      = 0.15 // терминал не сообщает об отпускании клавиш
	AudioVolume       = 0.6
)

var (
	BackgroundColor = color.RGBA{8, 10, 24, 255}
	ArenaColor      = color.RGBA{16, 20, 44, 255}
	MechColor       = color.RGBA{220, 220, 240, 255}
	ArcColor        = color.RGBA{255, 255, 255, 200}
	EnemyColors     = []color.RGBA{
		{235, 70, 70, 255},  // A
		{240, 160, 60, 255}, // B
	}
	StarColor       = color.RGBA{255, 230, 120, 255}
	StarDimColor    = color.RGBA{110, 90, 40, 255}
	BulletColor     = color.RGBA{120, 220, 255, 255}
	BeamColor       = color.RGBA{140, 200, 255, 160}
	ChargeColor     = color.RGBA{120, 220, 255, 255}
	ChargeFullColor = color.RGBA{255, 255, 255, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{120, 120, 140, 255}
	PauseOverlay    = color.RGBA{0, 0, 0, 128}
)
