// internal/component/enemy.go
package component

import "constellation-defenders/internal/config"

// EnemySpec — поведенческий тип врага.
type EnemySpec int

const (
	SpecA EnemySpec = iota // агрессивный: ближайшая к себе звезда, сильный урон
	SpecB                  // ищущий: звезда, дальняя от меха
)

func (s EnemySpec) String() string {
	if s == SpecA {
		return "A"
	}
	return "B"
}

// Enemy — самонаводящийся враг.
type Enemy struct {
	Spec         EnemySpec
	RotationSign float64 // +1 или -1, фиксируется при появлении
	DPS          float64

	WalkFrame int
	WalkTimer Timer
}

func NewEnemy(spec EnemySpec, dps, rotationSign float64) *Enemy {
	if rotationSign >= 0 {
		rotationSign = 1
	} else {
		rotationSign = -1
	}
	return &Enemy{
		Spec:         spec,
		RotationSign: rotationSign,
		DPS:          dps,
		WalkTimer:    NewTimer(config.AnimationSpeed, Repeating),
	}
}
