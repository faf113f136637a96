// internal/defs/types.go
package defs

// Layout — способ расстановки звёзд уровня.
type Layout string

const (
	LayoutFixed  Layout = "fixed"
	LayoutRandom Layout = "random"
	LayoutEmpty  Layout = "empty"
)

// LevelDefinition описывает один слот меню выбора уровня.
type LevelDefinition struct {
	Name     string       `yaml:"name"`
	RoundCap int          `yaml:"roundCap"` // 0 допустим только для бесконечного уровня
	Endless  bool         `yaml:"endless"`
	Layout   Layout       `yaml:"layout"`
	Stars    [][2]float64 `yaml:"stars"` // координаты для fixed
}

// EnemySpecDefinition — вероятность появления и урон типа врага.
type EnemySpecDefinition struct {
	Spec   string  `yaml:"spec"` // "A" или "B"
	Weight float64 `yaml:"weight"`
	DPS    float64 `yaml:"dps"`
}

// SpawnBand — ширина сектора появления врагов в градусах.
type SpawnBand struct {
	SpreadDeg float64 `yaml:"spreadDeg"`
	Weight    float64 `yaml:"weight"`
}

// Catalog — все таблицы уровней.
type Catalog struct {
	EnemySpecs []EnemySpecDefinition `yaml:"enemySpecs"`
	SpawnBands []SpawnBand           `yaml:"spawnBands"`
	Levels     []LevelDefinition     `yaml:"levels"`
}

// Rand — источник случайных чисел для процедурных таблиц.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
