// internal/defs/loader.go
package defs

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"

	"constellation-defenders/internal/component"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevels []byte

var (
	// ErrUnknownLevel — индекс уровня вне таблицы.
	ErrUnknownLevel = errors.New("unknown level")
	// ErrInvalidLevel — уровень без предела раундов и не бесконечный.
	ErrInvalidLevel = errors.New("invalid level")
)

// DefaultCatalog возвращает встроенную таблицу уровней.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultLevels)
}

// LoadCatalog читает таблицу уровней из YAML-файла.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level catalog file %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog разбирает и проверяет YAML таблицы уровней.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse level catalog YAML: %w", err)
	}
	applyDefaults(&catalog)
	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid level catalog: %w", err)
	}
	log.Printf("Loaded %d levels, %d enemy specs", len(catalog.Levels), len(catalog.EnemySpecs))
	return &catalog, nil
}

func applyDefaults(c *Catalog) {
	for i := range c.Levels {
		lvl := &c.Levels[i]
		if lvl.Layout == "" {
			switch {
			case len(lvl.Stars) > 0:
				lvl.Layout = LayoutFixed
			case lvl.Endless:
				lvl.Layout = LayoutEmpty
			default:
				lvl.Layout = LayoutRandom
			}
		}
	}
}

func validateCatalog(c *Catalog) error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("at least one level is required")
	}
	if len(c.EnemySpecs) == 0 {
		return fmt.Errorf("enemySpecs cannot be empty")
	}
	total := 0.0
	for i, s := range c.EnemySpecs {
		if _, err := ParseSpec(s.Spec); err != nil {
			return fmt.Errorf("enemy spec %d: %w", i, err)
		}
		if s.Weight < 0 || s.DPS < 0 {
			return fmt.Errorf("enemy spec %d: weight and dps cannot be negative", i)
		}
		total += s.Weight
	}
	if total <= 0 {
		return fmt.Errorf("enemy spec weights must sum to a positive value")
	}
	if len(c.SpawnBands) == 0 {
		return fmt.Errorf("spawnBands cannot be empty")
	}
	total = 0
	for i, b := range c.SpawnBands {
		if b.Weight < 0 || b.SpreadDeg < 0 || b.SpreadDeg > 360 {
			return fmt.Errorf("spawn band %d: spread must be in [0, 360] and weight non-negative", i)
		}
		total += b.Weight
	}
	if total <= 0 {
		return fmt.Errorf("spawn band weights must sum to a positive value")
	}
	for i, lvl := range c.Levels {
		if err := validateLevel(lvl); err != nil {
			return fmt.Errorf("level %d (%s): %w", i, lvl.Name, err)
		}
	}
	return nil
}

func validateLevel(lvl LevelDefinition) error {
	if lvl.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !lvl.Endless && lvl.RoundCap <= 0 {
		return fmt.Errorf("%w: roundCap must be positive for a non-endless level", ErrInvalidLevel)
	}
	switch lvl.Layout {
	case LayoutFixed:
		if len(lvl.Stars) == 0 {
			return fmt.Errorf("fixed layout needs at least one star")
		}
	case LayoutRandom, LayoutEmpty:
	default:
		return fmt.Errorf("unknown layout %q", lvl.Layout)
	}
	return nil
}

// ParseSpec переводит "A"/"B" в тип врага.
func ParseSpec(s string) (component.EnemySpec, error) {
	switch s {
	case "A", "a":
		return component.SpecA, nil
	case "B", "b":
		return component.SpecB, nil
	}
	return 0, fmt.Errorf("unknown enemy spec %q", s)
}

// Level возвращает уровень по индексу меню.
func (c *Catalog) Level(index int) (LevelDefinition, error) {
	if index < 0 || index >= len(c.Levels) {
		return LevelDefinition{}, fmt.Errorf("%w: %d (have %d)", ErrUnknownLevel, index, len(c.Levels))
	}
	return c.Levels[index], nil
}

// Len — число уровней.
func (c *Catalog) Len() int {
	return len(c.Levels)
}

// SpecWeights — веса типов врагов в порядке таблицы.
func (c *Catalog) SpecWeights() []float64 {
	weights := make([]float64, len(c.EnemySpecs))
	for i, s := range c.EnemySpecs {
		weights[i] = s.Weight
	}
	return weights
}

// SpecAt возвращает тип врага и его урон по индексу таблицы.
func (c *Catalog) SpecAt(i int) (component.EnemySpec, float64) {
	def := c.EnemySpecs[i]
	spec, _ := ParseSpec(def.Spec)
	return spec, def.DPS
}

// BandWeights — веса секторов появления.
func (c *Catalog) BandWeights() []float64 {
	weights := make([]float64, len(c.SpawnBands))
	for i, b := range c.SpawnBands {
		weights[i] = b.Weight
	}
	return weights
}

// SpreadAt — ширина сектора в градусах по индексу таблицы.
func (c *Catalog) SpreadAt(i int) float64 {
	return c.SpawnBands[i].SpreadDeg
}
