// internal/system/wave.go
package system

import (
	"log"
	"math"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/config"
	"constellation-defenders/internal/defs"
	"constellation-defenders/internal/entity"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/utils"
	"constellation-defenders/pkg/geom"
	mathutil "constellation-defenders/pkg/utils"
)

// WaveSystem отсчитывает раунды и выпускает врагов пачками.
// Размер пачки растёт на одного врага каждые 10 раундов.
type WaveSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	prng            *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, catalog *defs.Catalog, prng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		catalog:         catalog,
		prng:            prng,
		eventDispatcher: eventDispatcher,
	}
}

func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil {
		return
	}
	if wave.CapReached() {
		wave.Round = wave.Cap
		return
	}

	wave.Cadence.Tick(deltaTime)
	for i := 0; i < wave.Cadence.TimesFinished(); i++ {
		wave.Round++
		n := BatchSize(wave.Round)
		for j := 0; j < n; j++ {
			s.spawnEnemy()
		}
		s.eventDispatcher.Emit(event.RoundAdvanced, event.RoundData{Round: wave.Round, Cap: wave.DisplayCap(), Spawned: n})
		if wave.CapReached() {
			log.Printf("Round cap %d reached", wave.Cap)
			break
		}
	}
}

// BatchSize — число врагов в раунде: clamp(round/10, 1, 10).
func BatchSize(round int) int {
	return mathutil.Clamp(round/config.RoundsPerSpawnInc, 1, config.MaxBatch)
}

func (s *WaveSystem) spawnEnemy() {
	var mechPos geom.Vec2
	if _, _, pos, ok := s.ecs.Mech(); ok {
		mechPos = pos.Vec2
	}

	spread := s.catalog.SpreadAt(s.prng.ChooseWeighted(s.catalog.BandWeights()))
	offset := SpawnOffset(mechPos, spread, s.prng.Float64(), s.prng.Float64())

	spec, dps := s.catalog.SpecAt(s.prng.ChooseWeighted(s.catalog.SpecWeights()))
	enemy := component.NewEnemy(spec, dps, s.prng.Sign())
	s.ecs.SpawnEnemy(offset, enemy)
}

// SpawnOffset — точка появления на кольце [120,128] вокруг центра арены.
// Враги появляются со стороны, противоположной смещению меха от центра,
// в секторе шириной spreadDeg.
// u — равномерное число для поворота внутри сектора,
// angleU — для случайного направления, когда мех стоит в центре.
func SpawnOffset(mechPos geom.Vec2, spreadDeg, u, angleU float64) geom.Vec2 {
	var base geom.Vec2
	if mechPos.Length() > config.SpawnCenterThreshold {
		base = mechPos.Normalize().Neg()
	} else {
		base = geom.V(0, -1).Rotate(angleU * 2 * math.Pi)
	}
	dir := base.Rotate((u - 0.5) * geom.Deg2Rad(spreadDeg))
	return dir.Scale(config.SpawnDistance).ClampLength(config.SpawnDistance, config.SpawnDistanceMax)
}
