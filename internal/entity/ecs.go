// internal/entity/ecs.go
package entity

import (
	"sort"

	"constellation-defenders/internal/component"
	"constellation-defenders/internal/event"
	"constellation-defenders/internal/types"
	"constellation-defenders/pkg/geom"
)

// ECS — реестр живых сущностей партии. Каждому виду свой набор компонентов.
// Удаление отложенное: Destroy помечает сущность, Flush удаляет помеченные.
type ECS struct {
	GameTime   float64
	NextID     types.EntityID
	Kinds      map[types.EntityID]types.Kind
	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Mechs      map[types.EntityID]*component.Mech
	Enemies    map[types.EntityID]*component.Enemy
	Stars      map[types.EntityID]*component.Star
	Bullets    map[types.EntityID]*component.Bullet
	Beams      map[types.EntityID]*component.Beam
	Wave       *component.Wave
	GameState  *component.GameState

	events  *event.Dispatcher
	pending map[types.EntityID]struct{}
	order   []types.EntityID // порядок пометки для Flush
}

// NewECS создаёт пустой реестр. events может быть nil.
func NewECS(events *event.Dispatcher) *ECS {
	return &ECS{
		NextID:     1,
		Kinds:      make(map[types.EntityID]types.Kind),
		Positions:  make(map[types.EntityID]*component.Position),
		Velocities: make(map[types.EntityID]*component.Velocity),
		Mechs:      make(map[types.EntityID]*component.Mech),
		Enemies:    make(map[types.EntityID]*component.Enemy),
		Stars:      make(map[types.EntityID]*component.Star),
		Bullets:    make(map[types.EntityID]*component.Bullet),
		Beams:      make(map[types.EntityID]*component.Beam),
		GameState:  &component.GameState{},
		events:     events,
		pending:    make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Events — диспетчер, в который реестр отправляет события жизненного цикла.
func (ecs *ECS) Events() *event.Dispatcher {
	return ecs.events
}

func (ecs *ECS) register(kind types.Kind, pos geom.Vec2) types.EntityID {
	id := ecs.NewEntity()
	ecs.Kinds[id] = kind
	ecs.Positions[id] = component.NewPosition(pos)
	return id
}

func (ecs *ECS) spawned(data event.SpawnData) {
	ecs.events.Emit(event.EntitySpawned, data)
}

// SpawnMech создаёт меха. Второй мех — нарушение контракта.
func (ecs *ECS) SpawnMech(pos geom.Vec2) types.EntityID {
	if len(ecs.Mechs) > 0 {
		panic("entity: mech already exists")
	}
	id := ecs.register(types.KindMech, pos)
	m := component.NewMech()
	ecs.Mechs[id] = m
	ecs.spawned(event.SpawnData{ID: id, Kind: types.KindMech, Position: pos, Facing: m.Facing.String()})
	return id
}

func (ecs *ECS) SpawnEnemy(pos geom.Vec2, e *component.Enemy) types.EntityID {
	id := ecs.register(types.KindEnemy, pos)
	ecs.Enemies[id] = e
	ecs.Velocities[id] = &component.Velocity{}
	ecs.spawned(event.SpawnData{ID: id, Kind: types.KindEnemy, Position: pos, Spec: e.Spec.String()})
	return id
}

func (ecs *ECS) SpawnStar(pos geom.Vec2, name string) types.EntityID {
	id := ecs.register(types.KindStar, pos)
	s := component.NewStar(name)
	ecs.Stars[id] = s
	ecs.spawned(event.SpawnData{ID: id, Kind: types.KindStar, Position: pos, Health: s.Health})
	return id
}

func (ecs *ECS) SpawnBullet(pos geom.Vec2, facing component.Direction, speed float64) types.EntityID {
	id := ecs.register(types.KindBullet, pos)
	ecs.Bullets[id] = &component.Bullet{Facing: facing}
	ecs.Velocities[id] = &component.Velocity{Vec2: facing.Unit().Scale(speed)}
	ecs.spawned(event.SpawnData{ID: id, Kind: types.KindBullet, Position: pos, Facing: facing.String()})
	return id
}

func (ecs *ECS) SpawnBeam(pos geom.Vec2, facing component.Direction) types.EntityID {
	id := ecs.register(types.KindBeam, pos)
	ecs.Beams[id] = component.NewBeam(facing)
	ecs.spawned(event.SpawnData{ID: id, Kind: types.KindBeam, Position: pos, Facing: facing.String()})
	return id
}

// Destroy помечает сущность к удалению. Повторный вызов ничего не делает.
func (ecs *ECS) Destroy(id types.EntityID) {
	if _, ok := ecs.Kinds[id]; !ok {
		return
	}
	if _, ok := ecs.pending[id]; ok {
		return
	}
	ecs.pending[id] = struct{}{}
	ecs.order = append(ecs.order, id)
}

// IsPending — сущность помечена к удалению в текущем проходе.
func (ecs *ECS) IsPending(id types.EntityID) bool {
	_, ok := ecs.pending[id]
	return ok
}

// Alive — сущность существует и не помечена к удалению.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Kinds[id]
	return ok && !ecs.IsPending(id)
}

// Flush удаляет помеченные сущности и отправляет EntityDestroyed.
// Возвращает число удалённых.
func (ecs *ECS) Flush() int {
	n := 0
	for _, id := range ecs.order {
		kind, ok := ecs.Kinds[id]
		if !ok {
			continue
		}
		var pos geom.Vec2
		if p := ecs.Positions[id]; p != nil {
			pos = p.Vec2
		}
		delete(ecs.Kinds, id)
		delete(ecs.Positions, id)
		delete(ecs.Velocities, id)
		delete(ecs.Mechs, id)
		delete(ecs.Enemies, id)
		delete(ecs.Stars, id)
		delete(ecs.Bullets, id)
		delete(ecs.Beams, id)
		ecs.events.Emit(event.EntityDestroyed, event.DestroyData{ID: id, Kind: kind, Position: pos})
		n++
	}
	ecs.order = ecs.order[:0]
	for id := range ecs.pending {
		delete(ecs.pending, id)
	}
	return n
}

// Clear помечает и удаляет все сущности.
func (ecs *ECS) Clear() int {
	for _, id := range sortedKeys(ecs.Kinds) {
		ecs.Destroy(id)
	}
	return ecs.Flush()
}

// MechID возвращает идентификатор единственного меха.
func (ecs *ECS) MechID() (types.EntityID, bool) {
	for id := range ecs.Mechs {
		return id, true
	}
	return 0, false
}

// Mech возвращает меха и его позицию.
func (ecs *ECS) Mech() (types.EntityID, *component.Mech, *component.Position, bool) {
	id, ok := ecs.MechID()
	if !ok {
		return 0, nil, nil, false
	}
	return id, ecs.Mechs[id], ecs.Positions[id], true
}

func (ecs *ECS) EnemyIDs() []types.EntityID  { return sortedKeys(ecs.Enemies) }
func (ecs *ECS) StarIDs() []types.EntityID   { return sortedKeys(ecs.Stars) }
func (ecs *ECS) BulletIDs() []types.EntityID { return sortedKeys(ecs.Bullets) }
func (ecs *ECS) BeamIDs() []types.EntityID   { return sortedKeys(ecs.Beams) }

// LiveCount — число сущностей вида, не помеченных к удалению.
func (ecs *ECS) LiveCount(kind types.Kind) int {
	n := 0
	for id, k := range ecs.Kinds {
		if k == kind && !ecs.IsPending(id) {
			n++
		}
	}
	return n
}

// Count — общее число сущностей в реестре.
func (ecs *ECS) Count() int {
	return len(ecs.Kinds)
}

// sortedKeys — детерминированный порядок обхода.
func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
