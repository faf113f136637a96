// internal/types/entity.go
package types

// EntityID — идентификатор сущности. Выдаётся по возрастанию и не переиспользуется.
type EntityID uint64

// Kind — вид сущности в реестре.
type Kind int

const (
	KindMech Kind = iota
	KindEnemy
	KindStar
	KindBullet
	KindBeam
)

func (k Kind) String() string {
	switch k {
	case KindMech:
		return "mech"
	case KindEnemy:
		return "enemy"
	case KindStar:
		return "star"
	case KindBullet:
		return "bullet"
	case KindBeam:
		return "beam"
	}
	return "unknown"
}
