// internal/component/projectile.go
package component

import "constellation-defenders/internal/config"

// Bullet — снаряд дальней атаки, летит по направлению взгляда меха.
type Bullet struct {
	Facing Direction
}

// OutOfBounds — снаряд покинул арену.
func OutOfBounds(p Position) bool {
	return p.X > config.BulletBoundX || p.X < -config.BulletBoundX ||
		p.Y > config.BulletBoundY || p.Y < -config.BulletBoundY
}

// Beam — луч. Не двигается и живёт фиксированное число кадров.
type Beam struct {
	Facing     Direction
	Frame      int
	FrameTimer Timer
}

func NewBeam(facing Direction) *Beam {
	return &Beam{
		Facing:     facing,
		FrameTimer: NewTimer(config.BeamFrameDuration, Repeating),
	}
}

// Advance продвигает кадр луча; возвращает true, когда анимация закончилась.
func (b *Beam) Advance(dt float64) bool {
	b.FrameTimer.Tick(dt)
	b.Frame += b.FrameTimer.TimesFinished()
	return b.Frame >= config.BeamFrames
}
