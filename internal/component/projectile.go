// internal/component/projectile.go
package component

import (
	"math"

	"go-space-shooter/internal/types"
)

// BulletKind различает снаряды вместо набора булевых флагов.
type BulletKind int

const (
	BulletPlayer BulletKind = iota
	BulletEnemy
	BulletDebuff
	BulletDowngrade
)

func (k BulletKind) String() string {
	switch k {
	case BulletPlayer:
		return "player"
	case BulletEnemy:
		return "enemy"
	case BulletDebuff:
		return "debuff"
	case BulletDowngrade:
		return "downgrade"
	}
	return "unknown"
}

// Hostile - снаряд летит в игрока.
func (k BulletKind) Hostile() bool {
	return k != BulletPlayer
}

// Bullet представляет летящий снаряд.
// Ally и Tier имеют смысл только для BulletPlayer, Cyan - только для BulletDebuff.
type Bullet struct {
	Position
	Velocity
	Kind   BulletKind
	Damage float64
	Radius float64

	Ally bool
	Tier int
	Cyan bool
}

// MissileTarget описывает, кого преследует ракета.
type MissileTarget int

const (
	TargetNone MissileTarget = iota
	TargetEnemy
	TargetBoss
)

// Missile - самонаводящаяся ракета "boom" с отскоками.
type Missile struct {
	Position
	Angle  float64
	Speed  float64 // пикселей за мс
	Ally   bool
	Target MissileTarget
	// TargetID валиден только при Target == TargetEnemy
	TargetID types.EntityID

	Bounces    int
	HitEnemies map[types.EntityID]bool
	HitBoss    bool
}

// NewMissile создаёт ракету, смотрящую вверх.
func NewMissile(x, y, speedPerMs float64, ally bool) *Missile {
	return &Missile{
		Position:   Position{X: x, Y: y},
		Angle:      -math.Pi / 2,
		Speed:      speedPerMs,
		Ally:       ally,
		HitEnemies: make(map[types.EntityID]bool),
	}
}
