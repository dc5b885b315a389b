package defs

// EnemyType defines the size class of a regular enemy.
type EnemyType string

const (
	EnemySmall  EnemyType = "small"
	EnemyMedium EnemyType = "medium"
)

// PowerUpType identifies a collectible drop.
type PowerUpType string

const (
	PowerUpWeapon  PowerUpType = "W" // +0.5 weapon level
	PowerUpHealth  PowerUpType = "H" // max HP and heal
	PowerUpAlly    PowerUpType = "A" // new ally or ally buff
	PowerUpBoom    PowerUpType = "B" // faster recharge, more bounces
	PowerUpUpgrade PowerUpType = "U" // weapon tier upgrade (rare)
	PowerUpShield  PowerUpType = "S" // shield and damage reduction
)

// BossDropPool is the uniform pool for boss drops that are not forced.
var BossDropPool = []PowerUpType{PowerUpWeapon, PowerUpHealth, PowerUpAlly, PowerUpBoom, PowerUpShield}

// SoundKind names an effect the audio collaborator can play.
type SoundKind string

const (
	SoundShoot     SoundKind = "shoot"
	SoundExplosion SoundKind = "explosion"
	SoundPowerUp   SoundKind = "powerup"
	SoundLevelUp   SoundKind = "levelUp"
	SoundDebuff    SoundKind = "debuff"
)
