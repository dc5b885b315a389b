package config

import "image/color"

const (
	ScreenWidth  = 540
	ScreenHeight = 960

	// FrameUnitMs эталонная длительность кадра, к которой привязаны
	// скорости "в пикселях за кадр" из таблицы баланса.
	FrameUnitMs = 16.6
	// MaxDeltaTimeMs ограничивает dt после сворачивания вкладки или фриза.
	MaxDeltaTimeMs = 100.0

	AutosaveIntervalMs = 2000.0

	MaxAllies   = 6
	WeaponTiers = 3

	// Поле, за которым сущности удаляются
	OffscreenMargin = 50.0

	ClickCooldownMs = 300
)

// Тиры оружия
const (
	TierYellow = iota
	TierGreen
	TierBlue
)

var (
	BackgroundColor  = color.RGBA{0, 0, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PlayerColor      = color.RGBA{56, 189, 248, 255}
	ShieldColor      = color.RGBA{56, 189, 248, 90}
	AllyColor        = color.RGBA{16, 185, 129, 255}
	EnemySmallColor  = color.RGBA{239, 68, 68, 255}
	EnemyMediumColor = color.RGBA{249, 115, 22, 255}
	EnemyTankTint    = color.RGBA{153, 27, 27, 255}
	EntryShieldColor = color.RGBA{147, 197, 253, 120}
	BossColor        = color.RGBA{220, 38, 38, 255}
	SuperBossColor   = color.RGBA{217, 70, 239, 255}
	EnemyBulletColor = color.RGBA{248, 113, 113, 255}
	DebuffColor      = color.RGBA{168, 85, 247, 255}
	CyanDebuffColor  = color.RGBA{34, 211, 238, 255}
	DowngradeColor   = color.RGBA{250, 204, 21, 255}
	MissileColor     = color.RGBA{251, 146, 60, 255}
	ExplosionColor   = color.RGBA{253, 186, 116, 255}
	CritColor        = color.RGBA{250, 204, 21, 255}
	HPBarColor       = color.RGBA{16, 185, 129, 255}
	HPBarLowColor    = color.RGBA{239, 68, 68, 255}
	BoomBarColor     = color.RGBA{251, 146, 60, 255}
	BarBackColor     = color.RGBA{15, 23, 42, 200}

	// Цвета пуль по тирам: жёлтый, зелёный, синий
	TierColors = []color.RGBA{
		{250, 204, 21, 255},
		{74, 222, 128, 255},
		{96, 165, 250, 255},
	}

	PowerUpColors = map[string]color.RGBA{
		"W": {250, 204, 21, 255},
		"H": {239, 68, 68, 255},
		"A": {16, 185, 129, 255},
		"B": {251, 146, 60, 255},
		"U": {217, 70, 239, 255},
		"S": {56, 189, 248, 255},
	}
)
