package system

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
)

// frames переводит dt в число эталонных кадров.
func frames(deltaTime float64) float64 {
	return deltaTime / config.FrameUnitMs
}

// perMs переводит скорость "пикселей за эталонный кадр" в пиксели за мс.
func perMs(speedPerFrame float64) float64 {
	return speedPerFrame / config.FrameUnitMs
}

func playSound(d *event.Dispatcher, kind defs.SoundKind) {
	d.Emit(event.SoundRequested, kind)
}

// offscreen проверяет выход за поле с запасом margin.
func offscreen(p component.Position, margin float64) bool {
	return p.X <= -margin || p.X >= config.ScreenWidth+margin ||
		p.Y <= -margin || p.Y >= config.ScreenHeight+margin
}

func tierIndex(tier int) int {
	if tier < 0 {
		return 0
	}
	if tier >= config.WeaponTiers {
		return config.WeaponTiers - 1
	}
	return tier
}
