package component

import "go-space-shooter/internal/defs"

// PowerUp - падающий бонус.
type PowerUp struct {
	Position
	Type   defs.PowerUpType
	Radius float64
}
