package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// ErrNoSave - сохранения нет или оно нечитаемо.
var ErrNoSave = errors.New("no saved session")

// SaveGame - снимок прогресса. Форма JSON совпадает с веб-версией.
type SaveGame struct {
	GameState SavedProgress `json:"gameState"`
	Player    SavedPlayer   `json:"player"`
	AllyCount int           `json:"allyCount"`
}

type SavedProgress struct {
	Score             int     `json:"score"`
	Level             int     `json:"level"`
	WeaponTier        int     `json:"weaponTier"`
	NextBossScore     int     `json:"nextBossScore"`
	BossCount         int     `json:"bossCount"`
	AccumulatedBossHP float64 `json:"accumulatedBossHp"`
	LastLevel         int     `json:"lastLevel"`
}

type SavedPlayer struct {
	HP                  float64 `json:"hp"`
	MaxHP               float64 `json:"maxHp"`
	Level               float64 `json:"level"`
	DamageMultiplier    float64 `json:"damageMultiplier"`
	BossKillDamageBonus float64 `json:"bossKillDamageBonus"`
	PermDamageReduction float64 `json:"permDamageReduction"`
}

// validate отсекает снимки, из которых нельзя продолжить игру.
func (g *SaveGame) validate() error {
	if g.Player.MaxHP <= 0 {
		return fmt.Errorf("max hp must be positive, got %v", g.Player.MaxHP)
	}
	if g.GameState.Level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", g.GameState.Level)
	}
	if g.AllyCount < 0 {
		return fmt.Errorf("negative ally count %d", g.AllyCount)
	}
	return nil
}

func (s *Store) HasSession() bool {
	_, ok := s.Get(KeySaveGame)
	return ok
}

// LoadSession возвращает ErrNoSave и для отсутствующего, и для битого снимка.
func (s *Store) LoadSession() (*SaveGame, error) {
	raw, ok := s.Get(KeySaveGame)
	if !ok || raw == "" {
		return nil, ErrNoSave
	}
	var g SaveGame
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		log.Printf("Failed to load game: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoSave, err)
	}
	if err := g.validate(); err != nil {
		log.Printf("Failed to load game: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNoSave, err)
	}
	return &g, nil
}

func (s *Store) SaveSession(g *SaveGame) error {
	raw, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("failed to marshal save: %w", err)
	}
	return s.Set(KeySaveGame, string(raw))
}

func (s *Store) ClearSession() error {
	return s.Delete(KeySaveGame)
}
