package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadBalance reads a balance override file on top of DefaultBalance.
// Fields missing from the file keep their default values.
func LoadBalance(path string) (*Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}

	if err := json.Unmarshal(file, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance: %w", err)
	}

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance %s: %w", path, err)
	}

	log.Printf("Loaded balance overrides from %s", path)
	return b, nil
}

// Validate rejects tables that would break simulation invariants.
func (b *Balance) Validate() error {
	if b.Player.StartHP <= 0 {
		return fmt.Errorf("player start hp must be positive, got %v", b.Player.StartHP)
	}
	if b.Player.MaxRaysPerTier < 1 {
		return fmt.Errorf("max rays per tier must be at least 1, got %d", b.Player.MaxRaysPerTier)
	}
	if b.Player.FireCapMinMs <= 0 || b.Player.BaseFireIntervalMs <= 0 {
		return fmt.Errorf("fire intervals must be positive")
	}
	if b.Missile.StartBounces < 1 || b.Missile.MaxBounces < b.Missile.StartBounces {
		return fmt.Errorf("missile bounces out of range: start %d, max %d", b.Missile.StartBounces, b.Missile.MaxBounces)
	}
	if b.Boss.SuperEvery < 1 {
		return fmt.Errorf("super boss period must be at least 1, got %d", b.Boss.SuperEvery)
	}
	if len(b.LootTables) == 0 {
		return fmt.Errorf("at least one loot table is required")
	}
	for _, t := range b.LootTables {
		total := 0.0
		for _, e := range t.Entries {
			if e.Weight < 0 {
				return fmt.Errorf("loot table tier %d: negative weight for %s", t.WeaponTier, e.Type)
			}
			total += e.Weight
		}
		if total <= 0 {
			return fmt.Errorf("loot table tier %d has no weight", t.WeaponTier)
		}
	}
	return nil
}
