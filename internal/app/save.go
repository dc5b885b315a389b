package app

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/storage"
)

// captureSave снимает с мира только то, что переживает перезапуск:
// прогресс, корабль и число союзников. Враги и снаряды не сохраняются.
func captureSave(w *entity.World) *storage.SaveGame {
	p := w.Player
	sess := w.Session
	return &storage.SaveGame{
		GameState: storage.SavedProgress{
			Score:             sess.Score,
			Level:             sess.Level,
			WeaponTier:        p.WeaponTier,
			NextBossScore:     sess.NextBossScore,
			BossCount:         sess.BossCount,
			AccumulatedBossHP: sess.AccumulatedBossHP,
			LastLevel:         sess.LastLevel,
		},
		Player: storage.SavedPlayer{
			HP:                  p.HP,
			MaxHP:               p.MaxHP,
			Level:               p.Level,
			DamageMultiplier:    p.DamageMultiplier,
			BossKillDamageBonus: p.BossKillDamageBonus,
			PermDamageReduction: p.PermDamageReduction,
		},
		AllyCount: len(w.Allies),
	}
}

// applySave накладывает снимок на только что сброшенный мир.
func applySave(w *entity.World, b *defs.Balance, s *storage.SaveGame) {
	sess := w.Session
	gs := s.GameState
	sess.Score = gs.Score
	sess.Level = gs.Level
	sess.LastLevel = max(gs.LastLevel, gs.Level)
	sess.NextBossScore = gs.NextBossScore
	sess.BossCount = gs.BossCount
	sess.AccumulatedBossHP = gs.AccumulatedBossHP

	p := w.Player
	p.WeaponTier = min(max(gs.WeaponTier, 0), config.WeaponTiers-1)
	p.MaxHP = s.Player.MaxHP
	p.HP = min(s.Player.HP, p.MaxHP)
	p.Level = s.Player.Level
	p.DamageMultiplier = max(1, s.Player.DamageMultiplier)
	p.BossKillDamageBonus = s.Player.BossKillDamageBonus
	p.PermDamageReduction = s.Player.PermDamageReduction

	w.FillAllies(min(s.AllyCount, config.MaxAllies), b.Ally.HPRatio)
}
