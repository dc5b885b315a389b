package system

import (
	"fmt"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"math"
)

// Stats - производные показатели для мини-панели и экрана паузы.
type Stats struct {
	ShotsPerSec       float64
	Rays              int
	DamageMultiplier  float64
	AllyDamagePercent int
	FinalDamage       float64
	Protection        int
	EnemyDamage       int
}

// ComputeStats использует те же формулы, что и стрельба.
func ComputeStats(w *entity.World, b *defs.Balance) Stats {
	p := w.Player
	sess := w.Session

	fire := FireProfile(b.Player, sess.Level, p.HasteTimer > 0)
	in := PlayerInputs(w, fire.ExcessBonus)

	bossBonus := 1.0
	if p.Level >= b.BulletCurve.BossBonusMinLevel {
		bossBonus += p.BossKillDamageBonus
	}

	protection := int(math.Round(p.PermDamageReduction * 100))
	switch n := len(w.Allies); {
	case n >= config.MaxAllies:
		protection += 20
	case n >= b.Player.AllyReductionSomeFrom:
		protection += 10
	}
	if p.DamageReductionTimer > 0 {
		protection += 30
	}

	return Stats{
		ShotsPerSec:       math.Round(fire.ShotsPerSec()*10) / 10,
		Rays:              min(p.Rays(), b.Player.MaxRaysPerTier),
		DamageMultiplier:  p.DamageMultiplier * bossBonus,
		AllyDamagePercent: int(math.Round(p.AllyDamageRatio * 100)),
		FinalDamage:       math.Floor(ComputeDamage(b.BulletCurve, in)),
		Protection:        protection,
		EnemyDamage:       int(math.Floor(b.Enemy.ContactDisplayBase * EnemyPowerScale(b.Player.EnemyPowerBase, sess.Level))),
	}
}

// HUD - всё, что интерфейс читает после тика.
type HUD struct {
	Score         int
	Level         int
	NextBossScore int
	NextBossHP    float64
	NextBossSuper bool

	HP, MaxHP  float64
	Shield     float64
	HPFraction float64

	BoomFraction float64
	BoomCharged  bool

	Boss          bool
	BossHP        float64
	BossMaxHP     float64
	BossSuper     bool
	BossProtected bool

	Allies     int
	WeaponTier int
	Stats      Stats
}

func ComputeHUD(w *entity.World, b *defs.Balance) HUD {
	p := w.Player
	sess := w.Session
	h := HUD{
		Score:         sess.Score,
		Level:         sess.Level,
		NextBossScore: sess.NextBossScore,
		HP:            p.HP,
		MaxHP:         p.MaxHP,
		Shield:        p.Shield,
		HPFraction:    p.HPFraction(),
		BoomFraction:  sess.BoomFraction(),
		BoomCharged:   sess.BoomCharged,
		Allies:        len(w.Allies),
		WeaponTier:    p.WeaponTier,
		Stats:         ComputeStats(w, b),
	}
	if boss := w.Boss; boss != nil {
		h.Boss = true
		h.BossHP = math.Max(0, boss.HP)
		h.BossMaxHP = boss.MaxHP
		h.BossSuper = boss.Super
		h.BossProtected = boss.Protected()
		h.NextBossHP = boss.MaxHP
		h.NextBossSuper = boss.Super
	} else {
		h.NextBossHP, h.NextBossSuper = BossMaxHP(b.Boss, sess.BossCount, sess.AccumulatedBossHP)
	}
	return h
}

// Perk - пассивный эффект для списка на экране паузы.
type Perk struct {
	Name   string
	Detail string
}

func ComputePerks(w *entity.World, b *defs.Balance) []Perk {
	p := w.Player
	sess := w.Session
	var perks []Perk

	if sess.Level > 1 {
		bonus := math.Round(float64(sess.Level-1) * b.Player.LevelFireBonus * 100)
		perks = append(perks, Perk{Name: fmt.Sprintf("Lvl %d", sess.Level), Detail: fmt.Sprintf("+%.0f%% Spd", bonus)})
	}
	switch p.WeaponTier {
	case config.TierGreen:
		perks = append(perks, Perk{Name: "Green Tier", Detail: fmt.Sprintf("%.1fx Power", b.BulletCurve.TierMultipliers[1])})
	case config.TierBlue:
		perks = append(perks, Perk{Name: "Blue Tier", Detail: fmt.Sprintf("%.1fx Power", b.BulletCurve.TierMultipliers[2])})
	}
	if len(w.Allies) >= b.Player.AllyReductionSomeFrom {
		perks = append(perks, Perk{Name: "Ally Shield", Detail: "-10% Damage"})
	}
	if len(w.Allies) >= config.MaxAllies {
		perks = append(perks, Perk{Name: "Guardian", Detail: "-20% Damage"})
	}
	if sess.BossCount > 0 {
		perks = append(perks, Perk{Name: "Boss Slayer", Detail: fmt.Sprintf("+%.0f%% HP", float64(sess.BossCount)*b.Boss.HPRewardFraction*100)})
	}
	if p.DamageReductionTimer > 0 {
		perks = append(perks, Perk{Name: "Shielding", Detail: "-30% Damage"})
	}
	if p.PermDamageReduction > 0 {
		perks = append(perks, Perk{Name: "Eternal Shield", Detail: fmt.Sprintf("-%.0f%% DMG", math.Round(p.PermDamageReduction*100))})
	}
	return perks
}
