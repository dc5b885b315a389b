package system

import (
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"math"
)

// DamageInputs - состояние игрока и сессии, от которого зависит урон.
type DamageInputs struct {
	Level            float64
	Tier             int
	BossCount        int
	DamageMultiplier float64
	// ExcessBonus - бонус от скорострельности сверх лимита, 0 трактуется как 1
	ExcessBonus   float64
	BossKillBonus float64
}

// ComputeDamage - единственная формула урона. Пули игрока, ракеты, союзники
// и снимок HP врагов отличаются только строкой DamageCurve.
func ComputeDamage(c defs.DamageCurve, in DamageInputs) float64 {
	dmg := c.Base
	if in.Level > c.KneeLevel {
		dmg = c.Base + (in.Level-c.KneeLevel)*c.PerLevelAfterKnee
	}
	dmg *= 1 + float64(in.BossCount)*c.BossCountScale
	dmg *= c.TierMultipliers[tierIndex(in.Tier)]
	dmg *= c.Global

	if c.UseDamageMultiplier {
		dmg *= in.DamageMultiplier
	}
	if in.ExcessBonus > 0 {
		dmg *= in.ExcessBonus
	}
	if c.UseLevelExcess {
		dmg *= math.Max(1, 1+(in.Level-c.LevelExcessKnee)*c.LevelExcessStep)
	}
	if c.UseBossKillBonus && in.Level >= c.BossBonusMinLevel {
		dmg *= 1 + in.BossKillBonus
	}
	return dmg
}

// PlayerInputs собирает DamageInputs из текущего мира.
func PlayerInputs(w *entity.World, excess float64) DamageInputs {
	p := w.Player
	return DamageInputs{
		Level:            p.Level,
		Tier:             p.WeaponTier,
		BossCount:        w.Session.BossCount,
		DamageMultiplier: p.DamageMultiplier,
		ExcessBonus:      excess,
		BossKillBonus:    p.BossKillDamageBonus,
	}
}

// FireStats - результат расчёта темпа стрельбы.
type FireStats struct {
	TargetMs    float64
	CapMs       float64
	IntervalMs  float64
	ExcessBonus float64
}

func (f FireStats) ShotsPerSec() float64 {
	return 1000 / f.IntervalMs
}

// FireProfile считает интервал залпа для уровня сложности. Если желаемый
// интервал быстрее лимита, лишняя скорость превращается в бонус урона.
func FireProfile(pb defs.PlayerBalance, level int, haste bool) FireStats {
	hasteMult := 1.0
	if haste {
		hasteMult = pb.HasteMultiplier
	}
	levelBonus := float64(level-1) * pb.LevelFireBonus
	target := pb.BaseFireIntervalMs / (1 + levelBonus) / hasteMult
	capMs := math.Max(pb.FireCapMinMs, pb.FireCapInitialMs-float64(level-1)*pb.FireCapStepMs) / hasteMult

	stats := FireStats{TargetMs: target, CapMs: capMs, IntervalMs: math.Max(capMs, target), ExcessBonus: 1}
	if target < capMs {
		stats.ExcessBonus = 1 + (capMs/target-1)*pb.ExcessSpeedToDamage
	}
	return stats
}

// EnemyPowerScale - экспоненциальный множитель силы врагов от уровня.
func EnemyPowerScale(base float64, level int) float64 {
	return math.Pow(base, float64(level-1))
}
