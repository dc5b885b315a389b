package system

import (
	"testing"

	"go-space-shooter/internal/defs"
)

func TestComputeDamageBulletCurve(t *testing.T) {
	c := defs.DefaultBalance().BulletCurve
	tests := []struct {
		name string
		in   DamageInputs
		want float64
	}{
		{"start", DamageInputs{Level: 0, DamageMultiplier: 1}, 85 * 2.2},
		{"knee", DamageInputs{Level: 5, DamageMultiplier: 1}, 85 * 2.2},
		{"green tier", DamageInputs{Level: 6, Tier: 1, DamageMultiplier: 1}, 145 * 3.5 * 2.2},
		{"boss count", DamageInputs{Level: 1, BossCount: 2, DamageMultiplier: 1}, 85 * 1.3 * 2.2},
		{"excess speed", DamageInputs{Level: 1, DamageMultiplier: 1, ExcessBonus: 1.5}, 85 * 2.2 * 1.5},
		{"level excess and boss bonus", DamageInputs{Level: 12, DamageMultiplier: 1, BossKillBonus: 0.15}, 505 * 2.2 * 1.4 * 1.15},
		{"boss bonus below level 10", DamageInputs{Level: 9, DamageMultiplier: 2, BossKillBonus: 0.5}, 325 * 2.2 * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDamage(c, tt.in); !approx(got, tt.want) {
				t.Errorf("ComputeDamage = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeDamageCurvesDiffer(t *testing.T) {
	b := defs.DefaultBalance()
	in := DamageInputs{Level: 3, Tier: 2, BossCount: 1, DamageMultiplier: 2}

	if got, want := ComputeDamage(b.MissileCurve, in), 85*1.4*2.0; !approx(got, want) {
		t.Errorf("missile damage = %v, want %v", got, want)
	}
	// союзники не используют тир и множитель урона
	if got, want := ComputeDamage(b.AllyCurve, in), 60*1.15; !approx(got, want) {
		t.Errorf("ally damage = %v, want %v", got, want)
	}
	if got, want := ComputeDamage(b.EnemyCurve, in), 85*5.0; !approx(got, want) {
		t.Errorf("enemy snapshot damage = %v, want %v", got, want)
	}
}

func TestFireProfile(t *testing.T) {
	pb := defs.DefaultBalance().Player

	f := FireProfile(pb, 1, false)
	if f.IntervalMs != 222 || f.ExcessBonus != 1 {
		t.Errorf("level 1: interval %v bonus %v", f.IntervalMs, f.ExcessBonus)
	}

	f = FireProfile(pb, 1, true)
	if !approx(f.IntervalMs, 111) || f.ExcessBonus != 1 {
		t.Errorf("level 1 haste: interval %v bonus %v", f.IntervalMs, f.ExcessBonus)
	}

	f = FireProfile(pb, 5, false)
	target := 222 / 1.4
	if !approx(f.IntervalMs, 198) {
		t.Errorf("level 5 interval = %v, want 198", f.IntervalMs)
	}
	if want := 1 + (198/target-1)*0.3; !approx(f.ExcessBonus, want) {
		t.Errorf("level 5 bonus = %v, want %v", f.ExcessBonus, want)
	}

	// лимит не опускается ниже 167 мс
	f = FireProfile(pb, 30, false)
	if !approx(f.IntervalMs, 167) {
		t.Errorf("level 30 interval = %v, want 167", f.IntervalMs)
	}
	if f.ExcessBonus <= 1 {
		t.Errorf("level 30 should convert excess speed, bonus %v", f.ExcessBonus)
	}
}

func TestEnemyPowerScale(t *testing.T) {
	if got := EnemyPowerScale(1.44, 1); got != 1 {
		t.Errorf("level 1 scale = %v", got)
	}
	if got := EnemyPowerScale(1.44, 3); !approx(got, 1.44*1.44) {
		t.Errorf("level 3 scale = %v", got)
	}
}
