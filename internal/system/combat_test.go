package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

func TestAccumulatedDamageSharesOneCrit(t *testing.T) {
	for _, tt := range []struct {
		name  string
		roll  float64
		total float64
		crit  bool
	}{
		{"no crit", 0.5, 250, false},
		{"crit", 0.05, 250 * 1.45, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t, utils.NewFixedRand(tt.roll))
			e := s.addEnemy(200, 400, 1e6, defs.EnemySmall)
			s.addPlayerBullet(200, 400, 100, false)
			s.addPlayerBullet(201, 401, 150, false)

			hits := s.combat.ResolvePlayerBullets()
			if len(hits) != 1 {
				t.Fatalf("hits = %d, want 1 bucket", len(hits))
			}
			h := hits[0]
			if h.Count != 2 || h.Damage != 250 {
				t.Errorf("bucket count %d damage %v", h.Count, h.Damage)
			}
			if !approx(h.Total, tt.total) || h.Crit != tt.crit {
				t.Errorf("total %v crit %v, want %v %v", h.Total, h.Crit, tt.total, tt.crit)
			}
			if !approx(e.HP, 1e6-tt.total) {
				t.Errorf("enemy hp = %v", e.HP)
			}

			nums := s.world.DamageNumbers.Values()
			if len(nums) != 1 {
				t.Fatalf("damage numbers = %d, want 1", len(nums))
			}
			if nums[0].Crit != tt.crit {
				t.Errorf("damage number crit = %v", nums[0].Crit)
			}
			if s.world.Bullets.Len() != 0 {
				t.Errorf("bullets left = %d", s.world.Bullets.Len())
			}
		})
	}
}

func TestBulletsHitFirstEnemyThenBoss(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	e := s.addEnemy(100, 300, 1e6, defs.EnemySmall)
	boss := s.bosses.Spawn()
	boss.Position = component.Position{X: 400, Y: 300}
	boss.ProtectionTimer = 0

	s.addPlayerBullet(100, 300, 100, false)
	s.addPlayerBullet(400, 300, 100, false)
	s.addPlayerBullet(400, 300, 100, true)

	hits := s.combat.ResolvePlayerBullets()
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	if e.HP != 1e6-100 {
		t.Errorf("enemy hp = %v", e.HP)
	}
	// игрок проходит на 80%, союзник на 20%
	if want := boss.MaxHP - 100; !approx(boss.HP, want) {
		t.Errorf("boss hp = %v, want %v", boss.HP, want)
	}
}

func TestEntryShieldReducesDamage(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	e := s.addEnemy(100, 50, 1000, defs.EnemySmall)
	e.EntryTimer = 100

	if got := s.enemies.TakeDamage(e, 500); !approx(got, 50) {
		t.Errorf("entry damage = %v, want 50", got)
	}

	m := s.addEnemy(200, 400, 1000, defs.EnemyMedium)
	s.bosses.Spawn()
	if got := s.enemies.TakeDamage(m, 100); !approx(got, 70) {
		t.Errorf("medium with boss damage = %v, want 70", got)
	}
}

func TestEnemyBulletsAgainstPlayer(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	p := s.world.Player

	s.world.Bullets.Add(&component.Bullet{Position: p.Position, Kind: component.BulletEnemy, Damage: 80})
	s.combat.ResolveEnemyBullets()
	if p.HP != p.MaxHP-80 {
		t.Errorf("hp = %v, want %v", p.HP, p.MaxHP-80)
	}

	s.world.Bullets.Add(&component.Bullet{Position: p.Position, Kind: component.BulletDebuff})
	s.combat.ResolveEnemyBullets()
	if p.SlowTimer != s.balance.Combat.DebuffSlowMs {
		t.Errorf("slow timer = %v", p.SlowTimer)
	}

	p.SlowTimer = 0
	p.ImmunityTimer = 1000
	s.world.Bullets.Add(&component.Bullet{Position: p.Position, Kind: component.BulletDebuff, Cyan: true})
	s.combat.ResolveEnemyBullets()
	if p.SlowTimer != 0 {
		t.Errorf("immune player was slowed")
	}

	// щит ловит пулю в радиусе 60
	p.Shield = 1000
	s.world.Bullets.Add(&component.Bullet{
		Position: component.Position{X: p.X + 40, Y: p.Y},
		Kind:     component.BulletEnemy,
		Damage:   80,
	})
	s.combat.ResolveEnemyBullets()
	if p.Shield != 920 {
		t.Errorf("shield = %v, want 920", p.Shield)
	}
}

func TestDowngradeBullet(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	p := s.world.Player
	p.Level = 2
	p.DamageMultiplier = 2

	s.world.Bullets.Add(&component.Bullet{Position: p.Position, Kind: component.BulletDowngrade})
	s.combat.ResolveEnemyBullets()
	if p.Level != 0.5 || !approx(p.DamageMultiplier, 1.4) {
		t.Errorf("level %v multiplier %v", p.Level, p.DamageMultiplier)
	}
	if s.world.Session.Shake == 0 {
		t.Errorf("downgrade hit should shake the screen")
	}

	p.WeaponTier = 1
	s.world.Bullets.Add(&component.Bullet{Position: p.Position, Kind: component.BulletDowngrade})
	s.combat.ResolveEnemyBullets()
	if p.WeaponTier != 0 || p.Level != 2 || p.DamageMultiplier != 1 {
		t.Errorf("tier %d level %v multiplier %v", p.WeaponTier, p.Level, p.DamageMultiplier)
	}
}

func TestContactAndEscape(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	p := s.world.Player
	s.world.Session.Score = 30

	rammer := s.addEnemy(p.X, p.Y, 500, defs.EnemyMedium)
	escaped := s.addEnemy(100, 970, 500, defs.EnemySmall)

	s.combat.ResolveContacts()
	if rammer.Alive() || escaped.Alive() {
		t.Fatalf("both enemies should be dead")
	}
	if want := p.MaxHP - 150 - 70; p.HP != want {
		t.Errorf("hp = %v, want %v", p.HP, want)
	}
	if s.world.Session.Score != 0 {
		t.Errorf("score = %d, escape penalty should clamp at 0", s.world.Session.Score)
	}
	if s.world.Enemies.Len() != 0 {
		t.Errorf("enemies left = %d", s.world.Enemies.Len())
	}

	s.reward.Update()
	if s.world.Session.Score != 0 || s.world.PowerUps.Len() != 0 {
		t.Errorf("contact kills must not reward")
	}
}

func TestDeadEnemyIsNotHitTwice(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	e := s.addEnemy(100, 300, 0, defs.EnemySmall)
	e.HP = 0
	s.addPlayerBullet(100, 300, 100, false)

	if hits := s.combat.ResolvePlayerBullets(); len(hits) != 0 {
		t.Errorf("dead enemy absorbed a bullet")
	}
	var left int
	s.world.Bullets.Each(func(types.EntityID, *component.Bullet) { left++ })
	if left != 1 {
		t.Errorf("bullet should keep flying, left %d", left)
	}
}
