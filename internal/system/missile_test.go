package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/types"
	"go-space-shooter/internal/utils"
)

func TestVolleySize(t *testing.T) {
	for _, tt := range []struct {
		level float64
		want  int
	}{
		{0, 1},
		{1, 2},
		{2, 3},
	} {
		s := newTestSim(t, utils.NewFixedRand(0.5))
		s.world.Player.Level = tt.level

		if !s.missiles.FireVolley() {
			t.Fatalf("level %v: volley not fired", tt.level)
		}
		if n := s.world.Missiles.Len(); n != tt.want {
			t.Errorf("level %v: missiles = %d, want %d", tt.level, n, tt.want)
		}
		if s.world.Session.BoomCharged {
			t.Errorf("charge should be spent")
		}
		if s.missiles.FireVolley() {
			t.Errorf("second volley without charge")
		}
	}
}

func TestVolleySpreadsTargets(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.1, 0.9, 0.5))
	s.world.Player.Level = 2
	for i := 0; i < 3; i++ {
		s.addEnemy(100+float64(i)*100, 300, 1000, defs.EnemySmall)
	}

	s.missiles.FireVolley()
	seen := make(map[types.EntityID]bool)
	for _, m := range s.world.Missiles.Values() {
		if m.Target != component.TargetEnemy {
			t.Fatalf("missile without enemy target")
		}
		if seen[m.TargetID] {
			t.Errorf("target %v picked twice", m.TargetID)
		}
		seen[m.TargetID] = true
	}
	if len(seen) != 3 {
		t.Errorf("distinct targets = %d, want 3", len(seen))
	}
}

func TestMissileBounceCap(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.world.Session.MaxMissileBounces = 2
	s.addEnemy(100, 500, 1e9, defs.EnemySmall)
	s.addEnemy(100, 460, 1e9, defs.EnemySmall)
	s.addEnemy(100, 420, 1e9, defs.EnemySmall)

	m := component.NewMissile(100, 540, perMs(s.balance.Missile.Speed), false)
	s.missiles.findTarget(m)
	s.world.Missiles.Add(m)

	for i := 0; i < 20; i++ {
		s.missiles.Update(16)
		if m.Bounces > 2 {
			t.Fatalf("bounces = %d exceed max", m.Bounces)
		}
	}
	if m.Bounces != 2 {
		t.Errorf("bounces = %d, want 2", m.Bounces)
	}
	if len(m.HitEnemies) != 2 {
		t.Errorf("hit enemies = %d, want 2", len(m.HitEnemies))
	}

	s.cleanup.Update()
	if s.world.Missiles.Len() != 0 {
		t.Errorf("spent missile should be cleaned up")
	}
}

func TestMissileBossHitEndsFlight(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.world.Session.MaxMissileBounces = 4
	b := s.bosses.Spawn()
	b.Position = component.Position{X: 270, Y: 300}

	m := component.NewMissile(270, 320, perMs(s.balance.Missile.Speed), false)
	m.Target = component.TargetBoss
	s.world.Missiles.Add(m)

	s.missiles.Update(16)
	if !m.HitBoss || m.Bounces != 4 {
		t.Fatalf("hit boss %v bounces %d", m.HitBoss, m.Bounces)
	}
	// ракета игнорирует защиту появления, сопротивление игрока 0.8
	want := b.MaxHP - s.missiles.Damage()*5*0.8
	if !approx(b.HP, want) {
		t.Errorf("boss hp = %v, want %v", b.HP, want)
	}
}

func TestMissileKillQueuesReward(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	e := s.addEnemy(100, 500, 10, defs.EnemySmall)
	e.EntryTimer = 0
	e.Y = 50

	m := component.NewMissile(100, 60, perMs(s.balance.Missile.Speed), false)
	s.missiles.findTarget(m)
	s.world.Missiles.Add(m)

	s.missiles.Update(16)
	if e.Alive() {
		t.Fatalf("missile should ignore the entry shield")
	}
	if len(s.world.Kills) != 1 {
		t.Fatalf("kills = %d, want 1", len(s.world.Kills))
	}
	s.reward.Update()
	if s.world.Session.Score != 50 {
		t.Errorf("score = %d", s.world.Session.Score)
	}
}

func TestScheduledVolleys(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	sess := s.world.Session
	sess.BoomCharged = false
	s.missiles.ScheduleVolleys(5, 60)

	s.missiles.UpdateBooms(16)
	if s.world.Missiles.Len() != 1 {
		t.Fatalf("first volley should fire on the next tick, missiles = %d", s.world.Missiles.Len())
	}
	for i := 0; i < 20; i++ {
		s.missiles.UpdateBooms(16)
	}
	if s.world.Missiles.Len() != 5 {
		t.Errorf("missiles = %d, want 5", s.world.Missiles.Len())
	}
	if len(sess.PendingBooms) != 0 {
		t.Errorf("pending = %v", sess.PendingBooms)
	}
}
