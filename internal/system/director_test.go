package system

import (
	"testing"

	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
)

func TestSpawnPacing(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	sess := s.world.Session

	tests := []struct {
		score    int
		interval float64
		cap      int
	}{
		{0, 2500, 3},
		{1000, 1750, 4},
		{3200, 1640, 3},
		{40000, 500, 5},
	}
	for _, tt := range tests {
		sess.Score = tt.score
		if got := s.director.SpawnInterval(); !approx(got, tt.interval) {
			t.Errorf("score %d: interval = %v, want %v", tt.score, got, tt.interval)
		}
		if got := s.director.MobCap(); got != tt.cap {
			t.Errorf("score %d: cap = %d, want %d", tt.score, got, tt.cap)
		}
	}

	sess.BossFight = true
	if got := s.director.MobCap(); got != 2 {
		t.Errorf("boss fight cap = %d, want 2", got)
	}
}

func TestDirectorSpawnsSmallEarly(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))

	s.director.Update(2600)
	enemies := s.world.Enemies.Values()
	if len(enemies) != 1 {
		t.Fatalf("enemies = %d, want 1", len(enemies))
	}
	e := enemies[0]
	if e.Type != defs.EnemySmall || e.X != 270 || e.Y != -50 {
		t.Errorf("spawned %s at %v,%v", e.Type, e.X, e.Y)
	}
	if s.world.Session.SpawnTimer != 0 {
		t.Errorf("spawn timer not reset")
	}
}

func TestDirectorRespectsMobCap(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	for i := 0; i < 3; i++ {
		s.addEnemy(100, 300, 100, defs.EnemySmall)
	}
	s.director.Update(2600)
	if n := s.world.Enemies.Len(); n != 3 {
		t.Errorf("enemies = %d, cap exceeded", n)
	}
}

func TestBossFightStarts(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player
	sess := s.world.Session
	sess.Score = 2000

	s.director.Update(1)
	if !sess.BossFight || s.world.Boss == nil {
		t.Fatalf("boss fight did not start")
	}
	if len(sess.PendingBooms) != 5 {
		t.Errorf("pending volleys = %d, want 5", len(sess.PendingBooms))
	}
	if p.Shield != 250 {
		t.Errorf("shield = %v, want 250", p.Shield)
	}
	if len(s.world.Allies) != 2 {
		t.Errorf("allies = %d, want 2", len(s.world.Allies))
	}
	if p.ImmunityTimer != 4000 || p.HasteTimer != 4000 {
		t.Errorf("immunity %v haste %v", p.ImmunityTimer, p.HasteTimer)
	}
	escort := s.world.Enemies.Values()
	if len(escort) != 4 {
		t.Fatalf("escort = %d, want 4", len(escort))
	}
	for _, e := range escort {
		if e.Type != defs.EnemyMedium || e.Y != -125 {
			t.Errorf("escort %s at y %v", e.Type, e.Y)
		}
	}

	s.director.Update(1)
	if n := s.events.Count(event.BossSpawned); n != 1 {
		t.Errorf("BossSpawned events = %d, want 1", n)
	}
}
