package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/utils"
)

func TestPlayerMovesAndTilts(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player
	p.JammedTimer = 1000
	s.player.SetTarget(config.ScreenWidth+500, p.Y, false)

	s.player.Update(16.6)
	if p.X <= config.ScreenWidth/2 {
		t.Errorf("player did not move: %v", p.X)
	}
	if p.Tilt != s.balance.Player.MaxTilt {
		t.Errorf("tilt = %v, want clamped %v", p.Tilt, s.balance.Player.MaxTilt)
	}
	for i := 0; i < 200; i++ {
		s.player.Update(16.6)
	}
	if p.X != config.ScreenWidth-p.Width/2 {
		t.Errorf("player left the field: %v", p.X)
	}
	if s.world.Bullets.Len() != 0 {
		t.Errorf("jammed player fired")
	}
}

func TestPlayerFiresOncePerInterval(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.player.Update(100)
	if s.world.Bullets.Len() != 0 {
		t.Fatalf("fired before interval")
	}
	s.player.Update(1000)
	if n := s.world.Bullets.Len(); n != 1 {
		t.Errorf("bullets = %d, want a single volley", n)
	}
	if s.world.Player.FireTimer != 0 {
		t.Errorf("fire timer = %v", s.world.Player.FireTimer)
	}
}

func TestFormationOffset(t *testing.T) {
	tests := []struct {
		index, count int
		want         component.Position
	}{
		{0, 3, component.Position{X: -50, Y: -10}},
		{2, 3, component.Position{X: 0, Y: 35}},
		{0, 1, component.Position{X: -45, Y: -5}},
		{1, 2, component.Position{X: 45, Y: -5}},
		{2, 4, component.Position{X: -60, Y: 20}},
		{5, 6, component.Position{X: 75, Y: 45}},
	}
	for _, tt := range tests {
		if got := FormationOffset(tt.index, tt.count); got != tt.want {
			t.Errorf("FormationOffset(%d, %d) = %v, want %v", tt.index, tt.count, got, tt.want)
		}
	}
}

func TestAllyFire(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.world.AddAlly(0.6)

	s.allies.Update(321)
	bullets := s.world.Bullets.Values()
	if len(bullets) != 1 {
		t.Fatalf("ally bullets = %d, want 1", len(bullets))
	}
	if !bullets[0].Ally || !approx(bullets[0].Damage, 60*0.2) {
		t.Errorf("ally bullet %+v", bullets[0])
	}
	if a := s.world.Allies[0]; !approx(a.MaxHP, s.world.Player.MaxHP*0.6) {
		t.Errorf("ally max hp = %v", a.MaxHP)
	}
}

func TestEnemySnapshotAndFireInterval(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.9))
	if hp := s.enemies.SnapshotHP(defs.EnemyMedium, true); !approx(hp, 800*5) {
		t.Errorf("tank medium hp = %v", hp)
	}

	id := s.enemies.Spawn(100, -50, defs.EnemyMedium, false)
	e, _ := s.world.Enemies.Get(id)
	if e.Tank || e.VX <= 0 || e.BulletCount != 1 {
		t.Errorf("spawned %+v", e)
	}
	if got := s.enemies.FireInterval(e); got != 4000 {
		t.Errorf("fire interval = %v, want 4000", got)
	}
	e.BulletCount = 3
	if got := s.enemies.FireInterval(e); !approx(got, 7200) {
		t.Errorf("fan fire interval = %v, want 7200", got)
	}

	// рывок при входе
	s.enemies.Update(400)
	if want := -50 + (120.0-(-50))*0.5; !approx(e.Y, want) {
		t.Errorf("dash y = %v, want %v", e.Y, want)
	}
}

func TestCleanupRemovesExpired(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	w := s.world
	w.Bullets.Add(&component.Bullet{Position: component.Position{X: 100, Y: -60}})
	w.Bullets.Add(&component.Bullet{Position: component.Position{X: 100, Y: 100}})
	w.Explosions.Add(&component.Explosion{Life: 0})
	w.DamageNumbers.Add(&component.DamageNumber{Life: 10})
	w.PowerUps.Add(&component.PowerUp{Position: component.Position{Y: config.ScreenHeight}})
	dead := s.addEnemy(100, 100, 10, defs.EnemySmall)
	dead.HP = 0

	s.cleanup.Update()
	if w.Bullets.Len() != 1 || w.Explosions.Len() != 0 || w.DamageNumbers.Len() != 1 {
		t.Errorf("bullets %d explosions %d numbers %d", w.Bullets.Len(), w.Explosions.Len(), w.DamageNumbers.Len())
	}
	if w.PowerUps.Len() != 0 || w.Enemies.Len() != 0 {
		t.Errorf("powerups %d enemies %d", w.PowerUps.Len(), w.Enemies.Len())
	}
}

func TestMovementFallsPowerUps(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	id := s.world.PowerUps.Add(&component.PowerUp{})
	NewMovementSystem(s.world, s.balance).Update(16.6)
	pu, _ := s.world.PowerUps.Get(id)
	if !approx(pu.Y, 2.2) {
		t.Errorf("powerup fell %v, want 2.2", pu.Y)
	}
}
