package app

import (
	"testing"

	"go-space-shooter/internal/storage"
	"go-space-shooter/internal/utils"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return NewGame(Options{Seed: 7, Store: storage.NewMemory()})
}

func TestTickRequiresStartedSession(t *testing.T) {
	g := newTestGame(t)
	g.Tick(16)
	if g.World().Session.Time != 0 {
		t.Fatalf("simulation ran before start")
	}
	if g.TogglePause() {
		t.Errorf("pause before start")
	}

	g.NewSession()
	g.Tick(16)
	if g.World().Session.Time != 16 {
		t.Errorf("time = %v, want 16", g.World().Session.Time)
	}

	if !g.TogglePause() {
		t.Fatalf("pause did not engage")
	}
	g.Tick(16)
	if g.World().Session.Time != 16 {
		t.Errorf("simulation ran while paused")
	}
	g.TogglePause()
	g.Tick(16)
	if g.World().Session.Time != 32 {
		t.Errorf("time after resume = %v", g.World().Session.Time)
	}
}

func TestTickClampsLongFrames(t *testing.T) {
	g := newTestGame(t)
	g.NewSession()
	g.Tick(5000)
	if got := g.World().Session.Time; got != 100 {
		t.Errorf("time = %v, want clamped 100", got)
	}
	g.Tick(-5)
	if got := g.World().Session.Time; got != 100 {
		t.Errorf("negative dt advanced time to %v", got)
	}
}

func TestAutosave(t *testing.T) {
	g := newTestGame(t)
	g.NewSession()
	if g.HasSave() {
		t.Fatalf("new session should clear the save")
	}
	for i := 0; i < 25; i++ {
		g.Tick(100)
	}
	if !g.HasSave() {
		t.Fatalf("no autosave after 2.5s")
	}
	if _, err := g.Store().LoadSession(); err != nil {
		t.Errorf("autosave unreadable: %v", err)
	}
}

func TestContinueRestoresProgress(t *testing.T) {
	store := storage.NewMemory()
	g := NewGame(Options{Rand: utils.NewFixedRand(0.99), Store: store})
	g.NewSession()

	w := g.World()
	w.Session.Score = 4200
	w.Session.BossCount = 1
	w.Session.NextBossScore = 12500
	w.Session.AccumulatedBossHP = 25000
	w.Player.WeaponTier = 1
	w.Player.Level = 1.5
	w.Player.MaxHP = 4750
	w.Player.HP = 900
	w.Player.DamageMultiplier = 1.25
	w.FillAllies(3, 0.6)
	g.Save()

	other := NewGame(Options{Rand: utils.NewFixedRand(0.99), Store: store})
	if !other.Continue() {
		t.Fatalf("Continue failed")
	}
	ow := other.World()
	if !ow.Session.Started || ow.Session.Score != 4200 || ow.Session.BossCount != 1 {
		t.Errorf("session = %+v", ow.Session)
	}
	if ow.Player.WeaponTier != 1 || ow.Player.Level != 1.5 || ow.Player.HP != 900 || ow.Player.MaxHP != 4750 {
		t.Errorf("player = %+v", ow.Player)
	}
	if len(ow.Allies) != 3 {
		t.Errorf("allies = %d, want 3", len(ow.Allies))
	}
	if ow.Boss != nil || ow.Enemies.Len() != 0 {
		t.Errorf("field should start empty")
	}
}

func TestContinueWithoutSave(t *testing.T) {
	g := newTestGame(t)
	if g.Continue() {
		t.Errorf("Continue with empty store")
	}
	if g.World().Session.Started {
		t.Errorf("session started without save")
	}
}

func TestGameOverClearsSaveAndRecordsBest(t *testing.T) {
	g := newTestGame(t)
	g.NewSession()
	w := g.World()
	w.Session.Score = 777
	g.Save()

	w.Player.HP = 1
	g.DefenseSystem.TakeDamage(500)
	if !w.Session.GameOver {
		t.Fatalf("player should be dead")
	}
	if g.HasSave() {
		t.Errorf("save survived game over")
	}
	if best := g.Store().LoadSettings().BestScore; best != 777 {
		t.Errorf("best score = %d", best)
	}

	time := w.Session.Time
	g.Tick(16)
	if w.Session.Time != time {
		t.Errorf("simulation ran after game over")
	}
	if g.TogglePause() || g.FireBoom() {
		t.Errorf("controls active after game over")
	}
}

func TestFireBoomSpendsCharge(t *testing.T) {
	g := newTestGame(t)
	g.NewSession()
	if !g.FireBoom() {
		t.Fatalf("fresh session should have a charged boom")
	}
	if g.FireBoom() {
		t.Errorf("boom fired twice")
	}
	if g.World().Missiles.Len() == 0 {
		t.Errorf("no missiles launched")
	}
}

func TestHUDAndPerks(t *testing.T) {
	g := newTestGame(t)
	g.NewSession()
	h := g.HUD()
	if h.MaxHP != 1000 || h.NextBossScore != 2000 {
		t.Errorf("hud = %+v", h)
	}
	if len(g.Perks()) != 0 {
		t.Errorf("perks on a fresh game")
	}
	if g.Stats().Rays != 1 {
		t.Errorf("rays = %d", g.Stats().Rays)
	}
}
