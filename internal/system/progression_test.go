package system

import (
	"math"
	"testing"

	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
)

func TestLevelUpOnce(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player
	sess := s.world.Session
	sess.Score = 6000

	s.progress.Update(16)
	if sess.Level != 2 || sess.Difficulty != 2 {
		t.Fatalf("level %d difficulty %v", sess.Level, sess.Difficulty)
	}
	if p.MaxHP != 1400 || p.HP != 1400 {
		t.Errorf("hp %v/%v, want 1400/1400", p.HP, p.MaxHP)
	}

	s.progress.Update(16)
	if n := s.events.Count(event.LevelUp); n != 1 {
		t.Errorf("LevelUp events = %d, want 1", n)
	}
}

func TestBoomRecharge(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	sess := s.world.Session
	sess.BoomCharged = false

	s.progress.Update(6499)
	if sess.BoomCharged {
		t.Fatalf("charged too early")
	}
	if f := sess.BoomFraction(); f <= 0.99 || f >= 1 {
		t.Errorf("boom fraction = %v", f)
	}
	s.progress.Update(1)
	if !sess.BoomCharged {
		t.Errorf("boom should be charged")
	}
}

func TestBackgroundWraps(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	sess := s.world.Session
	sess.BackgroundY = backgroundWrap - 0.5

	s.progress.Update(16.6)
	if sess.BackgroundY >= backgroundWrap/2 {
		t.Errorf("background offset not wrapped: %v", sess.BackgroundY)
	}
}

func TestEnforceInvariants(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player

	p.HP = math.NaN()
	p.Shield = -5
	EnforceInvariants(s.world)
	if p.HP != 0 || p.Shield != 0 {
		t.Errorf("hp %v shield %v", p.HP, p.Shield)
	}

	p.HP = p.MaxHP + 100
	s.world.AddAlly(0.6)
	a := s.world.Allies[0]
	a.HP = a.MaxHP * 2
	EnforceInvariants(s.world)
	if p.HP != p.MaxHP || a.HP != a.MaxHP {
		t.Errorf("hp not clamped: player %v ally %v", p.HP, a.HP)
	}
}

func TestStatusTimersTick(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player
	p.SlowTimer = 100
	p.HasteTimer = 10

	NewStatusEffectSystem(s.world).Update(50)
	if p.SlowTimer != 50 || p.HasteTimer > 0 {
		t.Errorf("slow %v haste %v", p.SlowTimer, p.HasteTimer)
	}
}
