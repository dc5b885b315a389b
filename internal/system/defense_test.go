package system

import (
	"testing"

	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
)

func TestShieldAbsorbsBeforeAlliesAndHull(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.world.AddAlly(0.6)
	s.world.AddAlly(0.6)
	p := s.world.Player
	p.Shield = 500
	allyHP := s.world.Allies[1].HP

	if got := s.defense.TakeDamage(100); got != AbsorbedShield {
		t.Fatalf("absorber = %v, want shield", got)
	}
	if p.Shield != 400 {
		t.Errorf("shield = %v, want 400", p.Shield)
	}
	if p.HP != p.MaxHP || s.world.Allies[1].HP != allyHP {
		t.Errorf("hull or ally took damage: hp %v ally %v", p.HP, s.world.Allies[1].HP)
	}
}

func TestShieldOverflowGoesToHullOnly(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.world.AddAlly(0.6)
	p := s.world.Player
	p.Shield = 30
	allyHP := s.world.Allies[0].HP

	s.defense.TakeDamage(100)
	if p.Shield != 0 {
		t.Errorf("shield = %v, want 0", p.Shield)
	}
	if p.HP != p.MaxHP-70 {
		t.Errorf("hp = %v, want %v", p.HP, p.MaxHP-70)
	}
	if s.world.Allies[0].HP != allyHP {
		t.Errorf("ally should be untouched, hp %v", s.world.Allies[0].HP)
	}
}

func TestLastAllySoaksHit(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	s.world.AddAlly(0.6)
	s.world.AddAlly(0.6)
	first, last := s.world.Allies[0], s.world.Allies[1]
	firstHP, lastHP := first.HP, last.HP

	if got := s.defense.TakeDamage(100); got != AbsorbedAlly {
		t.Fatalf("absorber = %v, want ally", got)
	}
	if last.HP != lastHP-100 || first.HP != firstHP {
		t.Errorf("ally hp: first %v last %v", first.HP, last.HP)
	}
	if p := s.world.Player; p.HP != p.MaxHP {
		t.Errorf("player hp changed: %v", p.HP)
	}

	last.HP = 50
	s.defense.TakeDamage(100)
	if len(s.world.Allies) != 1 || s.world.Allies[0] != first {
		t.Fatalf("dead ally should be removed, allies %d", len(s.world.Allies))
	}
	if s.world.Explosions.Len() != 1 {
		t.Errorf("explosions = %d, want 1", s.world.Explosions.Len())
	}
	if s.events.Count(event.AllyLost) != 1 {
		t.Errorf("AllyLost events = %d", s.events.Count(event.AllyLost))
	}
}

func TestHullDamageAndGameOver(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player

	if got := s.defense.TakeDamage(100); got != AbsorbedHull {
		t.Fatalf("absorber = %v, want hull", got)
	}
	if p.HP != 900 {
		t.Errorf("hp = %v, want 900", p.HP)
	}

	p.HP = 50
	s.defense.TakeDamage(100)
	if p.HP != 0 || !s.world.Session.GameOver {
		t.Fatalf("expected game over, hp %v", p.HP)
	}
	if got := s.defense.TakeDamage(100); got != AbsorbedNone {
		t.Errorf("damage after game over absorbed by %v", got)
	}
	if s.events.Count(event.GameOver) != 1 {
		t.Errorf("GameOver events = %d, want 1", s.events.Count(event.GameOver))
	}
}

func TestDamageReductions(t *testing.T) {
	s := newTestSim(t, utils.NewFixedRand(0.5))
	p := s.world.Player
	p.DamageReductionTimer = 1000
	p.PermDamageReduction = 0.5 // ограничено 0.4
	s.world.FillAllies(3, 0.6)

	want := 0.7 * 0.9 * 0.6
	if got := s.defense.ReductionMultiplier(); !approx(got, want) {
		t.Errorf("reduction = %v, want %v", got, want)
	}

	s.world.FillAllies(6, 0.6)
	want = 0.7 * 0.8 * 0.6
	if got := s.defense.ReductionMultiplier(); !approx(got, want) {
		t.Errorf("reduction with 6 allies = %v, want %v", got, want)
	}

	s.world.Session.Level = 2
	if got := s.defense.ScaledDamage(100); !approx(got, 100*1.44*want) {
		t.Errorf("scaled damage = %v", got)
	}
}
