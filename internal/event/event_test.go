package event

import (
	"testing"

	"go-space-shooter/internal/defs"
)

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	first := &Recorder{}
	second := &Recorder{}
	d.Subscribe(LevelUp, first)
	d.Subscribe(LevelUp, second)

	d.Emit(LevelUp, 2)
	if first.Count(LevelUp) != 1 || second.Count(LevelUp) != 1 {
		t.Fatal("both listeners should receive the event")
	}

	d.Unsubscribe(LevelUp, first)
	d.Emit(LevelUp, 3)
	if first.Count(LevelUp) != 1 {
		t.Errorf("unsubscribed listener got %d events", first.Count(LevelUp))
	}
	if second.Count(LevelUp) != 2 {
		t.Errorf("remaining listener got %d events", second.Count(LevelUp))
	}
}

func TestNilDispatcherIgnoresEvents(t *testing.T) {
	var d *Dispatcher
	d.Emit(SoundRequested, defs.SoundShoot)
}

func TestRecorderSounds(t *testing.T) {
	d := NewDispatcher()
	r := &Recorder{}
	d.SubscribeAll(r, SoundRequested, GameOver)
	d.Emit(SoundRequested, defs.SoundShoot)
	d.Emit(GameOver, GameOverData{Score: 10, Level: 1})
	d.Emit(SoundRequested, defs.SoundExplosion)

	got := r.Sounds()
	if len(got) != 2 || got[0] != defs.SoundShoot || got[1] != defs.SoundExplosion {
		t.Fatalf("unexpected sounds %v", got)
	}
}
