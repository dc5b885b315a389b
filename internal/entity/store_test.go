package entity

import (
	"testing"

	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/types"
)

type item struct{ n int }

func TestStoreRemoveIsDeferredUntilSweep(t *testing.T) {
	s := NewStore[item]()
	a := s.Add(&item{1})
	b := s.Add(&item{2})

	if !s.Remove(a) {
		t.Fatal("expected first remove to succeed")
	}
	if s.Remove(a) {
		t.Fatal("second remove of the same id must be a no-op")
	}
	if _, ok := s.Get(a); ok {
		t.Fatal("removed entity must not be visible")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 live entity, got %d", s.Len())
	}

	visited := 0
	s.Each(func(id types.EntityID, v *item) {
		visited++
		if id != b {
			t.Errorf("unexpected id %v in iteration", id)
		}
	})
	if visited != 1 {
		t.Fatalf("expected 1 visited entity, got %d", visited)
	}

	if freed := s.Sweep(); freed != 1 {
		t.Fatalf("expected sweep to free 1 slot, got %d", freed)
	}
}

func TestStoreStaleIDAfterReuse(t *testing.T) {
	s := NewStore[item]()
	old := s.Add(&item{1})
	s.Remove(old)
	s.Sweep()

	fresh := s.Add(&item{2})
	if fresh.Index() != old.Index() {
		t.Fatalf("expected slot reuse, got index %d vs %d", fresh.Index(), old.Index())
	}
	if _, ok := s.Get(old); ok {
		t.Fatal("stale id must not resolve to the new occupant")
	}
	if v, ok := s.Get(fresh); !ok || v.n != 2 {
		t.Fatal("fresh id must resolve")
	}
}

func TestStoreAddDuringIterationIsNotVisited(t *testing.T) {
	s := NewStore[item]()
	gone := s.Add(&item{0})
	s.Add(&item{1})
	s.Remove(gone)
	s.Sweep()

	visited := 0
	s.Each(func(_ types.EntityID, v *item) {
		visited++
		s.Add(&item{v.n + 10})
	})
	if visited != 1 {
		t.Fatalf("expected only pre-existing entity to be visited, got %d", visited)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 live entities, got %d", s.Len())
	}
}

func TestStoreRemoveIf(t *testing.T) {
	s := NewStore[item]()
	for i := 0; i < 6; i++ {
		s.Add(&item{i})
	}
	removed := s.RemoveIf(func(v *item) bool { return v.n%2 == 0 })
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	for _, v := range s.Values() {
		if v.n%2 == 0 {
			t.Errorf("even item %d survived", v.n)
		}
	}
}

func TestWorldAllyCap(t *testing.T) {
	w := NewWorld(defs.DefaultBalance())
	for i := 0; i < 10; i++ {
		w.AddAlly(0.6)
	}
	if len(w.Allies) != config.MaxAllies {
		t.Fatalf("expected %d allies, got %d", config.MaxAllies, len(w.Allies))
	}
	if w.Allies[0].MaxHP != w.Player.MaxHP*0.6 {
		t.Errorf("ally max hp should be 60%% of player, got %v", w.Allies[0].MaxHP)
	}

	last := w.Allies[len(w.Allies)-1]
	if got := w.PopAlly(); got != last {
		t.Fatal("PopAlly must return the most recently added ally")
	}
}

func TestWorldResetClearsField(t *testing.T) {
	b := defs.DefaultBalance()
	w := NewWorld(b)
	w.Enemies.Add(nil)
	w.Session.Score = 500
	w.FillAllies(3, 0.6)

	w.Reset(b)
	if w.Enemies.Len() != 0 || len(w.Allies) != 0 || w.Session.Score != 0 {
		t.Fatal("reset must clear entities, allies and score")
	}
	if w.Session.NextBossScore != b.Boss.FirstBossScore {
		t.Errorf("expected first boss at %d, got %d", b.Boss.FirstBossScore, w.Session.NextBossScore)
	}
}
