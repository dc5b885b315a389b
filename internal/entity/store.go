package entity

import "go-space-shooter/internal/types"

type slot[T any] struct {
	gen     uint32
	alive   bool
	pending bool
	val     *T
}

// Store - слот-хранилище сущностей одного типа.
// Remove только помечает слот, структура меняется лишь в Sweep,
// поэтому удалять можно прямо во время обхода.
type Store[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
	iter  int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Add кладёт сущность в свободный слот и возвращает её ID.
func (s *Store[T]) Add(v *T) types.EntityID {
	var idx uint32
	// Во время обхода слоты не переиспользуются, новые сущности идут в конец
	if n := len(s.free); n > 0 && s.iter == 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot[T]{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.alive = true
	sl.pending = false
	sl.val = v
	s.live++
	return types.MakeEntityID(idx, sl.gen)
}

func (s *Store[T]) lookup(id types.EntityID) *slot[T] {
	idx := id.Index()
	if int(idx) >= len(s.slots) {
		return nil
	}
	sl := &s.slots[idx]
	if !sl.alive || sl.gen != id.Generation() {
		return nil
	}
	return sl
}

// Get возвращает сущность, если она жива и не помечена на удаление.
func (s *Store[T]) Get(id types.EntityID) (*T, bool) {
	sl := s.lookup(id)
	if sl == nil || sl.pending {
		return nil, false
	}
	return sl.val, true
}

// Remove помечает сущность на удаление. Повторный вызов ничего не делает.
func (s *Store[T]) Remove(id types.EntityID) bool {
	sl := s.lookup(id)
	if sl == nil || sl.pending {
		return false
	}
	sl.pending = true
	s.live--
	return true
}

// Each обходит живые сущности. Добавленные во время обхода не посещаются.
func (s *Store[T]) Each(fn func(id types.EntityID, v *T)) {
	s.iter++
	defer func() { s.iter-- }()
	n := len(s.slots)
	for i := 0; i < n; i++ {
		sl := &s.slots[i]
		if !sl.alive || sl.pending {
			continue
		}
		fn(types.MakeEntityID(uint32(i), sl.gen), sl.val)
	}
}

// RemoveIf помечает все сущности, для которых pred вернул true.
func (s *Store[T]) RemoveIf(pred func(v *T) bool) int {
	removed := 0
	s.Each(func(id types.EntityID, v *T) {
		if pred(v) && s.Remove(id) {
			removed++
		}
	})
	return removed
}

// Len возвращает число живых сущностей без помеченных.
func (s *Store[T]) Len() int {
	return s.live
}

// Sweep освобождает помеченные слоты.
func (s *Store[T]) Sweep() int {
	freed := 0
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive && sl.pending {
			sl.alive = false
			sl.pending = false
			sl.val = nil
			s.free = append(s.free, uint32(i))
			freed++
		}
	}
	return freed
}

// Clear удаляет всё сразу, поколения сохраняются.
func (s *Store[T]) Clear() {
	s.free = s.free[:0]
	for i := range s.slots {
		sl := &s.slots[i]
		sl.alive = false
		sl.pending = false
		sl.val = nil
	}
	for i := len(s.slots) - 1; i >= 0; i-- {
		s.free = append(s.free, uint32(i))
	}
	s.live = 0
}

// Values возвращает срез живых сущностей в порядке слотов.
func (s *Store[T]) Values() []*T {
	out := make([]*T, 0, s.live)
	s.Each(func(_ types.EntityID, v *T) {
		out = append(out, v)
	})
	return out
}
