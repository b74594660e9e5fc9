package game

import (
	"errors"
	"testing"
)

func TestStoreInsertGetRoundTrip(t *testing.T) {
	s := NewStore()
	a := s.Insert(NewEntity(Stone{}, Vec2{X: 1, Y: 2}))
	b := s.Insert(NewEntity(Tree{}, Vec2{X: 3, Y: 4}))
	if a == b {
		t.Fatalf("expected distinct ids, got %s twice", a)
	}

	e, err := s.Get(b)
	if err != nil {
		t.Fatalf("get %s: %v", b, err)
	}
	if _, ok := e.Kind.(Tree); !ok || e.Position != (Vec2{X: 3, Y: 4}) {
		t.Fatalf("unexpected entity %+v", *e)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 live entities, got %d", s.Len())
	}
}

func TestStoreGetUnknownReturnsTypedError(t *testing.T) {
	s := NewStore()
	s.Insert(NewEntity(Stone{}, Vec2{}))

	for _, id := range []EntityID{NilEntityID, packEntityID(1, 7), packEntityID(9, 0)} {
		_, err := s.Get(id)
		if !errors.Is(err, ErrEntityNotFound) {
			t.Fatalf("id %s: expected ErrEntityNotFound, got %v", id, err)
		}
		var entityErr *EntityError
		if !errors.As(err, &entityErr) || entityErr.ID != id {
			t.Fatalf("id %s: expected *EntityError carrying the id, got %v", id, err)
		}
	}
}

func TestStoreRemovedIDIsNeverReused(t *testing.T) {
	s := NewStore()
	old := s.Insert(NewEntity(Stone{}, Vec2{}))
	if err := s.Remove(old); err != nil {
		t.Fatalf("remove: %v", err)
	}
	fresh := s.Insert(NewEntity(Bush{}, Vec2{}))
	if fresh == old {
		t.Fatalf("expected recycled slot to get a new id, got %s again", fresh)
	}
	if fresh.index() != old.index() {
		t.Fatalf("expected slot %d to be recycled, got %d", old.index(), fresh.index())
	}
	if _, err := s.Get(old); !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected stale id to stay unresolvable, got %v", err)
	}
	if err := s.Remove(old); !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("expected double remove to fail, got %v", err)
	}
}

func TestStoreIDsStableAcrossCalls(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Insert(NewEntity(Grass{}, Vec2{X: float32(i)}))
	}
	first := s.IDs()
	second := s.IDs()
	if len(first) != 5 || len(second) != 5 {
		t.Fatalf("expected 5 ids, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order changed at %d: %s != %s", i, first[i], second[i])
		}
	}
}
