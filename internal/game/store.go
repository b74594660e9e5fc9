package game

import "fmt"

// EntityID is an opaque handle into a Store.
//
// Layout (high to low bits):
//
//	[ Generation (32) | Index (32) ]
//
// The generation of a slot is bumped every time the slot is vacated, so a
// handle to a removed entity never resolves to whatever is stored in the
// slot afterwards. Generations start at 1, which keeps the zero value of
// EntityID invalid.
type EntityID uint64

// NilEntityID never resolves.
const NilEntityID EntityID = 0

const (
	idIndexBits = 32
	idIndexMask = (1 << idIndexBits) - 1
)

func packEntityID(gen uint32, index uint32) EntityID {
	return EntityID(uint64(gen)<<idIndexBits | uint64(index))
}

func (id EntityID) index() uint32 {
	return uint32(id & idIndexMask)
}

func (id EntityID) generation() uint32 {
	return uint32(id >> idIndexBits)
}

func (id EntityID) String() string {
	if id == NilEntityID {
		return "<nil>"
	}
	return fmt.Sprintf("#%d.%d", id.index(), id.generation())
}

type storeSlot struct {
	entity Entity
	gen    uint32
	live   bool
}

// Store is an arena of entities addressed by generational handles.
type Store struct {
	slots []storeSlot
	free  []uint32
	live  int
}

func NewStore() *Store {
	return &Store{}
}

// Insert adds e and returns its handle. Vacated slots are recycled under a
// new generation.
func (s *Store) Insert(e Entity) EntityID {
	s.live++
	if n := len(s.free); n > 0 {
		index := s.free[n-1]
		s.free = s.free[:n-1]
		slot := &s.slots[index]
		slot.entity = e
		slot.live = true
		return packEntityID(slot.gen, index)
	}
	index := uint32(len(s.slots))
	s.slots = append(s.slots, storeSlot{entity: e, gen: 1, live: true})
	return packEntityID(1, index)
}

// Get resolves id. The returned pointer aliases the stored entity and stays
// valid until the next Insert.
func (s *Store) Get(id EntityID) (*Entity, error) {
	slot, ok := s.slot(id)
	if !ok {
		return nil, &EntityError{ID: id, Err: ErrEntityNotFound}
	}
	return &slot.entity, nil
}

func (s *Store) Contains(id EntityID) bool {
	_, ok := s.slot(id)
	return ok
}

// Remove deletes the entity behind id. Removing an unknown id is an error.
func (s *Store) Remove(id EntityID) error {
	slot, ok := s.slot(id)
	if !ok {
		return &EntityError{ID: id, Err: ErrEntityNotFound}
	}
	slot.entity = Entity{}
	slot.live = false
	slot.gen++
	if slot.gen == 0 {
		slot.gen = 1
	}
	s.free = append(s.free, id.index())
	s.live--
	return nil
}

// IDs returns the live handles in slot order. The order only changes when
// entities are inserted or removed.
func (s *Store) IDs() []EntityID {
	ids := make([]EntityID, 0, s.live)
	for i := range s.slots {
		if s.slots[i].live {
			ids = append(ids, packEntityID(s.slots[i].gen, uint32(i)))
		}
	}
	return ids
}

func (s *Store) Len() int {
	return s.live
}

func (s *Store) slot(id EntityID) (*storeSlot, bool) {
	if id == NilEntityID {
		return nil, false
	}
	index := id.index()
	if int(index) >= len(s.slots) {
		return nil, false
	}
	slot := &s.slots[index]
	if !slot.live || slot.gen != id.generation() {
		return nil, false
	}
	return slot, true
}
