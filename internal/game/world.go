package game

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"
)

// Placement puts a static kind at a position when a world is built.
type Placement struct {
	Kind     Kind
	Position Vec2
}

// Layout describes the world created at startup.
type Layout struct {
	Spawn     Vec2
	Obstacles []Placement
}

func DefaultLayout() Layout {
	return Layout{
		Spawn: DefaultSpawn,
		Obstacles: []Placement{
			{Kind: Pond{Radius: 40}, Position: Vec2{X: 200, Y: 130}},
			{Kind: Pond{Radius: 60}, Position: Vec2{X: 280, Y: 120}},
			{Kind: Pond{Radius: 50}, Position: Vec2{X: 240, Y: 180}},
		},
	}
}

type World struct {
	store    *Store
	playerID EntityID
	player   *Player
	log      logrus.FieldLogger
}

// NewWorld builds a fresh world from layout with a new player at the spawn
// point.
func NewWorld(layout Layout, log logrus.FieldLogger) (*World, error) {
	store := NewStore()
	playerID := store.Insert(NewEntity(NewPlayer(), layout.Spawn))
	for i, p := range layout.Obstacles {
		if p.Kind == nil {
			return nil, fmt.Errorf("obstacle %d: missing kind", i)
		}
		if _, ok := p.Kind.(*Player); ok {
			return nil, fmt.Errorf("obstacle %d: a world holds exactly one player", i)
		}
		store.Insert(NewEntity(p.Kind, p.Position))
	}
	return NewWorldFromStore(store, playerID, log)
}

// NewWorldFromStore wraps an existing store. playerID must resolve to a
// player entity; this is checked here once and trusted afterwards.
func NewWorldFromStore(store *Store, playerID EntityID, log logrus.FieldLogger) (*World, error) {
	e, err := store.Get(playerID)
	if err != nil {
		return nil, fmt.Errorf("resolve player: %w", err)
	}
	player, ok := e.Kind.(*Player)
	if !ok || player == nil {
		return nil, fmt.Errorf("resolve player: %w", &EntityError{ID: playerID, Err: ErrNotPlayer})
	}
	if log == nil {
		log = discardLogger()
	}
	return &World{
		store:    store,
		playerID: playerID,
		player:   player,
		log:      log,
	}, nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func (w *World) Store() *Store {
	return w.store
}

func (w *World) PlayerID() EntityID {
	return w.playerID
}

func (w *World) Player() *Player {
	return w.player
}

func (w *World) PlayerPosition() Vec2 {
	e, err := w.store.Get(w.playerID)
	if err != nil {
		return Vec2{}
	}
	return e.Position
}

// Entity returns a copy of the entity behind id.
func (w *World) Entity(id EntityID) (Entity, error) {
	e, err := w.store.Get(id)
	if err != nil {
		return Entity{}, err
	}
	return *e, nil
}

// WaterAhead reports whether the spot WaterReach units ahead of the player
// lies inside a pond.
func (w *World) WaterAhead() bool {
	probe := w.PlayerPosition().Add(w.player.Heading().Scale(WaterReach))
	for _, id := range w.store.IDs() {
		e, err := w.store.Get(id)
		if err != nil {
			continue
		}
		pond, ok := e.Kind.(Pond)
		if !ok {
			continue
		}
		if probe.Dist(e.Position) < pond.Radius {
			return true
		}
	}
	return false
}

// DrawOrder returns all ids sorted back to front (by y, then by id).
func (w *World) DrawOrder() []EntityID {
	ids := w.store.IDs()
	ys := make(map[EntityID]float32, len(ids))
	for _, id := range ids {
		if e, err := w.store.Get(id); err == nil {
			ys[id] = e.Position.Y
		}
	}
	sort.SliceStable(ids, func(i, j int) bool {
		if ys[ids[i]] != ys[ids[j]] {
			return ys[ids[i]] < ys[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
