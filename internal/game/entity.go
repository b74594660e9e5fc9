package game

import (
	"fmt"
	"strings"
)

// Entity is one object placed in the world.
type Entity struct {
	Kind     Kind
	Position Vec2
}

func NewEntity(kind Kind, position Vec2) Entity {
	return Entity{Kind: kind, Position: position}
}

// Kind is the closed set of entity variants. Only the types in this file
// implement it.
type Kind interface {
	kind()
	String() string
}

// Inventory is the (still empty) content of a container.
type Inventory struct{}

type (
	Bag   struct{ Inventory Inventory }
	Tent  struct{ Inventory Inventory }
	Grass struct{}
	Stone struct{}
	Tree  struct{}
	Bush  struct{}
	// GroundAxe is an axe lying in the world, as opposed to the Axe item.
	GroundAxe struct{}
	Pond      struct{ Radius float32 }
)

func (*Player) kind()   {}
func (Bag) kind()       {}
func (Tent) kind()      {}
func (Grass) kind()     {}
func (Stone) kind()     {}
func (Tree) kind()      {}
func (Bush) kind()      {}
func (GroundAxe) kind() {}
func (Pond) kind()      {}

func (*Player) String() string   { return "player" }
func (Bag) String() string       { return "bag" }
func (Tent) String() string      { return "tent" }
func (Grass) String() string     { return "grass" }
func (Stone) String() string     { return "stone" }
func (Tree) String() string      { return "tree" }
func (Bush) String() string      { return "bush" }
func (GroundAxe) String() string { return "axe" }
func (p Pond) String() string    { return fmt.Sprintf("pond(%g)", p.Radius) }

// Size is the collision radius of a kind.
func Size(k Kind) float32 {
	switch k := k.(type) {
	case Pond:
		return k.Radius
	default:
		return DefaultRadius
	}
}

func IsSolid(k Kind) bool {
	switch k.(type) {
	case Bag, Tent, Stone, Tree, Bush, Pond:
		return true
	case *Player, Grass, GroundAxe:
		return false
	default:
		return false
	}
}

// GroundItem is the item a kind yields when picked up.
func GroundItem(k Kind) (Item, bool) {
	switch k.(type) {
	case GroundAxe:
		return Axe{}, true
	case Bush:
		return Berry{}, true
	default:
		return nil, false
	}
}

func IsPickupable(k Kind) bool {
	_, ok := GroundItem(k)
	return ok
}

// KindByName builds a static kind from its configuration name. radius is
// only used by ponds.
func KindByName(name string, radius float32) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bag":
		return Bag{}, nil
	case "tent":
		return Tent{}, nil
	case "grass":
		return Grass{}, nil
	case "stone":
		return Stone{}, nil
	case "tree":
		return Tree{}, nil
	case "bush":
		return Bush{}, nil
	case "axe":
		return GroundAxe{}, nil
	case "pond":
		if radius <= 0 {
			return nil, fmt.Errorf("pond radius must be positive, got %g", radius)
		}
		return Pond{Radius: radius}, nil
	case "player":
		return nil, fmt.Errorf("player cannot be placed as an obstacle")
	}
	return nil, fmt.Errorf("unknown entity kind %q", name)
}
