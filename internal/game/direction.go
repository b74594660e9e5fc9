package game

import "strings"

// Direction is one of the four d-pad directions. It doubles as the key of a
// hand slot. NoDirection stands for "nothing pressed".
type Direction uint8

const (
	NoDirection Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the valid directions in slot order.
var Directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Vec returns the unit vector the direction points to on screen.
func (d Direction) Vec() Vec2 {
	switch d {
	case Up:
		return Vec2{X: 0, Y: -1}
	case Down:
		return Vec2{X: 0, Y: 1}
	case Left:
		return Vec2{X: -1, Y: 0}
	case Right:
		return Vec2{X: 1, Y: 0}
	default:
		return Vec2{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "north", "n":
		return Up, true
	case "down", "south", "s":
		return Down, true
	case "left", "west", "w":
		return Left, true
	case "right", "east", "e":
		return Right, true
	case "none", "":
		return NoDirection, true
	}
	return NoDirection, false
}
