package game

import "math"

type Stat uint8

const (
	StatHunger Stat = iota
	StatThirst
	StatSleep
)

func (s Stat) String() string {
	switch s {
	case StatHunger:
		return "hunger"
	case StatThirst:
		return "thirst"
	case StatSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// IndicatorSegments is the resolution of the round stat gauges.
const IndicatorSegments = 20

// StatIndicator shows one stat of a player copy pushed once per tick, so
// it may lag the live player by a tick.
type StatIndicator struct {
	Stat   Stat
	player Player
}

func NewStatIndicator(stat Stat, player Player) StatIndicator {
	return StatIndicator{Stat: stat, player: player}
}

func (i *StatIndicator) SetPlayer(p *Player) {
	i.player = *p
}

func (i *StatIndicator) Value() float32 {
	switch i.Stat {
	case StatHunger:
		return i.player.Hunger
	case StatThirst:
		return i.player.Thirst
	case StatSleep:
		return i.player.Sleep
	default:
		return 0
	}
}

// Segments is the number of filled segments out of total.
func (i *StatIndicator) Segments(total int) int {
	return int(math.Round(float64(total) * float64(i.Value())))
}
