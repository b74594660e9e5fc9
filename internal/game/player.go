package game

// Hands holds at most one item per d-pad direction.
type Hands [len(Directions)]Item

func (h *Hands) Get(d Direction) (Item, bool) {
	if !d.Valid() {
		return nil, false
	}
	item := h[d-1]
	return item, item != nil
}

func (h *Hands) Set(d Direction, item Item) {
	if !d.Valid() {
		return
	}
	h[d-1] = item
}

func (h *Hands) Remove(d Direction) {
	h.Set(d, nil)
}

func (h *Hands) Len() int {
	n := 0
	for _, item := range h {
		if item != nil {
			n++
		}
	}
	return n
}

type Player struct {
	Hands       Hands
	CurrentHand Direction
	// LogSpeed encodes velocity logarithmically: a tick moves the player
	// log2(|LogSpeed|) units along LogSpeed.
	LogSpeed Vec2
	T        float32
	Thirst   float32
	Hunger   float32
	Sleep    float32
}

func NewPlayer() *Player {
	p := &Player{
		CurrentHand: Up,
		LogSpeed:    Vec2{X: 0, Y: -1},
		Thirst:      1,
		Hunger:      1,
		Sleep:       1,
	}
	p.Hands.Set(Left, Bottle{Filled: true})
	return p
}

// CurrentItem returns the item in the active hand.
func (p *Player) CurrentItem() (Item, bool) {
	return p.Hands.Get(p.CurrentHand)
}

func (p *Player) Heading() Vec2 {
	return p.LogSpeed.Normalize()
}

// Stride is the walk animation amplitude in [0,1].
func (p *Player) Stride() float32 {
	return clamp01(p.LogSpeed.Len() - 1)
}

// FacingAway reports whether the player looks up the screen, i.e. its face
// is hidden.
func (p *Player) FacingAway() bool {
	return p.LogSpeed.Y < 0
}

func (p *Player) decay(delta float32) {
	p.Sleep = max(p.Sleep-delta/SleepDrainSeconds, 0)
	p.Hunger = max(p.Hunger-delta/HungerDrainSeconds, 0)
	p.Thirst = max(p.Thirst-delta/ThirstDrainSeconds, 0)
}

func clamp01(v float32) float32 {
	return min(max(v, 0), 1)
}
