package game

import "fmt"

// SelectorState is the closed set of radial selector states.
type SelectorState interface {
	selectorState()
	String() string
}

type (
	Idle struct{}
	// Deciding waits for the d-pad while A is held. When Timeout runs out
	// without a choice the selector opens in AboutToCancel.
	Deciding      struct{ Timeout float32 }
	ItemChosen    struct{}
	AboutToCancel struct{}
)

func (Idle) selectorState()          {}
func (Deciding) selectorState()      {}
func (ItemChosen) selectorState()    {}
func (AboutToCancel) selectorState() {}

func (Idle) String() string          { return "idle" }
func (d Deciding) String() string    { return fmt.Sprintf("deciding(%.2f)", d.Timeout) }
func (ItemChosen) String() string    { return "item_chosen" }
func (AboutToCancel) String() string { return "about_to_cancel" }

// StateName is the state name without payload, for metrics labels.
func StateName(s SelectorState) string {
	switch s.(type) {
	case Idle:
		return "idle"
	case Deciding:
		return "deciding"
	case ItemChosen:
		return "item_chosen"
	case AboutToCancel:
		return "about_to_cancel"
	default:
		return "unknown"
	}
}

// SelectorEffect is the side effect a transition asks its owner to perform.
type SelectorEffect uint8

const (
	EffectNone SelectorEffect = iota
	EffectTriggerAction
	EffectSwapItem
)

func (e SelectorEffect) String() string {
	switch e {
	case EffectTriggerAction:
		return "trigger_action"
	case EffectSwapItem:
		return "swap_item"
	default:
		return "none"
	}
}

type Transition struct {
	From   SelectorState
	To     SelectorState
	Effect SelectorEffect
	// Slot is the target of EffectSwapItem.
	Slot Direction
}

// Selector is the radial item selector. Player is a copy refreshed by the
// session every tick for display; it is never written back.
type Selector struct {
	Axis   Vec2
	Choice Direction
	Player Player
	State  SelectorState
}

func NewSelector(player Player) Selector {
	return Selector{Player: player, State: Idle{}}
}

// Visible reports whether the selector wheel is drawn.
func (s *Selector) Visible() bool {
	switch s.State.(type) {
	case ItemChosen, AboutToCancel:
		return true
	default:
		return false
	}
}

// Advance runs one transition from the A button level and the d-pad. The
// machine has no side effects of its own; the returned transition names the
// effect the caller must apply.
func (s *Selector) Advance(a bool, dpad Direction, delta float32) Transition {
	t := Transition{From: s.State}
	if s.State == nil {
		t.From = Idle{}
	}

	switch st := t.From.(type) {
	case Idle:
		if a {
			t.To = Deciding{Timeout: DecidingTimeout}
		} else {
			t.To = Idle{}
		}
	case Deciding:
		s.Choice = dpad
		switch {
		case !a:
			t.To = Idle{}
			t.Effect = EffectTriggerAction
		case dpad.Valid():
			t.To = ItemChosen{}
		case st.Timeout <= 0:
			t.To = AboutToCancel{}
		default:
			t.To = Deciding{Timeout: st.Timeout - delta}
		}
	case ItemChosen:
		s.Choice = dpad
		switch {
		case dpad.Valid() && !a:
			t.To = Idle{}
			t.Effect = EffectSwapItem
			t.Slot = dpad
		case dpad.Valid():
			t.To = ItemChosen{}
		default:
			t.To = AboutToCancel{}
		}
	case AboutToCancel:
		s.Choice = dpad
		switch {
		case dpad.Valid() && a:
			t.To = ItemChosen{}
		case dpad.Valid():
			t.To = AboutToCancel{}
		case !a:
			t.To = Idle{}
		default:
			t.To = AboutToCancel{}
		}
	}

	s.State = t.To
	return t
}

// Damp eases Axis halfway towards the current choice, or towards the centre
// when nothing is chosen.
func (s *Selector) Damp() {
	target := s.Choice.Vec()
	s.Axis = s.Axis.Add(target.Sub(s.Axis).Scale(1 / AxisDamping))
}
