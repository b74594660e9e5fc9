package game

// Item is the closed set of things a hand can hold.
type Item interface {
	item()
	String() string
}

type (
	Axe    struct{}
	Berry  struct{}
	Bottle struct{ Filled bool }
)

func (Axe) item()    {}
func (Berry) item()  {}
func (Bottle) item() {}

func (Axe) String() string   { return "axe" }
func (Berry) String() string { return "berry" }
func (b Bottle) String() string {
	if b.Filled {
		return "bottle(full)"
	}
	return "bottle(empty)"
}

// Outcome names what an item action did. It is reported to logs and metrics.
type Outcome string

const (
	OutcomeDrank  Outcome = "drank"
	OutcomeFilled Outcome = "filled"
	OutcomeEmpty  Outcome = "empty"
	OutcomeInert  Outcome = "inert"
)

// Tooltip is the hint a renderer shows next to the action button.
type Tooltip string

const (
	TooltipDrinkBottle Tooltip = "drink"
	TooltipFillBottle  Tooltip = "fill"
)

// DoAction performs the action of item on w and returns what the hand holds
// afterwards. A false second result means the item was used up.
func DoAction(item Item, w *World) (Item, bool) {
	next, ok, _ := doAction(item, w)
	return next, ok
}

func doAction(item Item, w *World) (Item, bool, Outcome) {
	switch it := item.(type) {
	case Bottle:
		switch {
		case it.Filled:
			w.log.Info("Drinking water")
			w.Player().Thirst = 1
			return Bottle{Filled: false}, true, OutcomeDrank
		case w.WaterAhead():
			w.log.Info("Filling bottle")
			return Bottle{Filled: true}, true, OutcomeFilled
		default:
			w.log.Info("The bottle is empty!")
			return Bottle{Filled: false}, true, OutcomeEmpty
		}
	case Axe, Berry:
		return item, true, OutcomeInert
	default:
		return item, true, OutcomeInert
	}
}

// ActionTooltip reports the hint for acting with item, if the action would
// do something.
func ActionTooltip(item Item, w *World) (Tooltip, bool) {
	b, ok := item.(Bottle)
	if !ok {
		return "", false
	}
	if b.Filled {
		return TooltipDrinkBottle, true
	}
	if w.WaterAhead() {
		return TooltipFillBottle, true
	}
	return "", false
}
