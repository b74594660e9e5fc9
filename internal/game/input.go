package game

// Controller is the sampled state of one game pad. Buttons are levels, not
// edges.
type Controller struct {
	DPad Direction
	A    bool
	B    bool
}

// InputSnapshot is everything the input provider hands over for one tick.
type InputSnapshot struct {
	Delta       float32
	Controllers []Controller
}

// InputProvider is implemented by the clients' input backends.
type InputProvider interface {
	Poll() InputSnapshot
}

func (in InputSnapshot) primary() (Controller, bool) {
	if len(in.Controllers) == 0 {
		return Controller{}, false
	}
	return in.Controllers[0], true
}
