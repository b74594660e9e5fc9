package game

// Steer advances the animation clock and eases LogSpeed towards the heading
// requested by the d-pad. steering is false while the radial selector is
// open: the player then keeps its heading and decelerates.
func (p *Player) Steer(steering bool, dpad Direction, delta float32) {
	p.T += delta

	heading := p.Heading()
	target := heading
	if steering && dpad.Valid() {
		target = dpad.Vec().Scale(DPadSpeed)
	}

	p.LogSpeed = p.LogSpeed.Add(target.Sub(p.LogSpeed).Scale(1 / SpeedDamping))

	// Below unit length log2 would turn negative.
	if p.LogSpeed.Len() < 1 {
		if n := p.LogSpeed.Normalize(); !n.IsZero() {
			p.LogSpeed = n
		} else if !heading.IsZero() {
			p.LogSpeed = heading
		} else {
			p.LogSpeed = Up.Vec()
		}
	}
}
