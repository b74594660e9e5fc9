package game

import "math"

// Step advances every entity by one tick of delta seconds. Only players
// move and get hungry; every other kind is inert.
func (w *World) Step(delta float32) {
	var buf []obstacle
	for _, id := range w.store.IDs() {
		e, err := w.store.Get(id)
		if err != nil {
			continue
		}
		player, ok := e.Kind.(*Player)
		if !ok {
			continue
		}
		buf = w.obstaclesAround(id, buf)
		e.Position = movePlayer(e.Position, player, buf)
		player.decay(delta)
	}
}

// movePlayer returns the position after one tick of movement. Steps within
// MoveDeadZone of zero are skipped.
func movePlayer(pos Vec2, p *Player, obstacles []obstacle) Vec2 {
	if p.LogSpeed.IsZero() {
		return pos
	}
	s := float32(math.Log2(float64(p.LogSpeed.Len())))
	if math.Abs(float64(s)) <= MoveDeadZone {
		return pos
	}
	dir := p.LogSpeed.Normalize()
	s = clampStep(pos, dir, s, Size(p), obstacles)
	return pos.Add(dir.Scale(s))
}
