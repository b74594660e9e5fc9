package game

type obstacle struct {
	position Vec2
	radius   float32
}

// clampStep shortens a step of length step along dir so that the mover,
// once at its intended destination, keeps its distance to every obstacle.
// The direction is never changed. Gaps are measured from the unclamped
// destination, and the result is a plain minimum, so obstacle order does not
// matter.
func clampStep(from Vec2, dir Vec2, step float32, radius float32, obstacles []obstacle) float32 {
	dest := from.Add(dir.Scale(step))
	s := step
	for _, o := range obstacles {
		gap := dest.Dist(o.position) - (radius + o.radius)
		s = min(s, max(gap, 0))
	}
	return s
}

// obstaclesAround collects every non-player entity other than self. The
// slice is a snapshot; writing the mover afterwards does not alias it.
func (w *World) obstaclesAround(self EntityID, buf []obstacle) []obstacle {
	buf = buf[:0]
	for _, id := range w.store.IDs() {
		if id == self {
			continue
		}
		e, err := w.store.Get(id)
		if err != nil {
			continue
		}
		if _, ok := e.Kind.(*Player); ok {
			continue
		}
		buf = append(buf, obstacle{position: e.Position, radius: Size(e.Kind)})
	}
	return buf
}
