package gui

import "github.com/appengine-ltd/walden/internal/game"

// triangulate splits a simple polygon into triangles by ear clipping.
// Every triangle comes back counter-clockwise on screen (y down), the
// winding raylib fills.
func triangulate(pts []game.Vec2) [][3]game.Vec2 {
	n := len(pts)
	if n < 3 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// Work on a screen-clockwise outline so convex corners have a
	// positive cross product.
	if signedArea(pts) < 0 {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			idx[i], idx[j] = idx[j], idx[i]
		}
	}

	out := make([][3]game.Vec2, 0, n-2)
	for len(idx) > 3 {
		clipped := false
		for i := range idx {
			prev := idx[(i+len(idx)-1)%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isEar(pts, idx, prev, cur, next) {
				continue
			}
			out = append(out, screenCCW(pts[prev], pts[cur], pts[next]))
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate outline: fan out the rest.
			for i := 1; i+1 < len(idx); i++ {
				out = append(out, screenCCW(pts[idx[0]], pts[idx[i]], pts[idx[i+1]]))
			}
			return out
		}
	}
	return append(out, screenCCW(pts[idx[0]], pts[idx[1]], pts[idx[2]]))
}

func isEar(pts []game.Vec2, idx []int, prev, cur, next int) bool {
	a, b, c := pts[prev], pts[cur], pts[next]
	if cross(a, b, c) <= 0 {
		return false
	}
	for _, k := range idx {
		if k == prev || k == cur || k == next {
			continue
		}
		if insideTriangle(pts[k], a, b, c) {
			return false
		}
	}
	return true
}

func cross(a, b, c game.Vec2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func signedArea(pts []game.Vec2) float32 {
	var sum float32
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

func insideTriangle(p, a, b, c game.Vec2) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}

func screenCCW(a, b, c game.Vec2) [3]game.Vec2 {
	if cross(a, b, c) > 0 {
		return [3]game.Vec2{a, c, b}
	}
	return [3]game.Vec2{a, b, c}
}
