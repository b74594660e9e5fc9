package game

// Camera is the world translation applied when drawing. It trails a point
// CameraLead units ahead of the player.
type Camera struct {
	Pos Vec2
}

func (c *Camera) Follow(player Vec2, heading Vec2, halfViewport Vec2) {
	target := player.Sub(halfViewport).Add(heading.Normalize().Scale(CameraLead)).Scale(-1)
	c.Pos = c.Pos.Scale(CameraKeep).Add(target.Scale(1 - CameraKeep))
}
