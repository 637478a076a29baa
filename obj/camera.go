package obj

import "platforms/common"

// Camera tracks a focal point in world space and converts it to the screen
// transform used by the draw pass. Following is an exponential smoothing
// step: each frame the focal point moves a fixed fraction of the remaining
// distance toward the target.
type Camera struct {
	Pos common.Vec2

	screenW int
	screenH int
	zoom    float64
	smooth  float64
}

// NewCamera creates a camera for the given logical screen size and zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	return &Camera{screenW: screenW, screenH: screenH, zoom: zoom, smooth: 0.1}
}

// Update moves the focal point toward the target world coordinate.
func (c *Camera) Update(target common.Vec2) {
	c.Pos = c.Pos.Add(target.Sub(c.Pos).Scale(c.smooth))
}

// SnapTo centers the camera on the target immediately, with no smoothing.
func (c *Camera) SnapTo(target common.Vec2) {
	c.Pos = target
}

// ViewTopLeft returns the world-space top-left corner of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	if c.zoom == 0 {
		return c.Pos.X, c.Pos.Y
	}
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.Pos.X - viewW/2.0, c.Pos.Y - viewH/2.0
}

// Zoom returns the current camera zoom in pixels per world unit.
func (c *Camera) Zoom() float64 {
	return c.zoom
}
