package obj

import "platforms/common"

// Obstacle is a solid AABB the player collides with. An obstacle with
// Speed > 0 ping-pongs between Start and End; a static obstacle has
// Speed == 0 and Start == End == the rect origin.
type Obstacle struct {
	Rect common.Rect

	Start common.Vec2
	End   common.Vec2
	Speed float64
	// MovingToStart flips every time the obstacle reaches an endpoint.
	MovingToStart bool
	// PlayerAttached is recomputed each frame by the collision resolver and
	// consumed by the next frame's kinematics pass to carry the rider.
	PlayerAttached bool
}

// NewStaticObstacle creates an obstacle that never moves.
func NewStaticObstacle(rect common.Rect) Obstacle {
	origin := rect.Origin()
	return Obstacle{Rect: rect, Start: origin, End: origin}
}

// NewPlatform creates an obstacle that oscillates between start and end.
func NewPlatform(rect common.Rect, start, end common.Vec2, speed float64) Obstacle {
	return Obstacle{Rect: rect, Start: start, End: end, Speed: speed}
}

// Moving reports whether the obstacle travels between its endpoints.
func (o *Obstacle) Moving() bool {
	return o.Speed > 0
}

// Advance moves the obstacle along its path by dt and returns the applied
// step so the caller can forward it to a rider when PlayerAttached is set.
// Reaching or overshooting the target endpoint snaps the obstacle onto it
// and reverses direction, so the rect origin never leaves [Start, End].
func (o *Obstacle) Advance(dt float64) common.Vec2 {
	if !o.Moving() {
		return common.Vec2{}
	}

	dir := o.End.Sub(o.Start).Normalize()
	if o.MovingToStart {
		dir = dir.Neg()
	}

	step := dir.Scale(o.Speed * dt)
	o.Rect.X += step.X
	o.Rect.Y += step.Y

	target := o.End
	if o.MovingToStart {
		target = o.Start
	}
	if dir.Dot(target.Sub(o.Rect.Origin())) <= 0 {
		o.Rect.X = target.X
		o.Rect.Y = target.Y
		o.MovingToStart = !o.MovingToStart
	}

	return step
}
