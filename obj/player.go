package obj

import (
	"platforms/common"
	"platforms/component"
)

// Player is the single controllable body in the world. Position and velocity
// are mutated every frame by kinematics and by the collision resolver; it is
// never destroyed during a session, only reset.
type Player struct {
	Pos  common.Vec2
	Vel  common.Vec2
	Size common.Vec2

	// Speed is the horizontal movement speed in world units per second.
	Speed float64
	// JumpImpulse is subtracted from vertical velocity on a grounded jump.
	JumpImpulse float64

	Health   component.Health
	Grounded bool
}

// NewPlayer creates a player at spawn with full health.
func NewPlayer(spawn, size common.Vec2, speed, jumpImpulse, maxHealth float64) *Player {
	return &Player{
		Pos:         spawn,
		Size:        size,
		Speed:       speed,
		JumpImpulse: jumpImpulse,
		Health:      component.NewHealth(maxHealth),
	}
}

// Rect returns the player's collision AABB anchored at Pos.
func (p *Player) Rect() common.Rect {
	return common.Rect{
		X:      p.Pos.X,
		Y:      p.Pos.Y,
		Width:  p.Size.X,
		Height: p.Size.Y,
	}
}

// Update advances the player's kinematics by dt. Gravity applies
// unconditionally; grounding is re-enforced afterward by the collision
// resolver. A jump happens only on a press edge while grounded, so the
// grounded flag is the single gate against mid-air jumps.
func (p *Player) Update(dt float64, in *Input) {
	p.Vel.Y += common.Gravity * dt

	dir := common.Vec2{X: in.MoveX}.Normalize()
	step := dir.Scale(p.Speed * dt)

	if in.JumpPressed && p.Grounded {
		p.Vel.Y -= p.JumpImpulse
	}

	step = step.Add(p.Vel.Scale(dt))
	p.Pos = p.Pos.Add(step)
}
