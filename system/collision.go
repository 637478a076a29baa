package system

import (
	"math"

	"platforms/common"
)

// resolveCollisions reconciles the player against every obstacle and drives
// the grounded/airborne state machine.
//
// Per-obstacle MTVs are folded as per-axis extremes, never summed: touching
// two obstacles at once yields the single largest correction on each axis
// instead of a stacked one. Deeply nested simultaneous overlaps can
// under-resolve; that approximation is intentional.
func (w *World) resolveCollisions() {
	p := w.Player

	var minX, maxX, minY, maxY float64
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		mtv := p.Rect().MTV(o.Rect)

		minX = math.Min(minX, mtv.X)
		maxX = math.Max(maxX, mtv.X)
		minY = math.Min(minY, mtv.Y)
		maxY = math.Max(maxY, mtv.Y)

		// resting on top of a moving platform; static obstacles never attach
		o.PlayerAttached = mtv.Y < 0 && o.Moving()
	}

	corr := common.Vec2{X: minX, Y: minY}
	if math.Abs(maxX) > math.Abs(minX) {
		corr.X = maxX
	}
	if math.Abs(maxY) > math.Abs(minY) {
		corr.Y = maxY
	}
	p.Pos = p.Pos.Add(corr)

	// Re-evaluated from scratch every frame: grounded persists only while
	// the landing branch keeps re-asserting it.
	switch {
	case corr.Y < 0 && p.Vel.Y > 0:
		// landed: excess impact speed becomes damage
		impact := p.Vel.Length()
		p.Health.Damage(impact - common.SafeImpactSpeed)
		p.Vel = common.Vec2{}
		p.Grounded = true
	case corr.Y > 0 && p.Vel.Y < 0:
		// ceiling bump kills upward motion only
		p.Vel.Y = 0
	default:
		p.Grounded = false
	}
}
