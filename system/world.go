// Package system owns the per-session world state and the fixed per-frame
// update order: reset check, player kinematics, obstacle kinematics with
// platform-rider coupling, collision resolution, camera follow.
package system

import (
	"fmt"
	"math/rand"

	"platforms/common"
	"platforms/levels"
	"platforms/obj"
)

// MaxObstacles bounds the obstacle set for a level.
const MaxObstacles = 64

// World holds everything that gets re-seeded wholesale on a level load or
// reset. All mutation happens in Update on the game's single goroutine; the
// draw pass only reads.
type World struct {
	Player    *obj.Player
	Obstacles []obj.Obstacle
	Camera    *obj.Camera

	spec *levels.Spec
	rng  *rand.Rand
}

// NewWorld builds a world from a level spec. The seed drives platform
// layout generation, so equal seeds produce equal worlds.
func NewWorld(spec *levels.Spec, seed int64) (*World, error) {
	w := &World{
		spec: spec,
		rng:  rand.New(rand.NewSource(seed)),
	}
	if err := w.load(); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset reinitializes the player and the obstacle set from the level spec,
// synchronously within the current frame. Platform layout is re-rolled.
func (w *World) Reset() error {
	return w.load()
}

// ReplaceSpec swaps in a new level spec and reloads the world from it.
func (w *World) ReplaceSpec(spec *levels.Spec) error {
	w.spec = spec
	return w.load()
}

func (w *World) load() error {
	ps := w.spec.Player
	w.Player = obj.NewPlayer(
		common.Vec2{X: ps.Spawn.X, Y: ps.Spawn.Y},
		common.Vec2{X: ps.Size.X, Y: ps.Size.Y},
		ps.Speed,
		ps.JumpImpulse,
		ps.MaxHealth,
	)

	w.Obstacles = w.Obstacles[:0]
	for i, r := range w.spec.Obstacles {
		rect := common.Rect{X: r.X, Y: r.Y, Width: r.W, Height: r.H}
		if err := w.SpawnObstacle(obj.NewStaticObstacle(rect)); err != nil {
			return fmt.Errorf("system: obstacle %d: %w", i, err)
		}
	}

	platforms, err := w.spec.BuildPlatforms(w.rng.Int63())
	if err != nil {
		return err
	}
	for i, p := range platforms {
		rect := common.Rect{X: p.X, Y: p.Y, Width: p.W, Height: p.H}
		start := common.Vec2{X: p.StartX, Y: p.StartY}
		end := common.Vec2{X: p.EndX, Y: p.EndY}
		if p.Speed <= 0 {
			return fmt.Errorf("system: platform %d: speed must be positive, got %g", i, p.Speed)
		}
		if err := w.SpawnObstacle(obj.NewPlatform(rect, start, end, p.Speed)); err != nil {
			return fmt.Errorf("system: platform %d: %w", i, err)
		}
	}

	if w.Camera != nil {
		w.Camera.SnapTo(w.Player.Pos)
	}
	return nil
}

// SpawnObstacle appends an obstacle to the world. Exceeding the capacity is
// a configuration error surfaced at load time, not a runtime condition.
func (w *World) SpawnObstacle(o obj.Obstacle) error {
	if len(w.Obstacles) >= MaxObstacles {
		return fmt.Errorf("obstacle capacity %d exceeded", MaxObstacles)
	}
	w.Obstacles = append(w.Obstacles, o)
	return nil
}

// Update advances the world by dt seconds. The order is load-bearing:
// obstacle kinematics consumes the attachment flags the resolver computed
// last frame, and the resolver must run after both bodies have moved.
func (w *World) Update(dt float64, in *obj.Input) error {
	if in.ResetPressed {
		if err := w.Reset(); err != nil {
			return err
		}
	}

	w.Player.Update(dt, in)

	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		step := o.Advance(dt)
		if o.PlayerAttached {
			w.Player.Pos = w.Player.Pos.Add(step)
		}
	}

	w.resolveCollisions()

	if w.Camera != nil {
		w.Camera.Update(w.Player.Pos)
	}
	return nil
}
