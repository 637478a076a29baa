package obj

import (
	"math"
	"testing"

	"platforms/common"
)

func newTestPlayer() *Player {
	return NewPlayer(
		common.Vec2{},
		common.Vec2{X: 1, Y: 2},
		15, 30, 100,
	)
}

func TestPlayerGravityAlwaysApplies(t *testing.T) {
	for _, grounded := range []bool{true, false} {
		p := newTestPlayer()
		p.Grounded = grounded

		p.Update(0.01, &Input{})
		want := common.Gravity * 0.01
		if math.Abs(p.Vel.Y-want) > 1e-12 {
			t.Fatalf("grounded=%v: Vel.Y = %g, want %g", grounded, p.Vel.Y, want)
		}
	}
}

func TestPlayerHorizontalIntent(t *testing.T) {
	cases := []struct {
		name  string
		moveX float64
		wantX float64
	}{
		{"right", 1, 15 * 0.01},
		{"left", -1, -15 * 0.01},
		{"none", 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := newTestPlayer()
			p.Update(0.01, &Input{MoveX: c.moveX})
			if math.Abs(p.Pos.X-c.wantX) > 1e-12 {
				t.Fatalf("Pos.X = %g, want %g", p.Pos.X, c.wantX)
			}
		})
	}
}

func TestPlayerJumpGatedByGrounded(t *testing.T) {
	t.Run("grounded_jump_applies_impulse", func(t *testing.T) {
		p := newTestPlayer()
		p.Grounded = true

		p.Update(0.01, &Input{JumpPressed: true})
		want := common.Gravity*0.01 - 30
		if math.Abs(p.Vel.Y-want) > 1e-12 {
			t.Fatalf("Vel.Y = %g, want %g", p.Vel.Y, want)
		}
	})

	t.Run("airborne_jump_is_ignored", func(t *testing.T) {
		p := newTestPlayer()
		p.Grounded = false
		p.Vel.Y = -10

		p.Update(0.01, &Input{JumpPressed: true})
		want := -10 + common.Gravity*0.01
		if math.Abs(p.Vel.Y-want) > 1e-12 {
			t.Fatalf("airborne jump changed velocity: Vel.Y = %g, want %g", p.Vel.Y, want)
		}
	})

	t.Run("no_press_no_impulse", func(t *testing.T) {
		p := newTestPlayer()
		p.Grounded = true

		p.Update(0.01, &Input{})
		if p.Vel.Y < 0 {
			t.Fatalf("impulse applied without a jump press: Vel.Y = %g", p.Vel.Y)
		}
	})
}

func TestPlayerVelocityIntegration(t *testing.T) {
	p := newTestPlayer()
	p.Vel = common.Vec2{X: 2, Y: 10}

	p.Update(0.1, &Input{})
	// position step uses the post-gravity velocity
	wantY := (10 + common.Gravity*0.1) * 0.1
	if math.Abs(p.Pos.X-0.2) > 1e-12 || math.Abs(p.Pos.Y-wantY) > 1e-12 {
		t.Fatalf("Pos = %v, want (0.2, %g)", p.Pos, wantY)
	}
}

func TestPlayerRect(t *testing.T) {
	p := newTestPlayer()
	p.Pos = common.Vec2{X: 3, Y: 4}

	got := p.Rect()
	want := common.Rect{X: 3, Y: 4, Width: 1, Height: 2}
	if got != want {
		t.Fatalf("Rect() = %v, want %v", got, want)
	}
}
