package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"platforms/common"
	"platforms/component"
)

const (
	hudMargin = 10.0
	hudPad    = 5.0
	hudWidth  = 300.0
	hudHeight = 40.0
	// healthViewSpeed is how fast the trailing damage bar drains, in health
	// units per second.
	healthViewSpeed = 80.0
)

var hudBackgroundColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// HUD draws the health bar: a background panel, a white trailing bar that
// drains toward the real value after a hit, and the bar itself colored by a
// red-to-green lerp on the health ratio.
type HUD struct {
	view float64
}

func NewHUD() *HUD {
	return &HUD{}
}

// Update advances the trailing damage bar toward the real health value.
func (h *HUD) Update(dt float64, health *component.Health) {
	if health.Current < h.view {
		h.view -= dt * healthViewSpeed
		if h.view < health.Current {
			h.view = health.Current
		}
	} else {
		h.view = health.Current
	}
}

func (h *HUD) Draw(screen *ebiten.Image, health *component.Health) {
	bg := common.Rect{X: hudMargin, Y: hudMargin, Width: hudWidth, Height: hudHeight}
	inner := common.Rect{
		X:      bg.X + hudPad,
		Y:      bg.Y + hudPad,
		Width:  bg.Width - 2*hudPad,
		Height: bg.Height - 2*hudPad,
	}

	ratio := health.Ratio()
	bar := inner
	bar.Width *= ratio

	trail := inner
	if health.Max > 0 {
		trail.Width *= common.Clamp(h.view/health.Max, 0, 1)
	}

	fillScreenRect(screen, bg, hudBackgroundColor)
	fillScreenRect(screen, trail, colornames.White)
	fillScreenRect(screen, bar, lerpColor(colornames.Red, colornames.Green, ratio))
}

func fillScreenRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

// lerpColor blends between two colors channel-wise.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(common.Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(common.Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(common.Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(common.Lerp(float64(a.A), float64(b.A), t)),
	}
}
