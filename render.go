package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"platforms/common"
)

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	obstacleColor   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	playerColor     = colornames.Orange
)

// drawWorld renders the obstacle set and the player through the camera
// transform.
func (g *Game) drawWorld(screen *ebiten.Image) {
	for i := range g.world.Obstacles {
		g.drawWorldRect(screen, g.world.Obstacles[i].Rect, obstacleColor)
	}
	g.drawWorldRect(screen, g.world.Player.Rect(), playerColor)
}

func (g *Game) drawWorldRect(screen *ebiten.Image, r common.Rect, clr color.Color) {
	viewX, viewY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()
	vector.DrawFilledRect(
		screen,
		float32((r.X-viewX)*zoom),
		float32((r.Y-viewY)*zoom),
		float32(r.Width*zoom),
		float32(r.Height*zoom),
		clr,
		false,
	)
}
