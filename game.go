package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"platforms/levels"
	"platforms/obj"
	"platforms/system"
)

const (
	screenWidth  = 1024
	screenHeight = 1024
	// cameraZoom is how many screen pixels one world unit spans.
	cameraZoom = 20.0
)

type Game struct {
	levelName string

	world  *system.World
	input  *obj.Input
	camera *obj.Camera
	hud    *HUD

	paused  bool
	pauseUI *ebitenui.UI
	watcher *levels.Watcher

	frames int
}

func NewGame(levelName string, seed int64, watch bool) (*Game, error) {
	spec, err := levels.LoadSpec(levelName)
	if err != nil {
		return nil, err
	}

	camera := obj.NewCamera(screenWidth, screenHeight, cameraZoom)
	world, err := system.NewWorld(spec, seed)
	if err != nil {
		return nil, err
	}
	world.Camera = camera

	g := &Game{
		levelName: levelName,
		world:     world,
		input:     obj.NewInput(),
		camera:    camera,
		hud:       NewHUD(),
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := levels.NewWatcher(100*time.Millisecond, "levels", "levels/scripts")
		if err != nil {
			log.Printf("level watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}

	// Drain the watcher even while paused so its loop never backs up
	// behind a full channel; the reload itself is cheap either way.
	g.reloadIfChanged()

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	if err := g.world.Update(dt, g.input); err != nil {
		return err
	}
	g.hud.Update(dt, &g.world.Player.Health)
	return nil
}

// reloadIfChanged drains watcher events and reloads the level spec when any
// level file changed on disk.
func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			changed = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("level watcher: %v", err)
			}
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	spec, err := levels.LoadSpec(g.levelName)
	if err != nil {
		log.Printf("level reload: %v", err)
		return
	}
	if err := g.world.ReplaceSpec(spec); err != nil {
		log.Printf("level reload: %v", err)
		return
	}
	log.Printf("level %s reloaded", g.levelName)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.drawWorld(screen)
	g.hud.Draw(screen, &g.world.Player.Health)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Close releases the level watcher, if one was started.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
