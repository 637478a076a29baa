package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the current frame's input state. It is plain data so the
// world and its tests can be driven without a keyboard.
type Input struct {
	// MoveX is -1 for left, 0 for none, +1 for right.
	MoveX float64
	// JumpPressed is true only on the frame the jump key went down.
	JumpPressed bool
	// ResetPressed is true only on the frame the reset key went down.
	ResetPressed bool
	// PausePressed is true only on the frame the pause key went down.
	PausePressed bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and fills in this frame's state.
func (i *Input) Update() {
	var moveX float64
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		moveX += 1
	}
	i.MoveX = moveX

	i.JumpPressed = inpututil.IsKeyJustPressed(ebiten.KeyW) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace)
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
