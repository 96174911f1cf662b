package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/koopa/ecs"
	"github.com/milk9111/koopa/ecs/component"
)

const stickDeadzone = 0.2

// InputReader samples the controls for one frame.
type InputReader func() component.Input

// InputSystem copies the sampled controls into every Input component.
type InputSystem struct {
	read InputReader
}

// NewInputSystem reads the keyboard and the first gamepad.
func NewInputSystem() *InputSystem {
	return &InputSystem{read: ReadDevices}
}

func NewInputSystemFrom(read InputReader) *InputSystem {
	return &InputSystem{read: read}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.read == nil {
		return
	}

	in := i.read()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = in
	})
}

// ReadDevices maps arrows/A/D and Space/Up/W, plus the first standard
// gamepad's left stick, d-pad and bottom face button.
func ReadDevices() component.Input {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		left = left || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		right = right || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)

		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(leftX) > stickDeadzone {
			return component.Input{MoveX: leftX, Jump: jump}
		}
	}

	return component.Input{MoveX: moveAxis(left, right), Jump: jump}
}

func moveAxis(left, right bool) float64 {
	x := 0.0
	if left {
		x--
	}
	if right {
		x++
	}
	return x
}
