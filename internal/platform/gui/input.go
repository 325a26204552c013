package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// keyBindings maps window keys to game actions.
var keyBindings = map[ebiten.Key]core.Action{
	ebiten.KeyArrowUp:    core.ActionUp,
	ebiten.KeyW:          core.ActionUp,
	ebiten.KeyArrowDown:  core.ActionDown,
	ebiten.KeyS:          core.ActionDown,
	ebiten.KeyArrowLeft:  core.ActionLeft,
	ebiten.KeyA:          core.ActionLeft,
	ebiten.KeyArrowRight: core.ActionRight,
	ebiten.KeyD:          core.ActionRight,
	ebiten.KeyR:          core.ActionRestart,
	ebiten.KeyP:          core.ActionPause,
	ebiten.KeyQ:          core.ActionQuit,
}

// pollInput sets the actions whose keys went down this tick.
func pollInput(frame *core.InputFrame) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if action, ok := keyBindings[k]; ok {
			frame.Set(action)
		}
	}
}
