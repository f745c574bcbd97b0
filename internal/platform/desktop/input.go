package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/boxcoin/internal/core"
)

// keyBinding maps one physical key to a game action.
type keyBinding struct {
	Key    ebiten.Key
	Action core.Action
}

// bindings lists the desktop keys. Releases are real, so there is no stop key.
var bindings = []keyBinding{
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyI, core.ActionDebug},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyEnter, core.ActionConfirm},
	{ebiten.KeyQ, core.ActionQuit},
}

// keyState answers a per-key question about this frame.
type keyState func(ebiten.Key) bool

// readFrame builds the input frame from this frame's key transitions and
// reports whether quit was pressed. Any other key press counts as confirm
// so that it can leave the start screen. A held jump key keeps pressing
// jump, so the player bounces again on landing.
func readFrame(justPressed, justReleased, held keyState, newKeys []ebiten.Key) (core.InputFrame, bool) {
	frame := core.NewInputFrame()
	quit := false
	bound := make(map[ebiten.Key]bool, len(bindings))

	for _, b := range bindings {
		bound[b.Key] = true
		if justPressed(b.Key) {
			if b.Action == core.ActionQuit {
				quit = true
				continue
			}
			frame.Set(b.Action)
		}
		if b.Action == core.ActionJump && held(b.Key) {
			frame.Set(core.ActionJump)
		}
		if justReleased(b.Key) {
			frame.Release(b.Action)
		}
	}

	for _, k := range newKeys {
		if !bound[k] {
			frame.Set(core.ActionConfirm)
			break
		}
	}

	return frame, quit
}
