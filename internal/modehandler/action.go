package modehandler

import (
	"github.com/bethropolis/stepsort/internal/input"
	"github.com/bethropolis/stepsort/internal/logger"
)

// handleActionNormal runs engine and UI actions.
func (mh *ModeHandler) handleActionNormal(ae input.ActionEvent) bool {
	api := mh.api

	switch ae.Action {
	case input.ActionEnterCommandMode:
		mh.currentMode = ModeCommand
		mh.cmdBuffer = mh.cmdBuffer[:0]
		mh.statusBar.SetCommand("")
		logger.DebugTagf("input", "ModeHandler: Entering Command Mode")

	case input.ActionQuit:
		mh.quit()
		return false

	case input.ActionCancel:
		if !api.Auto() {
			return false
		}
		api.SetAuto(false)
		mh.statusBar.SetTemporaryMessage("Auto-sort paused")

	case input.ActionStep:
		if api.Auto() {
			api.SetAuto(false)
		}
		api.Step()

	case input.ActionUndo:
		api.SetAuto(false)
		if !api.Undo() {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		}

	case input.ActionReset:
		api.SetAuto(false)
		api.Reset()
		mh.statusBar.SetTemporaryMessage("Reset")

	case input.ActionToggleAuto:
		mh.Execute("auto")

	case input.ActionSelectAlgorithm:
		api.SetAuto(false)
		api.SetAlgorithm(ae.Algorithm)
		mh.statusBar.SetTemporaryMessage("%s sort", ae.Algorithm.Title())

	case input.ActionShuffle:
		mh.Execute("random")

	case input.ActionSettle:
		api.Settle()

	case input.ActionCopy:
		mh.Execute("copy")

	case input.ActionCycleTheme:
		mh.Execute("theme next")

	default:
		return false
	}
	return true
}
