package modehandler

import (
	"strings"

	"github.com/bethropolis/stepsort/internal/input"
	"github.com/bethropolis/stepsort/internal/logger"
)

// handleActionCommand edits and runs the command line.
func (mh *ModeHandler) handleActionCommand(ae input.ActionEvent) bool {
	switch {
	case ae.Rune != 0:
		// Mapped keys still type their rune here
		mh.cmdBuffer = append(mh.cmdBuffer, ae.Rune)

	case ae.Action == input.ActionDeleteBackward:
		if len(mh.cmdBuffer) == 0 {
			mh.leaveCommandMode()
			logger.DebugTagf("input", "ModeHandler: Exiting Command Mode via Backspace")
			return true
		}
		mh.cmdBuffer = mh.cmdBuffer[:len(mh.cmdBuffer)-1]

	case ae.Action == input.ActionConfirm:
		cmd := string(mh.cmdBuffer)
		mh.leaveCommandMode()
		mh.Execute(cmd)
		return true

	case ae.Action == input.ActionCancel:
		mh.leaveCommandMode()
		logger.DebugTagf("input", "ModeHandler: Canceled Command Mode via Escape")
		return true

	case ae.Action == input.ActionQuit:
		mh.leaveCommandMode()
		mh.quit()
		return false

	default:
		return false
	}

	mh.statusBar.SetCommand(string(mh.cmdBuffer))
	return true
}

func (mh *ModeHandler) leaveCommandMode() {
	mh.currentMode = ModeNormal
	mh.cmdBuffer = mh.cmdBuffer[:0]
	mh.statusBar.ClearCommand()
}

// Execute parses and runs a command line such as "algo selection". Errors
// are reported on the status bar.
func (mh *ModeHandler) Execute(cmdStr string) {
	parts := strings.Fields(cmdStr)
	if len(parts) == 0 {
		return
	}
	cmdName, args := parts[0], parts[1:]

	cmdFunc, exists := mh.commands[cmdName]
	if !exists {
		mh.statusBar.SetTemporaryMessage("Unknown command: %s", cmdName)
		return
	}
	logger.DebugTagf("command", "ModeHandler: Executing command ':%s' with args %v", cmdName, args)
	if err := cmdFunc(args); err != nil {
		mh.statusBar.SetTemporaryMessage("Error executing command '%s': %v", cmdName, err)
	}
}
