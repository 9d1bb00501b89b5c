// internal/input/action.go
package input

import "github.com/bethropolis/stepsort/internal/types"

// Action represents an operation requested by the user.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit

	// --- Engine ---
	ActionStep
	ActionUndo
	ActionReset
	ActionToggleAuto
	ActionSelectAlgorithm // Requires Algorithm argument
	ActionShuffle         // Fresh random values
	ActionSettle          // Finish running animations at once

	// --- Other ---
	ActionCopy
	ActionCycleTheme

	// --- Line editing, interpreted by the active mode ---
	ActionEnterCommandMode
	ActionInsertRune
	ActionConfirm
	ActionDeleteBackward
	ActionCancel
)

var actionNames = map[Action]string{
	ActionUnknown:          "unknown",
	ActionQuit:             "quit",
	ActionStep:             "step",
	ActionUndo:             "undo",
	ActionReset:            "reset",
	ActionToggleAuto:       "toggle-auto",
	ActionSelectAlgorithm:  "select-algorithm",
	ActionShuffle:          "shuffle",
	ActionSettle:           "settle",
	ActionCopy:             "copy",
	ActionCycleTheme:       "cycle-theme",
	ActionEnterCommandMode: "command-mode",
	ActionInsertRune:       "insert-rune",
	ActionConfirm:          "confirm",
	ActionDeleteBackward:   "delete-backward",
	ActionCancel:           "cancel",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionEvent is a decoded key press. Rune is set for every printable key,
// mapped or not, so line-editing modes can still type it.
type ActionEvent struct {
	Action    Action
	Rune      rune
	Algorithm types.Algorithm // For ActionSelectAlgorithm
}
