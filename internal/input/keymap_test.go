package input

import (
	"testing"

	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEvent(t *testing.T) {
	p := NewInputProcessor()
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want ActionEvent
	}{
		{"space steps", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionEvent{Action: ActionStep, Rune: ' '}},
		{"right arrow steps", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionEvent{Action: ActionStep}},
		{"u undoes", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), ActionEvent{Action: ActionUndo, Rune: 'u'}},
		{"ctrl-z undoes", tcell.NewEventKey(tcell.KeyCtrlZ, 0, tcell.ModCtrl), ActionEvent{Action: ActionUndo}},
		{"2 picks insertion", tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone),
			ActionEvent{Action: ActionSelectAlgorithm, Rune: '2', Algorithm: types.Insertion}},
		{"3 picks selection", tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone),
			ActionEvent{Action: ActionSelectAlgorithm, Rune: '3', Algorithm: types.Selection}},
		{"colon", tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModNone), ActionEvent{Action: ActionEnterCommandMode, Rune: ':'}},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionEvent{Action: ActionInsertRune, Rune: 'z'}},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt), ActionEvent{Action: ActionUnknown}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionEvent{Action: ActionConfirm}},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionEvent{Action: ActionCancel}},
		{"f1", tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), ActionEvent{Action: ActionUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.ProcessEvent(tt.ev))
		})
	}
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "toggle-auto", ActionToggleAuto.String())
	assert.Equal(t, "unknown", Action(999).String())
}
