// internal/input/keymap.go
package input

import (
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps printable keys to actions.
type RuneKeymap map[rune]ActionEvent

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyRight] = ActionStep
	p.keymap[tcell.KeyLeft] = ActionUndo
	p.keymap[tcell.KeyEnter] = ActionConfirm
	p.keymap[tcell.KeyBackspace] = ActionDeleteBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteBackward
	p.keymap[tcell.KeyEscape] = ActionCancel
	p.keymap[tcell.KeyCtrlC] = ActionQuit
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlR] = ActionReset
	p.keymap[tcell.KeyCtrlT] = ActionCycleTheme

	p.bindRune(' ', ActionStep)
	p.bindRune('l', ActionStep)
	p.bindRune('h', ActionUndo)
	p.bindRune('u', ActionUndo)
	p.bindRune('a', ActionToggleAuto)
	p.bindRune('r', ActionReset)
	p.bindRune('n', ActionShuffle)
	p.bindRune('f', ActionSettle)
	p.bindRune('y', ActionCopy)
	p.bindRune('t', ActionCycleTheme)
	p.bindRune('q', ActionQuit)
	p.bindRune(':', ActionEnterCommandMode)

	for i, a := range types.Algorithms {
		p.runeKeymap[rune('1'+i)] = ActionEvent{Action: ActionSelectAlgorithm, Algorithm: a}
	}
}

func (p *InputProcessor) bindRune(r rune, a Action) {
	p.runeKeymap[r] = ActionEvent{Action: a}
}

// ProcessEvent takes a tcell key event and returns the corresponding
// ActionEvent. The mode handler decides what the action means in its mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// Ctrl+letter keys already carry the modifier in the key itself
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	if key == tcell.KeyRune {
		if mod&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return ActionEvent{Action: ActionUnknown}
		}
		r := ev.Rune()
		if mapped, ok := p.runeKeymap[r]; ok {
			mapped.Rune = r
			return mapped
		}
		return ActionEvent{Action: ActionInsertRune, Rune: r}
	}

	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	return ActionEvent{Action: ActionUnknown}
}
