// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/stepsort/internal/theme"
	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style // Narration and temporary messages
	StyleCommand   tcell.Style // Command line input
	StyleComplete  tcell.Style // Stats line once sorted
	MessageTimeout time.Duration
	Height         int // 1 merges the message and stats lines
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		StyleCommand:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		StyleComplete:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
		Height:         2,
	}
}

// ConfigFromTheme takes the status styles from th and keeps the rest of base.
func ConfigFromTheme(base Config, th *theme.Theme) Config {
	base.StyleDefault = th.GetStyle("StatusBar")
	base.StyleMessage = th.GetStyle("StatusBarMessage")
	base.StyleCommand = th.GetStyle("StatusBarCommand")
	base.StyleComplete = th.GetStyle("StatusBarComplete")
	return base
}

// Info is the engine summary shown on the stats line.
type Info struct {
	Algorithm   types.Algorithm
	Phase       types.Phase
	Count       int
	Comparisons int
	Swaps       int
	Depth       int
	Auto        bool
	Complete    bool
}

// StatusBar shows engine stats, the latest narration line, temporary
// messages and the command line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	info      Info
	narration string

	tempMessage     string
	tempMessageTime time.Time

	command       string
	commandActive bool
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetConfig swaps styles, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// Height is the number of rows Draw uses.
func (sb *StatusBar) Height() int {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if sb.config.Height < 1 {
		return 1
	}
	if sb.config.Height > 2 {
		return 2
	}
	return sb.config.Height
}

// SetInfo updates the stats line.
func (sb *StatusBar) SetInfo(info Info) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// Narrate records the latest engine narration line.
func (sb *StatusBar) Narrate(msg string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.narration = msg
}

// Narration returns the latest narration line.
func (sb *StatusBar) Narration() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.narration
}

// SetTemporaryMessage displays a message for the configured duration. It
// takes precedence over narration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// SetCommand shows the command line with the given input.
func (sb *StatusBar) SetCommand(input string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.command = input
	sb.commandActive = true
}

// ClearCommand hides the command line.
func (sb *StatusBar) ClearCommand() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.command = ""
	sb.commandActive = false
}

// statsText builds the stats line.
func (sb *StatusBar) statsText() string {
	info := sb.info
	parts := []string{
		fmt.Sprintf(" %s sort", info.Algorithm.Title()),
		fmt.Sprintf("n=%d", info.Count),
		fmt.Sprintf("comparisons: %d", info.Comparisons),
		fmt.Sprintf("swaps: %d", info.Swaps),
		fmt.Sprintf("undo: %d", info.Depth),
	}
	switch {
	case info.Complete:
		parts = append(parts, "SORTED")
	case info.Auto:
		parts = append(parts, "AUTO", info.Phase.String())
	default:
		parts = append(parts, info.Phase.String())
	}
	return strings.Join(parts, " | ")
}

// messageLine returns the text and style of the message row, expiring a
// stale temporary message.
func (sb *StatusBar) messageLine() (string, tcell.Style, bool) {
	if sb.commandActive {
		return ":" + sb.command, sb.config.StyleCommand, true
	}
	if !sb.tempMessageTime.IsZero() {
		if sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout {
			return sb.tempMessage, sb.config.StyleMessage, true
		}
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if sb.narration != "" {
		return " " + sb.narration, sb.config.StyleMessage, true
	}
	return "", sb.config.StyleDefault, false
}

// Draw renders the status rows at the bottom of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	rows := sb.Height()
	if height < rows || width <= 0 {
		return
	}

	sb.mu.Lock()
	msg, msgStyle, hasMsg := sb.messageLine()
	stats := sb.statsText()
	statsStyle := sb.config.StyleDefault
	if sb.info.Complete {
		statsStyle = sb.config.StyleComplete
	}
	sb.mu.Unlock()

	if rows == 1 {
		if hasMsg {
			drawLine(screen, height-1, width, msg, msgStyle)
		} else {
			drawLine(screen, height-1, width, stats, statsStyle)
		}
		return
	}
	drawLine(screen, height-2, width, msg, msgStyle)
	drawLine(screen, height-1, width, stats, statsStyle)
}

// drawLine fills row y and writes text by grapheme cluster, clipping at width.
func drawLine(screen tcell.Screen, y, width int, text string, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		if runes := gr.Runes(); len(runes) > 0 {
			screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
}
