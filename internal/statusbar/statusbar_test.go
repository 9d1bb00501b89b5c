package statusbar

import (
	"strings"
	"testing"
	"time"

	"github.com/bethropolis/stepsort/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const width, height = 80, 6

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

func row(s tcell.SimulationScreen, y int) string {
	cells, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(string(c.Runes))
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawStatsAndNarration(t *testing.T) {
	s := newScreen(t)
	sb := New(DefaultConfig())
	sb.SetInfo(Info{Algorithm: types.Selection, Phase: types.PhaseAction, Count: 5, Comparisons: 3, Swaps: 1, Depth: 6})
	sb.Narrate("Comparing 5 and 3 (positions 0 and 1)")

	sb.Draw(s, width, height)
	s.Show()

	assert.Equal(t, " Comparing 5 and 3 (positions 0 and 1)", row(s, height-2))
	assert.Equal(t, " Selection sort | n=5 | comparisons: 3 | swaps: 1 | undo: 6 | action", row(s, height-1))
}

func TestCompleteUsesCompleteStyle(t *testing.T) {
	s := newScreen(t)
	cfg := DefaultConfig()
	sb := New(cfg)
	sb.SetInfo(Info{Algorithm: types.Bubble, Count: 5, Comparisons: 10, Swaps: 6, Complete: true})
	sb.Draw(s, width, height)
	s.Show()

	assert.True(t, strings.HasSuffix(row(s, height-1), "| SORTED"))
	_, _, style, _ := s.GetContent(0, height-1)
	assert.Equal(t, cfg.StyleComplete, style)
}

func TestTemporaryMessageExpires(t *testing.T) {
	s := newScreen(t)
	sb := New(DefaultConfig())
	clock := time.Unix(1000, 0)
	sb.now = func() time.Time { return clock }

	sb.Narrate("narration")
	sb.SetTemporaryMessage("copied %d values", 5)
	sb.Draw(s, width, height)
	s.Show()
	assert.Equal(t, "copied 5 values", row(s, height-2))

	clock = clock.Add(5 * time.Second)
	sb.Draw(s, width, height)
	s.Show()
	assert.Equal(t, " narration", row(s, height-2))
}

func TestCommandLineWins(t *testing.T) {
	s := newScreen(t)
	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("hello")
	sb.SetCommand("algo ins")
	sb.Draw(s, width, height)
	s.Show()
	assert.Equal(t, ":algo ins", row(s, height-2))

	sb.ClearCommand()
	sb.Draw(s, width, height)
	s.Show()
	assert.Equal(t, "hello", row(s, height-2))
}

func TestSingleRowFallsBackToStats(t *testing.T) {
	s := newScreen(t)
	cfg := DefaultConfig()
	cfg.Height = 1
	sb := New(cfg)
	sb.SetInfo(Info{Algorithm: types.Insertion, Auto: true})
	sb.Draw(s, width, height)
	s.Show()
	assert.Contains(t, row(s, height-1), "Insertion sort")
	assert.Contains(t, row(s, height-1), "AUTO")
	assert.Equal(t, "", row(s, height-2))
}

func TestDrawClipsToWidth(t *testing.T) {
	s := newScreen(t)
	sb := New(DefaultConfig())
	sb.Narrate(strings.Repeat("x", 60))
	sb.Draw(s, 10, height)
	s.Show()
	assert.Equal(t, " xxxxxxxxx", row(s, height-2))
}
