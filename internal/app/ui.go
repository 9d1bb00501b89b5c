package app

import (
	"fmt"

	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/statusbar"
	"github.com/bethropolis/stepsort/internal/tui"
)

// draw redraws the whole screen.
func (a *App) draw() {
	a.updateStatusBarContent()

	th := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	viewHeight := height - a.statusBar.Height()

	logger.DebugTagf("draw", "draw: Screen Size (%d x %d), ViewHeight: %d", width, height, viewHeight)

	a.tuiManager.Clear()
	tui.DrawScene(screen, th, tui.Scene{
		Title:  fmt.Sprintf("stepsort · %s sort", a.engine.Algorithm().Title()),
		Blocks: a.blocks.Blocks(),
		Min:    a.blocks.MinValue(),
		Max:    a.blocks.MaxValue(),
	}, width, viewHeight)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// updateStatusBarContent pushes engine state to the status bar.
func (a *App) updateStatusBarContent() {
	e := a.engine
	a.statusBar.SetInfo(statusbar.Info{
		Algorithm:   e.Algorithm(),
		Phase:       e.Phase(),
		Count:       e.Len(),
		Comparisons: e.ComparisonCount(),
		Swaps:       e.SwapCount(),
		Depth:       e.HistoryDepth(),
		Auto:        a.auto,
		Complete:    e.IsComplete(),
	})
}
