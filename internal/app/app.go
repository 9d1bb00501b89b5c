// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/bethropolis/stepsort/internal/block"
	"github.com/bethropolis/stepsort/internal/clipboard"
	"github.com/bethropolis/stepsort/internal/commands"
	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/core"
	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/input"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/metrics"
	"github.com/bethropolis/stepsort/internal/modehandler"
	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/internal/statusbar"
	"github.com/bethropolis/stepsort/internal/theme"
	"github.com/bethropolis/stepsort/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App owns the engine, the blocks it sorts and the terminal. Every engine
// call happens on the goroutine running Run.
type App struct {
	cfg *config.Config

	tuiManager    *tui.TUI
	engine        *core.Engine
	blocks        *block.Set
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	clipboard     *clipboard.Manager
	metrics       *metrics.Collector
	metricsServer *http.Server
	api           *appAPI

	values []int // Order a reset restores
	rng    *rand.Rand

	auto         bool
	lastAutoStep time.Time
	lastFrame    time.Time

	quit   chan struct{}
	events chan tcell.Event
}

// Options override pieces of the environment, mainly for tests.
type Options struct {
	Screen  tcell.Screen // Defaults to the real terminal
	Plugins []plugin.Plugin
}

// NewApp creates and wires the application.
func NewApp(cfg *config.Config, opts Options) (*App, error) {
	themeManager := theme.NewManager(config.ThemesDir())
	if cfg.UI.Theme != "" {
		if err := themeManager.SetTheme(cfg.UI.Theme); err != nil {
			logger.Warnf("App: %v, keeping %s", err, themeManager.Current().Name)
		}
	}
	defStyle := themeManager.Current().GetStyle("Default")

	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, defStyle)
	} else {
		tuiManager, err = tui.New(defStyle)
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	statusBar := statusbar.New(statusbar.ConfigFromTheme(statusBarConfig(cfg), themeManager.Current()))

	eventManager := event.NewManager()
	engine := core.NewEngine(core.Config{
		Algorithm:    cfg.Sort.AlgorithmValue(),
		HistoryLimit: cfg.Sort.HistoryLimit,
	})
	engine.SetEventManager(eventManager)
	engine.SetNarrator(statusBar)

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		engine:        engine,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		themeManager:  themeManager,
		clipboard:     clipboard.NewManager(cfg.UI.SystemClipboard),
		metrics:       metrics.New(),
		rng:           config.NewRand(cfg.Sort.Seed),
		quit:          make(chan struct{}),
		events:        make(chan tcell.Event, 16),
	}
	a.api = &appAPI{app: a}
	a.metrics.Attach(eventManager)

	a.modeHandler = modehandler.New(modehandler.Config{
		API:            a.api,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      statusBar,
		QuitSignal:     a.quit,
	})

	eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
	eventManager.Subscribe(event.TypeSortComplete, a.handleSortComplete)

	commands.RegisterAppCommands(a.api)

	plugins := opts.Plugins
	if plugins == nil {
		plugins = defaultPlugins()
	}
	if err := registerPlugins(a.pluginManager, plugins); err != nil {
		logger.Warnf("App: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.api); err != nil {
		logger.Warnf("App: %v", err)
	}

	a.load(cfg.Sort.InitialValues(a.rng))
	return a, nil
}

// load spawns fresh blocks for values and hands them to the engine.
func (a *App) load(values []int) {
	a.values = append([]int(nil), values...)
	a.blocks = block.NewSet(values, block.Options{
		Speed:  a.cfg.Animation.Speed,
		Jitter: a.cfg.Animation.Jitter,
		Rand:   a.rng,
	})
	a.auto = false
	a.engine.Configure(a.blocks.Items())
	logger.Infof("App: loaded %d values for %s sort", len(values), a.engine.Algorithm())
}

// Run starts the event reader and the main loop, and blocks until quit.
func (a *App) Run(ctx context.Context) error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	if addr := a.cfg.Metrics.Addr; addr != "" {
		a.metricsServer = a.metrics.Serve(addr)
		defer a.stopMetrics()
	}

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("stepsort - Space step | u undo | a auto | r reset | 1-3 algorithm | : command | q quit")

	ticker := time.NewTicker(a.cfg.Animation.TickInterval())
	defer ticker.Stop()
	a.lastFrame = time.Now()
	a.draw()

	for {
		select {
		case <-ctx.Done():
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			return ctx.Err()
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) {
				a.draw()
			}
		case now := <-ticker.C:
			if a.frame(now) {
				a.draw()
			}
		}
	}
}

// eventLoop forwards terminal events to the main loop.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether to redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

// frame advances animations and, in auto mode, the engine. It reports
// whether anything changed on screen.
func (a *App) frame(now time.Time) bool {
	dt := now.Sub(a.lastFrame)
	a.lastFrame = now
	moving := a.blocks.Tick(dt)

	stepped := false
	if a.auto && !moving && now.Sub(a.lastAutoStep) >= a.cfg.Animation.AutoStepInterval() {
		a.lastAutoStep = now
		if !a.engine.Step() {
			a.auto = false
		}
		stepped = true
	}
	return moving || stepped
}

func (a *App) stopMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := a.metricsServer.Shutdown(ctx); err != nil {
		logger.Warnf("App: metrics server shutdown: %v", err)
	}
}

// --- Event Handlers ---

func (a *App) handleThemeChanged(e event.Event) bool {
	th := a.themeManager.Current()
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(statusBarConfig(a.cfg), th))
	a.tuiManager.SetStyle(th.GetStyle("Default"))
	return false
}

func (a *App) handleSortComplete(e event.Event) bool {
	if data, ok := e.Data.(event.SortCompleteData); ok {
		logger.Infof("App: %s sort complete after %d comparisons, %d swaps", data.Algorithm, data.Comparisons, data.Swaps)
	}
	a.auto = false
	return false
}

func statusBarConfig(cfg *config.Config) statusbar.Config {
	sb := statusbar.DefaultConfig()
	sb.MessageTimeout = config.MessageTimeout
	sb.Height = cfg.UI.StatusBarHeight
	return sb
}
