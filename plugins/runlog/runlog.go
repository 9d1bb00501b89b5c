package runlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/stepsort/internal/event"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/plugin"
)

// Ensure RunLog implements plugin.Plugin
var _ plugin.Plugin = (*RunLog)(nil)

const (
	// Default configuration values
	defaultEnabled = false
	defaultPath    = "stepsort-runs.log"

	queueSize = 32
)

// RunLog appends one line per finished sort to a file.
type RunLog struct {
	api plugin.API

	// Configuration
	mutex   sync.RWMutex // Protects the config fields below
	enabled bool
	path    string

	// Runtime state
	records  chan string
	stopChan chan struct{}  // Signals the writer goroutine to stop
	wg       sync.WaitGroup // Waits for the goroutine to finish
	now      func() time.Time
}

// New creates a new instance of the RunLog plugin.
func New() plugin.Plugin {
	return &RunLog{
		enabled: defaultEnabled,
		path:    defaultPath,
		now:     time.Now,
	}
}

// Name returns the unique name of the plugin.
func (p *RunLog) Name() string {
	return "runlog"
}

// Initialize reads configuration and starts the writer if enabled.
func (p *RunLog) Initialize(api plugin.API) error {
	p.api = api
	pluginName := p.Name()

	p.mutex.Lock()
	if enabledVal, ok := api.GetPluginConfigValue(pluginName, "enabled"); ok {
		if boolVal, isBool := enabledVal.(bool); isBool {
			p.enabled = boolVal
		} else {
			logger.Warnf("%s: Invalid type for 'enabled' config (%T), using default (%v)", pluginName, enabledVal, p.enabled)
		}
	}
	if pathVal, ok := api.GetPluginConfigValue(pluginName, "path"); ok {
		if strVal, isStr := pathVal.(string); isStr && strings.TrimSpace(strVal) != "" {
			p.path = strVal
		} else {
			logger.Warnf("%s: Invalid 'path' config (%v), using default (%s)", pluginName, pathVal, p.path)
		}
	}
	isEnabled := p.enabled
	path := p.path
	p.mutex.Unlock()

	logger.Infof("%s initialized. Enabled: %v, Path: %s", pluginName, isEnabled, path)
	if !isEnabled {
		return nil
	}

	p.records = make(chan string, queueSize)
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go p.writerLoop(path)

	api.SubscribeEvent(event.TypeSortComplete, p.handleSortComplete)
	return nil
}

// Shutdown stops the writer after it has flushed queued records.
func (p *RunLog) Shutdown() error {
	p.mutex.RLock()
	isEnabled := p.enabled
	p.mutex.RUnlock()

	if isEnabled && p.stopChan != nil {
		close(p.stopChan)
		p.wg.Wait()
		p.stopChan = nil
		logger.Debugf("%s: writer stopped.", p.Name())
	}
	return nil
}

func (p *RunLog) handleSortComplete(e event.Event) bool {
	data, ok := e.Data.(event.SortCompleteData)
	if !ok {
		return false
	}
	line := Format(p.now(), data, p.api.Values())
	select {
	case p.records <- line:
	default:
		logger.Warnf("%s: queue full, dropping record", p.Name())
	}
	return false
}

// Format renders one record line.
func Format(at time.Time, data event.SortCompleteData, values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s algorithm=%s n=%d comparisons=%d swaps=%d result=%s",
		at.Format(time.RFC3339), data.Algorithm, len(values), data.Comparisons, data.Swaps, strings.Join(parts, ","))
}

func (p *RunLog) writerLoop(path string) {
	defer p.wg.Done()

	for {
		select {
		case line := <-p.records:
			p.write(path, line)
		case <-p.stopChan:
			// Drain what is already queued
			for {
				select {
				case line := <-p.records:
					p.write(path, line)
				default:
					return
				}
			}
		}
	}
}

func (p *RunLog) write(path, line string) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Errorf("%s: open %s: %v", p.Name(), path, err)
		return
	}
	defer f.Close()
	if _, err := fmt.Fprintln(f, line); err != nil {
		logger.Errorf("%s: write %s: %v", p.Name(), path, err)
	}
}
