// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/types"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger    logger.Config   `toml:"logger"`
	Sort      SortConfig      `toml:"sort"`
	Animation AnimationConfig `toml:"animation"`
	UI        UIConfig        `toml:"ui"`
	Metrics   MetricsConfig   `toml:"metrics"`

	// Plugins holds free-form [plugins.<name>] tables.
	Plugins map[string]map[string]interface{} `toml:"plugins"`

	warnings []string
}

// SortConfig selects the algorithm and the values to sort.
type SortConfig struct {
	Algorithm    string `toml:"algorithm"`
	Values       []int  `toml:"values"`
	RandomCount  int    `toml:"random_count"` // >0 ignores Values and draws this many
	Seed         int64  `toml:"seed"`         // 0 seeds from the clock
	HistoryLimit int    `toml:"history_limit"`
}

// AnimationConfig controls frame pacing and block motion.
type AnimationConfig struct {
	TickMillis     int     `toml:"tick_ms"`
	AutoStepMillis int     `toml:"auto_step_ms"`
	Speed          float64 `toml:"speed"`
	Jitter         bool    `toml:"jitter"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme           string `toml:"theme"`
	StatusBarHeight int    `toml:"status_bar_height"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// MetricsConfig enables the prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `toml:"addr"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Sort: SortConfig{
			Algorithm: types.Bubble.String(),
			Values:    append([]int(nil), DefaultValues...),
		},
		Animation: AnimationConfig{
			TickMillis:     DefaultTickMillis,
			AutoStepMillis: DefaultAutoStepMillis,
			Speed:          DefaultSpeed,
			Jitter:         true,
		},
		UI: UIConfig{
			StatusBarHeight: StatusBarHeight,
			SystemClipboard: SystemClipboard,
		},
	}
}

// PluginValue looks up a key in a [plugins.<name>] table.
func (c *Config) PluginValue(pluginName, key string) (interface{}, bool) {
	table, ok := c.Plugins[pluginName]
	if !ok {
		return nil, false
	}
	v, ok := table[key]
	return v, ok
}

// TickInterval is the frame period.
func (a AnimationConfig) TickInterval() time.Duration {
	return time.Duration(a.TickMillis) * time.Millisecond
}

// AutoStepInterval is the delay between automatic steps.
func (a AnimationConfig) AutoStepInterval() time.Duration {
	return time.Duration(a.AutoStepMillis) * time.Millisecond
}

// AlgorithmValue returns the configured algorithm. validate guarantees it parses.
func (s SortConfig) AlgorithmValue() types.Algorithm {
	a, err := types.ParseAlgorithm(s.Algorithm)
	if err != nil {
		return types.Bubble
	}
	return a
}

// Dir returns the per-user config directory, or "" when it cannot be determined.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName)
}

// ThemesDir returns the directory scanned for theme files.
func ThemesDir() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, ThemesDirName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		// Logger is not initialised yet; this is replayed by the caller via Warnings.
		cfg.warnings = append(cfg.warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if _, err := types.ParseAlgorithm(c.Sort.Algorithm); err != nil {
		c.warn("%v, using %s", err, defaults.Sort.Algorithm)
		c.Sort.Algorithm = defaults.Sort.Algorithm
	}
	if len(c.Sort.Values) > MaxValues {
		c.warn("%d values configured, keeping the first %d", len(c.Sort.Values), MaxValues)
		c.Sort.Values = c.Sort.Values[:MaxValues]
	}
	if len(c.Sort.Values) == 0 && c.Sort.RandomCount <= 0 {
		c.Sort.Values = defaults.Sort.Values
	}
	if c.Sort.RandomCount < 0 {
		c.Sort.RandomCount = 0
	}
	if c.Sort.RandomCount > MaxValues {
		c.Sort.RandomCount = MaxValues
	}
	if c.Sort.HistoryLimit < 0 {
		c.Sort.HistoryLimit = 0
	}

	if c.Animation.TickMillis <= 0 {
		c.Animation.TickMillis = defaults.Animation.TickMillis
	}
	if c.Animation.AutoStepMillis <= 0 {
		c.Animation.AutoStepMillis = defaults.Animation.AutoStepMillis
	}
	if c.Animation.Speed <= 0 {
		c.Animation.Speed = defaults.Animation.Speed
	}

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.UI.StatusBarHeight <= 0 {
		c.UI.StatusBarHeight = defaults.UI.StatusBarHeight
	}
}

func (c *Config) warn(format string, args ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns problems found while loading, for logging once the
// logger is up.
func (c *Config) Warnings() []string { return c.warnings }

// LoadConfig applies defaults, then the file, then explicitly set flags, and
// validates the result. An empty path uses the per-user default location.
// A parse error is returned alongside the usable config.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		if dir := Dir(); dir != "" {
			effectivePath = filepath.Join(dir, DefaultConfigFileName)
		}
	}

	var loadErr error
	if effectivePath != "" {
		loadErr = loadFromFile(effectivePath, cfg)
	}

	if flags != nil {
		if err := flags.ApplyOverrides(cfg); err != nil && loadErr == nil {
			loadErr = err
		}
	}

	cfg.validate()
	return cfg, loadErr
}
