// internal/config/flags.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds values bound to command-line flags. Only flags the user
// actually set override the config file.
type Flags struct {
	ConfigFilePath string
	LogLevel       string
	LogFilePath    string
	EnableTags     string
	DisableTags    string
	EnablePkgs     string
	DisablePkgs    string
	EnableFiles    string
	DisableFiles   string

	Algorithm    string
	Values       string
	RandomCount  int
	Seed         int64
	HistoryLimit int

	TickMillis     int
	AutoStepMillis int
	Speed          float64
	NoJitter       bool

	Theme           string
	SystemClipboard bool
	MetricsAddr     string

	fs *pflag.FlagSet
}

// Register defines the flags on fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVar(&f.ConfigFilePath, "config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	fs.StringVar(&f.LogLevel, "loglevel", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFilePath, "logfile", "", "Path to write log file (use '-' for stderr)")
	fs.StringVar(&f.EnableTags, "log-tags", "", "Comma-separated list of tags to enable")
	fs.StringVar(&f.DisableTags, "log-disable-tags", "", "Comma-separated list of tags to disable")
	fs.StringVar(&f.EnablePkgs, "log-packages", "", "Comma-separated list of packages to enable")
	fs.StringVar(&f.DisablePkgs, "log-disable-packages", "", "Comma-separated list of packages to disable")
	fs.StringVar(&f.EnableFiles, "log-files", "", "Comma-separated list of files to enable")
	fs.StringVar(&f.DisableFiles, "log-disable-files", "", "Comma-separated list of files to disable")

	fs.StringVarP(&f.Algorithm, "algorithm", "a", "", "Sorting algorithm (bubble, insertion, selection)")
	fs.StringVarP(&f.Values, "values", "v", "", "Comma-separated values to sort")
	fs.IntVarP(&f.RandomCount, "random", "r", 0, "Sort this many random values instead")
	fs.Int64Var(&f.Seed, "seed", 0, "Seed for random values and drop jitter (0 uses the clock)")
	fs.IntVar(&f.HistoryLimit, "history-limit", 0, "Maximum undo depth (0 is unbounded)")

	fs.IntVar(&f.TickMillis, "tick", 0, "Frame interval in milliseconds")
	fs.IntVar(&f.AutoStepMillis, "auto-step", 0, "Auto-sort step interval in milliseconds")
	fs.Float64Var(&f.Speed, "speed", 0, "Block movement speed")
	fs.BoolVar(&f.NoJitter, "no-jitter", false, "Place blocks in their slots without the initial drop")

	fs.StringVar(&f.Theme, "theme", "", "Theme name")
	fs.BoolVar(&f.SystemClipboard, "system-clipboard", false, "Copy to the system clipboard instead of the internal register")
	fs.StringVar(&f.MetricsAddr, "metrics-addr", "", "Serve prometheus metrics on this address (e.g. :9090)")
}

// ApplyOverrides copies explicitly set flags into cfg. Cobra parses
// persistent flags through each command's merged set, so only the per-flag
// Changed bit is reliable here.
func (f *Flags) ApplyOverrides(cfg *Config) error {
	if f.fs == nil {
		return nil
	}
	var err error
	f.fs.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		switch fl.Name {
		case "loglevel":
			cfg.Logger.LogLevel = f.LogLevel
		case "logfile":
			cfg.Logger.LogFilePath = f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(f.DisableFiles)

		case "algorithm":
			cfg.Sort.Algorithm = f.Algorithm
		case "values":
			values, perr := ParseValues(f.Values)
			if perr != nil {
				err = fmt.Errorf("--values: %w", perr)
				return
			}
			cfg.Sort.Values = values
			cfg.Sort.RandomCount = 0
		case "random":
			cfg.Sort.RandomCount = f.RandomCount
		case "seed":
			cfg.Sort.Seed = f.Seed
		case "history-limit":
			cfg.Sort.HistoryLimit = f.HistoryLimit

		case "tick":
			cfg.Animation.TickMillis = f.TickMillis
		case "auto-step":
			cfg.Animation.AutoStepMillis = f.AutoStepMillis
		case "speed":
			cfg.Animation.Speed = f.Speed
		case "no-jitter":
			cfg.Animation.Jitter = !f.NoJitter

		case "theme":
			cfg.UI.Theme = f.Theme
		case "system-clipboard":
			cfg.UI.SystemClipboard = f.SystemClipboard
		case "metrics-addr":
			cfg.Metrics.Addr = f.MetricsAddr
		}
	})
	return err
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
