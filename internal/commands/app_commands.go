// Package commands holds the built-in colon commands.
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/plugin"
	"github.com/bethropolis/stepsort/internal/types"
)

// DefaultRandomCount is used by :random without an argument on an empty run.
const DefaultRandomCount = 8

// RegisterAppCommands registers every built-in command.
func RegisterAppCommands(api plugin.API) {
	RegisterThemeCommands(api, api)

	builtins := map[string]plugin.CommandFunc{
		"algo":   func(args []string) error { return algoCommand(api, args) },
		"values": func(args []string) error { return valuesCommand(api, args) },
		"random": func(args []string) error { return randomCommand(api, args) },
		"reset":  func(args []string) error { api.Reset(); api.SetStatusMessage("Reset"); return nil },
		"auto":   func(args []string) error { return autoCommand(api, args) },
		"step":   func(args []string) error { return repeatCommand(api, args, "step", api.Step) },
		"undo":   func(args []string) error { return repeatCommand(api, args, "undo", api.Undo) },
		"copy":   func(args []string) error { return copyCommand(api) },
	}
	for name, fn := range builtins {
		if err := api.RegisterCommand(name, fn); err != nil {
			logger.Warnf("Failed to register ':%s' command: %v", name, err)
		}
	}
}

func algoCommand(api plugin.API, args []string) error {
	if len(args) == 0 {
		api.SetStatusMessage("Algorithm: %s", api.Stats().Algorithm)
		return nil
	}
	a, err := types.ParseAlgorithm(args[0])
	if err != nil {
		return err
	}
	api.SetAlgorithm(a)
	api.SetStatusMessage("Algorithm set to %s", a)
	return nil
}

func valuesCommand(api plugin.API, args []string) error {
	if len(args) == 0 {
		api.SetStatusMessage("Values: %s", config.FormatValues(api.Values()))
		return nil
	}
	values, err := config.ParseValues(strings.Join(args, ","))
	if err != nil {
		return err
	}
	if err := api.LoadValues(values); err != nil {
		return err
	}
	api.SetStatusMessage("Loaded %d values", len(values))
	return nil
}

func randomCommand(api plugin.API, args []string) error {
	count := api.Stats().Count
	if count == 0 {
		count = DefaultRandomCount
	}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > config.MaxValues {
			return fmt.Errorf("%w: count must be 1-%d", config.ErrInvalidValue, config.MaxValues)
		}
		count = n
	}
	if err := api.LoadRandom(count); err != nil {
		return err
	}
	api.SetStatusMessage("Loaded %d random values", count)
	return nil
}

func autoCommand(api plugin.API, args []string) error {
	on := !api.Auto()
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			on = true
		case "off", "false", "0":
			on = false
		default:
			return fmt.Errorf("expected on or off, got %q", args[0])
		}
	}
	api.SetAuto(on)
	if on {
		api.SetStatusMessage("Auto-sort on")
	} else {
		api.SetStatusMessage("Auto-sort paused")
	}
	return nil
}

// repeatCommand runs op up to n times, stopping early when it reports no
// further progress. Animations are finished between repetitions.
func repeatCommand(api plugin.API, args []string, name string, op func() bool) error {
	n := 1
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 1 {
			return fmt.Errorf("%s count must be a positive integer", name)
		}
		n = v
	}
	done := 0
	for done < n {
		api.Settle()
		ok := op()
		done++
		if !ok {
			break
		}
	}
	api.Settle()
	s := api.Stats()
	api.SetStatusMessage("%s x%d: comparisons %d, swaps %d", name, done, s.Comparisons, s.Swaps)
	return nil
}

// Summary is the text :copy puts on the clipboard.
func Summary(s plugin.Stats, values []int) string {
	state := "in progress"
	if s.Complete {
		state = "sorted"
	}
	return fmt.Sprintf("%s sort (%s): %s | comparisons %d, swaps %d",
		s.Algorithm.Title(), state, config.FormatValues(values), s.Comparisons, s.Swaps)
}

func copyCommand(api plugin.API) error {
	text := Summary(api.Stats(), api.Values())
	if api.Copy(text) {
		api.SetStatusMessage("Copied to clipboard")
	} else {
		api.SetStatusMessage("Copied to internal register")
	}
	return nil
}
