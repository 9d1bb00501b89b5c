package app

import (
	"context"
	"fmt"
	"io"

	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/core"
	"github.com/bethropolis/stepsort/internal/item"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/bethropolis/stepsort/internal/narration"
)

// HeadlessOptions tune RunHeadless output.
type HeadlessOptions struct {
	Tail int // Print only the last Tail narration lines; 0 streams them all
}

// RunHeadless sorts the configured values over static items, with no
// animation, writing narration and the final counters to out.
func RunHeadless(ctx context.Context, cfg *config.Config, out io.Writer, opts HeadlessOptions) error {
	values := cfg.Sort.InitialValues(config.NewRand(cfg.Sort.Seed))
	if len(values) == 0 {
		return config.ErrNoValues
	}

	engine := core.NewEngine(core.Config{
		Algorithm:    cfg.Sort.AlgorithmValue(),
		HistoryLimit: cfg.Sort.HistoryLimit,
	})

	var recorder *narration.Recorder
	if opts.Tail > 0 {
		recorder = narration.NewRecorder(opts.Tail)
		engine.SetNarrator(recorder)
	} else {
		engine.SetNarrator(narration.NarratorFunc(func(msg string) {
			fmt.Fprintln(out, msg)
		}))
	}

	fmt.Fprintf(out, "%s sort of %s\n", engine.Algorithm().Title(), config.FormatValues(values))
	engine.Configure(item.StaticSeq(values...))

	steps := 0
	for engine.Step() {
		steps++
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	logger.Infof("Headless: %s finished after %d steps", engine.Algorithm(), steps)

	if recorder != nil {
		for _, line := range recorder.Lines() {
			fmt.Fprintln(out, line)
		}
	}
	fmt.Fprintf(out, "Result: %s\n", config.FormatValues(engine.Values()))
	fmt.Fprintf(out, "Comparisons: %d\nSwaps: %d\n", engine.ComparisonCount(), engine.SwapCount())
	return nil
}
