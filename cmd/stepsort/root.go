package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bethropolis/stepsort/internal/app"
	"github.com/bethropolis/stepsort/internal/config"
	"github.com/bethropolis/stepsort/internal/logger"
	"github.com/spf13/cobra"
)

var flags config.Flags

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Step through bubble, insertion and selection sort one comparison at a time",
	Long: `stepsort animates a sort in the terminal. Every step either highlights
the pair being compared or performs the resulting swap, and every step can
be undone.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, closeLog, err := setup()
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Infof("Starting %s...", config.AppName)
		a, err := app.NewApp(cfg, app.Options{})
		if err != nil {
			logger.Errorf("Error initializing application: %v", err)
			return err
		}
		if err := a.Run(ctx); err != nil && err != context.Canceled {
			logger.Errorf("Application exited with error: %v", err)
			return err
		}
		logger.Infof("%s finished.", config.AppName)
		return nil
	},
}

func init() {
	flags.Register(rootCmd.PersistentFlags())
}

// setup loads the configuration and starts the logger. The returned func
// closes the log file.
func setup() (*config.Config, func(), error) {
	cfg, loadErr := config.LoadConfig(flags.ConfigFilePath, &flags)
	if cfg == nil {
		return nil, nil, loadErr
	}

	out, closeFn, err := logger.Open(cfg.Logger.LogFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging to stderr\n", err)
		out, closeFn, _ = logger.Open("-")
	}
	logger.Init(cfg.Logger, out)

	if loadErr != nil {
		logger.Warnf("Config: %v (continuing with defaults)", loadErr)
	}
	for _, w := range cfg.Warnings() {
		logger.Warnf("Config: %s", w)
	}
	logger.Debugf("Config: algorithm=%s values=%v random=%d", cfg.Sort.Algorithm, cfg.Sort.Values, cfg.Sort.RandomCount)

	return cfg, func() { _ = closeFn() }, nil
}
