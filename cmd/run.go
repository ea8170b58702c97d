package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/abhisek/composition/internal/app"
	"github.com/abhisek/composition/internal/clock"
	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/logging"
	"github.com/abhisek/composition/internal/plain"
	"github.com/abhisek/composition/internal/problemgen"
)

// plainDefaultLevel is played in plain mode when no level is configured.
const plainDefaultLevel = levels.LevelEasy

// runSession resolves configuration, builds the generator and launches
// either the TUI or plain mode.
func runSession(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	level, hasLevel, err := cfg.ResolveLevel()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Open(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	genCfg := problemgen.DefaultConfig()
	genCfg.Seed = cfg.Seed
	gen := problemgen.WithLogging(problemgen.New(genCfg), logger)

	if !cfg.Plain {
		return app.Run(app.Options{
			Level:     level,
			HasLevel:  hasLevel,
			Generator: gen,
			Logger:    logger,
		})
	}

	if !hasLevel {
		level = plainDefaultLevel
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, _, err = plain.Run(ctx, plain.Options{
		Level:     level,
		In:        cmd.InOrStdin(),
		Out:       cmd.OutOrStdout(),
		Clock:     clock.NewTicker(),
		Generator: gen,
		Logger:    logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
