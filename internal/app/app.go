// Package app provides application initialization and the interactive workflows.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/guttosm/rocket-sim/config"
	"github.com/guttosm/rocket-sim/internal/console"
	"github.com/guttosm/rocket-sim/internal/i18n"
	"github.com/guttosm/rocket-sim/internal/logger"
	"github.com/guttosm/rocket-sim/internal/metrics"
)

// Workflow modes.
const (
	ModeRocket = "rocket"
	ModeStudy  = "study"
)

// ErrUnknownMode is returned when Run is asked for a workflow that does not exist.
var ErrUnknownMode = errors.New("unknown mode")

// Run initializes the logger and services, then runs the workflow named by
// mode as a dialogue over in and out. Metrics are written to the configured
// textfile once the workflow ends.
func Run(ctx context.Context, cfg config.Config, mode string, in io.Reader, out io.Writer) (err error) {
	InitializeLogger(cfg.Log)

	log := logger.WithContext(map[string]interface{}{
		"run_id": uuid.NewString(),
		"mode":   mode,
	})

	defer func() {
		if werr := metrics.WriteTextfile(cfg.Metrics.TextfilePath); werr != nil {
			log.Error().Err(werr).Str("path", cfg.Metrics.TextfilePath).Msg("Failed to write metrics")
			if err == nil {
				err = fmt.Errorf("write metrics: %w", werr)
			}
		}
	}()

	translator := i18n.GetTranslator()
	prompter := console.NewPrompter(in, out, translator, cfg.Locale)
	components := InitializeServices(cfg, console.NewWriterSink(out), log)

	log.Info().Str("locale", cfg.Locale).Msg("Starting workflow")

	switch mode {
	case ModeRocket:
		err = RunRocket(ctx, prompter, components)
	case ModeStudy:
		err = RunStudy(prompter)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	if err != nil {
		log.Error().Err(err).Msg("Workflow failed")
		return err
	}

	log.Info().Msg("Workflow finished")
	return nil
}
