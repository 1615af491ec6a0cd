package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"aura-ai/internal/edit"
)

var ErrNoInstructions = errors.New("no instructions to generate")

type Options struct {
	Editor edit.Editor
	Logger *slog.Logger
}

// Orchestrator fans one source image out to one edit request per
// instruction and joins the results in instruction order.
type Orchestrator struct {
	editor edit.Editor
	logger *slog.Logger
}

func New(opts Options) *Orchestrator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Orchestrator{editor: opts.Editor, logger: logger}
}

// Run issues every request concurrently. The first failure cancels the
// rest and no partial results are returned.
func (o *Orchestrator) Run(ctx context.Context, img edit.Image, instructions []string) ([]edit.Result, error) {
	if len(instructions) == 0 {
		return nil, ErrNoInstructions
	}

	started := time.Now()
	results := make([]edit.Result, len(instructions))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, instruction := range instructions {
		eg.Go(func() error {
			t0 := time.Now()
			res, err := o.editor.EditImage(egCtx, img, instruction)
			if err != nil {
				o.logger.Warn("edit request failed",
					"index", i,
					"duration", time.Since(t0),
					"kind", edit.KindOf(err),
					"err", err,
				)
				return fmt.Errorf("request %d: %w", i, err)
			}
			o.logger.Debug("edit request done", "index", i, "duration", time.Since(t0))
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		o.logger.Error("batch failed", "count", len(instructions), "duration", time.Since(started), "err", err)
		return nil, err
	}

	o.logger.Info("batch done", "count", len(instructions), "duration", time.Since(started))
	return results, nil
}
