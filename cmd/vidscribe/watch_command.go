package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/internal/processor"
	"github.com/nguyentantai21042004/vidscribe/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Process existing videos, then transcribe new ones as they appear",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, ctx)
		},
	}
}

// runWatch holds the output lock for the whole session. The directory watch
// is registered before the catch-up scan so a file created in between is
// still seen; one that shows up in both is skipped the second time.
func runWatch(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	log := ctx.ensureLogger()

	// one run ID covers the whole watch session
	sessionID := uuid.NewString()
	runCtx := logger.WithRunID(cmd.Context(), sessionID)

	log.Info(runCtx, "Input: %s", displayPath(cfg.Paths.Input))
	log.Info(runCtx, "Output: %s", displayPath(cfg.Paths.Output))
	preflight(runCtx, cfg, log)

	observer := newProgressObserver(cmd.ErrOrStderr(), !ctx.flags.noProgress)
	p, err := newPipeline(runCtx, cfg, log, observer)
	if err != nil {
		return err
	}
	defer p.Close()

	unlock, err := processor.AcquireLock(cfg.Paths.Output)
	if err != nil {
		return err
	}
	defer unlock()

	handler := func(hctx context.Context, path string) error {
		start := time.Now()
		state, err := p.proc.ProcessFile(hctx, path, cfg.Paths.Output, p.size)
		log.Info(logger.WithFile(hctx, filepath.Base(path)), "Finished with state %s", state)
		p.record(hctx, sessionID, path, state, err, time.Since(start))
		return err
	}

	w, err := watcher.New(cfg.Paths.Input, handler, log, 0)
	if err != nil {
		return err
	}
	defer w.Stop()

	report, err := p.proc.ProcessDir(runCtx, cfg.Paths.Input, cfg.Paths.Output, p.size)
	if report != nil && (err == nil || report.Total() > 0) {
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	log.Info(runCtx, "Watching %s. Press Ctrl+C to stop", displayPath(cfg.Paths.Input))
	if err := w.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info(runCtx, "Watch stopped")
	return nil
}
