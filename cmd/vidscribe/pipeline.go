package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/vidscribe/internal/config"
	"github.com/nguyentantai21042004/vidscribe/internal/deps"
	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/extractor"
	"github.com/nguyentantai21042004/vidscribe/internal/history"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/internal/processor"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
	"github.com/nguyentantai21042004/vidscribe/pkg/executor"
)

// pipeline bundles a configured processor with the resources it owns.
type pipeline struct {
	proc    processor.Processor
	size    recognizer.ModelSize
	backend string
	history *history.Store
	logger  logger.Logger
}

func newPipeline(ctx context.Context, cfg *config.Config, log logger.Logger, observer processor.Observer) (*pipeline, error) {
	size, err := recognizer.ParseModelSize(cfg.Recognizer.Model)
	if err != nil {
		return nil, err
	}

	exec := executor.New()
	rec, err := recognizer.New(cfg.Recognizer, exec, log)
	if err != nil {
		return nil, err
	}
	ext := extractor.New(exec, log, cfg.FFmpeg.BinaryPath, cfg.Paths.Temp)

	p := &pipeline{size: size, backend: rec.Name(), logger: log}
	opts := []processor.Option{processor.WithObserver(observer)}
	if cfg.History.Enabled {
		store, err := history.Open(cfg.HistoryPath())
		if err != nil {
			// an unusable ledger disables history, not the run
			log.Warn(ctx, "History disabled: %v", err)
		} else {
			p.history = store
			opts = append(opts, processor.WithRecorder(store))
		}
	}

	p.proc = processor.New(ext, rec, log, opts...)
	return p, nil
}

func (p *pipeline) Close() error {
	if p.history == nil {
		return nil
	}
	return p.history.Close()
}

// record writes a watch-mode outcome to the ledger when history is enabled.
func (p *pipeline) record(ctx context.Context, runID, path string, state processor.State, err error, took time.Duration) {
	if p.history == nil {
		return
	}
	entry := history.Entry{
		RunID:    runID,
		Path:     path,
		State:    state.String(),
		Backend:  p.backend,
		Model:    p.size.String(),
		Duration: took,
	}
	if err != nil {
		entry.Kind = errs.KindOf(err).String()
		entry.Message = err.Error()
	}
	if err := p.history.Record(ctx, entry); err != nil {
		p.logger.Warn(ctx, "Failed to record history for %s: %v", filepath.Base(path), err)
	}
}

// preflight logs a warning for every missing external tool.
func preflight(ctx context.Context, cfg *config.Config, log logger.Logger) {
	for _, s := range deps.Missing(deps.CheckBinaries(deps.Requirements(cfg))) {
		log.Warn(ctx, "%s (%s) unavailable: %s", s.Name, s.Description, s.Detail)
	}
}

func displayPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
