package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/vidscribe/internal/processor"
)

var errFilesFailed = errors.New("one or more files failed")

func runBatchCommand(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	log := ctx.ensureLogger()
	runCtx := cmd.Context()

	log.Info(runCtx, "Input: %s", displayPath(cfg.Paths.Input))
	log.Info(runCtx, "Output: %s", displayPath(cfg.Paths.Output))
	log.Info(runCtx, "Recognizer: %s (%s model)", cfg.Recognizer.Backend, cfg.Recognizer.Model)
	preflight(runCtx, cfg, log)

	observer := newProgressObserver(cmd.ErrOrStderr(), !ctx.flags.noProgress)
	p, err := newPipeline(runCtx, cfg, log, observer)
	if err != nil {
		return err
	}
	defer p.Close()

	report, runErr := p.proc.RunBatch(runCtx, cfg.Paths.Input, cfg.Paths.Output, p.size)
	if report != nil && (runErr == nil || report.Total() > 0) {
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))
	}
	if runErr != nil {
		return runErr
	}
	if report.HasFailures() {
		return errFilesFailed
	}
	return nil
}

func renderReport(r *processor.Report) string {
	var b strings.Builder
	b.WriteString(newGrid("Processed", "Skipped", "Failed", "Total").
		alignRight(0, 1, 2, 3).
		add(r.Processed, r.Skipped, len(r.Failed), r.Total()).
		String())

	if r.HasFailures() {
		failures := newGrid("File", "Reason")
		for _, f := range r.Failed {
			failures.add(filepath.Base(f.Path), f.Message)
		}
		b.WriteString("\n\nFailures:\n")
		b.WriteString(failures.String())
	}
	return b.String()
}
