package processor

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/history"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
	"github.com/nguyentantai21042004/vidscribe/internal/scanner"
)

// ErrNameCollision means two videos in one folder share a stem and would
// write the same output files.
var ErrNameCollision = errors.New("output names collide with another video")

// RunBatch locks outputDir and processes every supported video in inputDir
func (p *implProcessor) RunBatch(ctx context.Context, inputDir, outputDir string, size recognizer.ModelSize) (*Report, error) {
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	report := &Report{RunID: runID}

	videos, err := scanner.Scan(inputDir)
	if err != nil {
		return report, err
	}

	unlock, err := AcquireLock(outputDir)
	if err != nil {
		return report, err
	}
	defer func() {
		if err := unlock(); err != nil {
			p.logger.Warn(ctx, "Failed to release lock in %s: %v", outputDir, err)
		}
	}()

	return report, p.processAll(ctx, report, slices.Collect(videos), outputDir, size)
}

// ProcessDir is RunBatch for a caller that already holds the output lock
func (p *implProcessor) ProcessDir(ctx context.Context, inputDir, outputDir string, size recognizer.ModelSize) (*Report, error) {
	runID := logger.RunID(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = logger.WithRunID(ctx, runID)
	}
	report := &Report{RunID: runID}

	videos, err := scanner.Scan(inputDir)
	if err != nil {
		return report, err
	}
	return report, p.processAll(ctx, report, slices.Collect(videos), outputDir, size)
}

// processAll runs files strictly in order, filling report. Only cancellation
// ends the loop early.
func (p *implProcessor) processAll(ctx context.Context, report *Report, files []string, outputDir string, size recognizer.ModelSize) error {
	p.logger.Info(ctx, "Found %d video file(s)", len(files))
	p.observer.BatchStarted(len(files))

	owners := make(map[string]string, len(files))
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			p.logger.Warn(ctx, "Run interrupted after %d of %d files", i, len(files))
			return err
		}

		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), filepath.Base(path))
		start := time.Now()

		var (
			state State
			err   error
		)
		key := OutputsFor(path, outputDir).SRT
		if first, taken := owners[key]; taken {
			state = StateFailed
			err = errs.Write(path, fmt.Errorf("%w (%s)", ErrNameCollision, filepath.Base(first)))
			p.logger.Warn(ctx, "Not processing %s: %v", filepath.Base(path), err)
		} else {
			owners[key] = path
			state, err = p.ProcessFile(ctx, path, outputDir, size)
		}

		// a file cut short by cancellation is neither done nor failed
		if err != nil && ctx.Err() != nil {
			p.logger.Warn(ctx, "Run interrupted while processing %s", filepath.Base(path))
			return ctx.Err()
		}

		switch state {
		case StateDone:
			report.Processed++
		case StateSkipped:
			report.Skipped++
		default:
			report.Failed = append(report.Failed, Failure{Path: path, Message: err.Error()})
		}

		p.record(ctx, logger.RunID(ctx), path, size, state, err, time.Since(start))
		p.observer.FileFinished(path, state)
	}

	p.logger.Info(ctx, "Run complete: %d processed, %d skipped, %d failed", report.Processed, report.Skipped, len(report.Failed))
	return nil
}

func (p *implProcessor) record(ctx context.Context, runID, path string, size recognizer.ModelSize, state State, err error, took time.Duration) {
	if p.recorder == nil {
		return
	}
	entry := history.Entry{
		RunID:    runID,
		Path:     path,
		State:    state.String(),
		Backend:  p.recognizer.Name(),
		Model:    size.String(),
		Duration: took,
	}
	if err != nil {
		entry.Kind = errs.KindOf(err).String()
		entry.Message = err.Error()
	}
	if recErr := p.recorder.Record(ctx, entry); recErr != nil {
		p.logger.Warn(ctx, "Failed to record history for %s: %v", filepath.Base(path), recErr)
	}
}
