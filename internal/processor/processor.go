package processor

import (
	"context"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/vidscribe/internal/formatter"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
)

// ProcessFile orchestrates extraction, recognition, formatting and writing for one video
func (p *implProcessor) ProcessFile(ctx context.Context, videoPath, outputDir string, size recognizer.ModelSize) (State, error) {
	startTime := time.Now()
	ctx = logger.WithFile(ctx, filepath.Base(videoPath))

	outputs := OutputsFor(videoPath, outputDir)
	if outputs.Complete() {
		p.logger.Info(ctx, "Skipping (outputs already exist): %s", filepath.Base(videoPath))
		return StateSkipped, nil
	}

	p.logger.Info(ctx, "Processing: %s", videoPath)

	p.transition(ctx, StateExtracting)
	audio, err := p.extractor.Extract(ctx, videoPath)
	if err != nil {
		return p.fail(ctx, err)
	}
	defer audio.Release(ctx)

	p.transition(ctx, StateRecognizing)
	result, err := p.recognizer.Recognize(ctx, audio.Path, size)
	if err != nil {
		return p.fail(ctx, err)
	}
	result.SourcePath = videoPath

	p.transition(ctx, StateFormatting)
	out := formatter.Render(result)

	p.transition(ctx, StateWriting)
	if err := outputs.write(out); err != nil {
		return p.fail(ctx, err)
	}

	p.transition(ctx, StateDone)
	p.logger.Info(ctx, "Completed %s: %d segments in %s", filepath.Base(videoPath), len(result.Segments), time.Since(startTime).Round(time.Millisecond))
	return StateDone, nil
}

func (p *implProcessor) transition(ctx context.Context, s State) {
	p.logger.Debug(ctx, "State -> %s", s)
}

func (p *implProcessor) fail(ctx context.Context, err error) (State, error) {
	p.transition(ctx, StateFailed)
	p.logger.Error(ctx, "Processing failed: %v", err)
	return StateFailed, err
}
