package processor

import (
	"context"

	"github.com/nguyentantai21042004/vidscribe/internal/history"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
)

// Processor turns videos into transcription artifacts
type Processor interface {
	// ProcessFile runs one video through extraction, recognition and writing.
	ProcessFile(ctx context.Context, videoPath, outputDir string, size recognizer.ModelSize) (State, error)
	// RunBatch processes every supported video in inputDir sequentially.
	// Per-file failures are collected in the report; only setup failures are returned.
	RunBatch(ctx context.Context, inputDir, outputDir string, size recognizer.ModelSize) (*Report, error)
	// ProcessDir is RunBatch without taking the output lock, for callers that
	// already hold it (see AcquireLock).
	ProcessDir(ctx context.Context, inputDir, outputDir string, size recognizer.ModelSize) (*Report, error)
}

// Observer receives batch progress notifications
type Observer interface {
	BatchStarted(total int)
	FileFinished(path string, state State)
}

// Recorder persists per-file outcomes
type Recorder interface {
	Record(ctx context.Context, e history.Entry) error
}
