package summarizer

import "context"

// Summarizer writes LLM summaries for transcription records in an output directory.
type Summarizer interface {
	SummarizeAll(ctx context.Context, outputDir string) (*Result, error)
}

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Result counts per-record outcomes of a SummarizeAll call.
type Result struct {
	Summarized int
	Skipped    int
	Failed     int
}
