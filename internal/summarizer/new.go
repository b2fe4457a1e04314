package summarizer

import (
	"time"

	"github.com/nguyentantai21042004/vidscribe/internal/logger"
)

type implSummarizer struct {
	generator Generator
	logger    logger.Logger
	now       func() time.Time
}

// New creates a Summarizer backed by gen.
func New(gen Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		generator: gen,
		logger:    log,
		now:       time.Now,
	}
}
