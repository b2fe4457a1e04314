package processor

import (
	"github.com/nguyentantai21042004/vidscribe/internal/extractor"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/internal/recognizer"
)

type implProcessor struct {
	extractor  extractor.Extractor
	recognizer recognizer.Recognizer
	logger     logger.Logger
	observer   Observer
	recorder   Recorder
}

// Option customizes a Processor
type Option func(*implProcessor)

// WithObserver reports batch progress to o.
func WithObserver(o Observer) Option {
	return func(p *implProcessor) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithRecorder writes every file outcome to r.
func WithRecorder(r Recorder) Option {
	return func(p *implProcessor) {
		p.recorder = r
	}
}

// New creates a new Processor instance
func New(ext extractor.Extractor, rec recognizer.Recognizer, log logger.Logger, opts ...Option) Processor {
	p := &implProcessor{
		extractor:  ext,
		recognizer: rec,
		logger:     log,
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type nopObserver struct{}

func (nopObserver) BatchStarted(int)           {}
func (nopObserver) FileFinished(string, State) {}
