package extractor

import (
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/pkg/executor"
)

const defaultFFmpeg = "ffmpeg"

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
	ffmpeg   string
	tempDir  string
}

// New creates an Extractor. An empty tempDir means the system temp dir.
func New(exec executor.Executor, log logger.Logger, ffmpegBinary, tempDir string) Extractor {
	if ffmpegBinary == "" {
		ffmpegBinary = defaultFFmpeg
	}
	return &implExtractor{
		executor: exec,
		logger:   log,
		ffmpeg:   ffmpegBinary,
		tempDir:  tempDir,
	}
}
