package recognizer

import (
	"fmt"

	"github.com/nguyentantai21042004/vidscribe/internal/config"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/pkg/executor"
)

type base struct {
	cfg      config.RecognizerConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates the Recognizer for cfg.Backend
func New(cfg config.RecognizerConfig, exec executor.Executor, log logger.Logger) (Recognizer, error) {
	b := base{cfg: cfg, executor: exec, logger: log}
	switch cfg.Backend {
	case config.BackendWhisper, "":
		if b.cfg.BinaryPath == "" {
			b.cfg.BinaryPath = "whisper"
		}
		return &whisperCLI{base: b}, nil
	case config.BackendWhisperCPP:
		if b.cfg.BinaryPath == "" {
			b.cfg.BinaryPath = "whisper-cli"
		}
		return &whisperCPP{base: b}, nil
	default:
		return nil, fmt.Errorf("unknown recognizer backend %q", cfg.Backend)
	}
}
