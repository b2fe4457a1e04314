package extractor

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"sync"

	"github.com/nguyentantai21042004/vidscribe/internal/logger"
)

// Audio is an extracted temporary WAV file. The caller owns it and must
// defer Release right after a successful Extract.
type Audio struct {
	Path string

	logger logger.Logger
	once   sync.Once
}

// NewAudio wraps an existing temporary file so Release can remove it.
func NewAudio(path string, log logger.Logger) *Audio {
	return &Audio{Path: path, logger: log}
}

// Release deletes the temporary file. Safe to call more than once.
func (a *Audio) Release(ctx context.Context) {
	if a == nil {
		return
	}
	a.once.Do(func() {
		err := os.Remove(a.Path)
		switch {
		case err == nil:
			a.logger.Debug(ctx, "Cleaned up temp audio: %s", a.Path)
		case errors.Is(err, fs.ErrNotExist):
		default:
			a.logger.Warn(ctx, "Failed to cleanup temp audio %s: %v", a.Path, err)
		}
	})
}
