package recognizer

import (
	"context"

	"github.com/nguyentantai21042004/vidscribe/internal/transcript"
)

// Recognizer transcribes a WAV file with an external Whisper runtime.
// Failures are reported as errs.ErrRecognition.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string, size ModelSize) (transcript.Result, error)
	Name() string
}
