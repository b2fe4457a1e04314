package extractor

import "context"

// Extractor turns a video container into a mono 16kHz WAV suitable for Whisper
type Extractor interface {
	Extract(ctx context.Context, videoPath string) (*Audio, error)
}
