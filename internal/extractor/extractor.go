package extractor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
)

// Extract writes the first audio stream of videoPath to a new temp WAV
// (16kHz, mono, PCM 16-bit little-endian).
func (e *implExtractor) Extract(ctx context.Context, videoPath string) (*Audio, error) {
	info, err := os.Stat(videoPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NotFound(videoPath, err)
		}
		return nil, errs.Extraction(videoPath, err)
	}
	if info.IsDir() {
		return nil, errs.Extraction(videoPath, fmt.Errorf("is a directory"))
	}

	if e.tempDir != "" {
		if err := os.MkdirAll(e.tempDir, 0o755); err != nil {
			return nil, errs.Extraction(videoPath, fmt.Errorf("create temp dir: %w", err))
		}
	}

	tmp, err := os.CreateTemp(e.tempDir, tempPattern(videoPath))
	if err != nil {
		return nil, errs.Extraction(videoPath, fmt.Errorf("create temp audio: %w", err))
	}
	audioPath := tmp.Name()
	_ = tmp.Close()

	audio := NewAudio(audioPath, e.logger)

	e.logger.Info(ctx, "Extracting audio: %s", filepath.Base(videoPath))

	// -map 0:a:0: first audio stream only; fails when the container has none
	// -vn -sn -dn: drop video, subtitle and data streams
	// -ar 16000 -ac 1 -c:a pcm_s16le: 16kHz mono PCM, what Whisper expects
	args := []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", videoPath,
		"-map", "0:a:0",
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.ffmpeg, args...); err != nil {
		audio.Release(ctx)
		return nil, errs.Extraction(videoPath, fmt.Errorf("ffmpeg extract audio: %w", err))
	}

	if st, err := os.Stat(audioPath); err != nil || st.Size() == 0 {
		audio.Release(ctx)
		return nil, errs.Extraction(videoPath, fmt.Errorf("ffmpeg produced no audio"))
	}

	e.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audio, nil
}

// tempPattern builds an os.CreateTemp pattern from the video stem,
// replacing whitespace and path-hostile characters.
func tempPattern(videoPath string) string {
	stem := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	stem = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return '_'
		case r == '*' || r == os.PathSeparator || r == '/':
			return '_'
		}
		return r
	}, stem)
	if stem == "" {
		stem = "audio"
	}
	return stem + "_audio-*.wav"
}
