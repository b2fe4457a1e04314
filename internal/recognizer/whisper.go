package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/transcript"
)

// whisperCLI drives the openai-whisper command line tool.
type whisperCLI struct {
	base
}

type whisperOutput struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Segments []struct {
		Start float64 `json:"start"`
		End   float64 `json:"end"`
		Text  string  `json:"text"`
	} `json:"segments"`
}

func (w *whisperCLI) Name() string { return "whisper" }

func (w *whisperCLI) Recognize(ctx context.Context, audioPath string, size ModelSize) (transcript.Result, error) {
	workDir, err := os.MkdirTemp("", "vidscribe-whisper-*")
	if err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("create work dir: %w", err))
	}
	defer os.RemoveAll(workDir)

	w.logger.Info(ctx, "Transcribing with whisper (%s model)", size)

	if _, err := w.executor.Execute(ctx, w.cfg.BinaryPath, w.buildArgs(audioPath, workDir, size)...); err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("whisper transcribe: %w", err))
	}

	// whisper names its output after the input file
	stem := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	data, err := os.ReadFile(filepath.Join(workDir, stem+".json"))
	if err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("read whisper output: %w", err))
	}

	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("parse whisper output: %w", err))
	}

	segments := make([]transcript.Segment, 0, len(out.Segments))
	for _, s := range out.Segments {
		segments = append(segments, transcript.Segment{Start: s.Start, End: s.End, Text: s.Text})
	}

	language := out.Language
	if language == "" {
		language = w.cfg.Language
	}

	result := transcript.New(audioPath, language, segments)
	w.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}

func (w *whisperCLI) buildArgs(audioPath, outputDir string, size ModelSize) []string {
	args := []string{
		audioPath,
		"--model", size.String(),
		"--output_format", "json",
		"--output_dir", outputDir,
		"--verbose", "False",
		"--fp16", "False",
	}
	if w.cfg.Language != "" {
		args = append(args, "--language", w.cfg.Language)
	}
	if w.cfg.Threads > 0 {
		args = append(args, "--threads", strconv.Itoa(w.cfg.Threads))
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--initial_prompt", w.cfg.Prompt)
	}
	return args
}
