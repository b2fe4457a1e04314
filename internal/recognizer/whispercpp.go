package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/transcript"
)

const cppOutputPrefix = "transcript"

// whisperCPP drives the whisper.cpp CLI with ggml model files.
type whisperCPP struct {
	base
}

type cppOutput struct {
	Result struct {
		Language string `json:"language"`
	} `json:"result"`
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func (w *whisperCPP) Name() string { return "whisper.cpp" }

func (w *whisperCPP) Recognize(ctx context.Context, audioPath string, size ModelSize) (transcript.Result, error) {
	modelPath := filepath.Join(w.cfg.ModelDir, size.GGMLFile())
	if _, err := os.Stat(modelPath); err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("model file: %w", err))
	}

	workDir, err := os.MkdirTemp("", "vidscribe-whispercpp-*")
	if err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("create work dir: %w", err))
	}
	defer os.RemoveAll(workDir)

	absAudio, err := filepath.Abs(audioPath)
	if err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, err)
	}
	absModel, err := filepath.Abs(modelPath)
	if err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, err)
	}

	w.logger.Info(ctx, "Transcribing with whisper.cpp (%s, %d threads)", size.GGMLFile(), w.threads())

	// Run inside workDir so the relative output prefix lands there
	if _, err := w.executor.ExecuteInDir(ctx, workDir, w.cfg.BinaryPath, w.buildArgs(absAudio, absModel)...); err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("whisper.cpp transcribe: %w", err))
	}

	data, err := os.ReadFile(filepath.Join(workDir, cppOutputPrefix+".json"))
	if err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("read whisper.cpp output: %w", err))
	}

	var out cppOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return transcript.Result{}, errs.Recognition(audioPath, fmt.Errorf("parse whisper.cpp output: %w", err))
	}

	segments := make([]transcript.Segment, 0, len(out.Transcription))
	for _, s := range out.Transcription {
		segments = append(segments, transcript.Segment{
			Start: float64(s.Offsets.From) / 1000,
			End:   float64(s.Offsets.To) / 1000,
			Text:  s.Text,
		})
	}

	language := out.Result.Language
	if language == "" {
		language = w.cfg.Language
	}

	result := transcript.New(audioPath, language, segments)
	w.logger.Info(ctx, "Transcription completed: %d segments", len(result.Segments))
	return result, nil
}

func (w *whisperCPP) threads() int {
	if w.cfg.Threads > 0 {
		return w.cfg.Threads
	}
	return 4
}

// -oj: JSON output, -of: output prefix (whisper.cpp appends .json)
func (w *whisperCPP) buildArgs(audioPath, modelPath string) []string {
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-oj",
		"-of", cppOutputPrefix,
		"-t", strconv.Itoa(w.threads()),
	}
	if w.cfg.Language != "" {
		args = append(args, "-l", w.cfg.Language)
	}
	if w.cfg.Prompt != "" {
		args = append(args, "--prompt", w.cfg.Prompt)
	}
	return args
}
