package recognizer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/nguyentantai21042004/vidscribe/internal/config"
	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
)

// fakeWhisper writes canned JSON where the real tool would put its output.
type fakeWhisper struct {
	output  string
	err     error
	args    []string
	dir     string
	workDir string
}

func (f *fakeWhisper) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.args = args
	if f.err != nil {
		return "", f.err
	}
	// openai-whisper: --output_dir <dir>, file named after the audio stem
	i := slices.Index(args, "--output_dir")
	f.workDir = args[i+1]
	stem := filepath.Base(args[0])
	stem = stem[:len(stem)-len(filepath.Ext(stem))]
	return "", os.WriteFile(filepath.Join(f.workDir, stem+".json"), []byte(f.output), 0o644)
}

func (f *fakeWhisper) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	f.args = args
	f.dir = dir
	if f.err != nil {
		return "", f.err
	}
	i := slices.Index(args, "-of")
	return "", os.WriteFile(filepath.Join(dir, args[i+1]+".json"), []byte(f.output), 0o644)
}

func TestParseModelSize(t *testing.T) {
	tests := []struct {
		in      string
		want    ModelSize
		wantErr bool
	}{
		{in: "tiny", want: ModelTiny},
		{in: "Base", want: ModelBase},
		{in: " large ", want: ModelLarge},
		{in: "huge", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModelSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModelSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseModelSize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		backend string
		name    string
		wantErr bool
	}{
		{backend: config.BackendWhisper, name: "whisper"},
		{backend: config.BackendWhisperCPP, name: "whisper.cpp"},
		{backend: "vosk", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			r, err := New(config.RecognizerConfig{Backend: tt.backend}, &fakeWhisper{}, logger.NewNop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && r.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", r.Name(), tt.name)
			}
		})
	}
}

func TestWhisperRecognize(t *testing.T) {
	fake := &fakeWhisper{output: `{
		"text": " Hello world. Second line.",
		"language": "en",
		"segments": [
			{"id": 0, "start": 0.0, "end": 2.5, "text": " Hello world."},
			{"id": 1, "start": 2.5, "end": 3.0, "text": "   "},
			{"id": 2, "start": 3.0, "end": 5.25, "text": " Second line."}
		]
	}`}
	cfg := config.RecognizerConfig{Backend: config.BackendWhisper, Language: "en", Threads: 2, Prompt: "SRE"}
	r, err := New(cfg, fake, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Recognize(context.Background(), "/tmp/talk_audio-1.wav", ModelSmall)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if res.FullText != "Hello world. Second line." {
		t.Errorf("FullText = %q", res.FullText)
	}
	if len(res.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(res.Segments))
	}
	if res.Segments[1].Start != 3.0 || res.Segments[1].End != 5.25 {
		t.Errorf("segment 2 = %+v", res.Segments[1])
	}
	if res.Language != "en" {
		t.Errorf("Language = %q", res.Language)
	}

	for _, want := range [][]string{
		{"--model", "small"},
		{"--language", "en"},
		{"--threads", "2"},
		{"--initial_prompt", "SRE"},
		{"--output_format", "json"},
	} {
		i := slices.Index(fake.args, want[0])
		if i < 0 || fake.args[i+1] != want[1] {
			t.Errorf("args %v missing %v", fake.args, want)
		}
	}
	if _, err := os.Stat(fake.workDir); !os.IsNotExist(err) {
		t.Errorf("work dir %s not removed", fake.workDir)
	}
}

func TestWhisperRecognizeFailures(t *testing.T) {
	tests := []struct {
		name string
		fake *fakeWhisper
	}{
		{name: "tool error", fake: &fakeWhisper{err: errors.New("exit status 1")}},
		{name: "bad json", fake: &fakeWhisper{output: "{not json"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := New(config.RecognizerConfig{Backend: config.BackendWhisper}, tt.fake, logger.NewNop())
			_, err := r.Recognize(context.Background(), "/tmp/a.wav", ModelBase)
			if !errors.Is(err, errs.ErrRecognition) {
				t.Fatalf("error = %v, want ErrRecognition", err)
			}
		})
	}
}

func TestWhisperCPPRecognize(t *testing.T) {
	modelDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(modelDir, "ggml-large-v3.bin"), []byte("model"), 0o644); err != nil {
		t.Fatal(err)
	}
	fake := &fakeWhisper{output: `{
		"result": {"language": "en"},
		"transcription": [
			{"offsets": {"from": 0, "to": 1500}, "text": " First."},
			{"offsets": {"from": 1500, "to": 4001}, "text": " Second."}
		]
	}`}
	cfg := config.RecognizerConfig{Backend: config.BackendWhisperCPP, ModelDir: modelDir, Language: "en"}
	r, err := New(cfg, fake, logger.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	res, err := r.Recognize(context.Background(), "/tmp/talk.wav", ModelLarge)
	if err != nil {
		t.Fatalf("Recognize() error = %v", err)
	}
	if len(res.Segments) != 2 || res.Segments[1].End != 4.001 {
		t.Fatalf("segments = %+v", res.Segments)
	}
	if res.FullText != "First. Second." {
		t.Errorf("FullText = %q", res.FullText)
	}
	i := slices.Index(fake.args, "-m")
	if i < 0 || filepath.Base(fake.args[i+1]) != "ggml-large-v3.bin" {
		t.Errorf("args %v do not select ggml-large-v3.bin", fake.args)
	}
	if _, err := os.Stat(fake.dir); !os.IsNotExist(err) {
		t.Errorf("work dir %s not removed", fake.dir)
	}
}

func TestWhisperCPPMissingModel(t *testing.T) {
	fake := &fakeWhisper{}
	cfg := config.RecognizerConfig{Backend: config.BackendWhisperCPP, ModelDir: t.TempDir()}
	r, _ := New(cfg, fake, logger.NewNop())

	_, err := r.Recognize(context.Background(), "/tmp/a.wav", ModelBase)
	if !errors.Is(err, errs.ErrRecognition) {
		t.Fatalf("error = %v, want ErrRecognition", err)
	}
	if fake.args != nil {
		t.Error("binary invoked without a model file")
	}
}
