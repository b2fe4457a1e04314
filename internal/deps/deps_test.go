package deps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/vidscribe/internal/config"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	model := filepath.Join(binDir, "ggml-base.bin")
	_ = os.WriteFile(model, []byte("m"), 0o644)

	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
		{Name: "Empty", Command: "  "},
		{Name: "Model", Command: model, File: true},
		{Name: "NoModel", Command: filepath.Join(binDir, "ggml-tiny.bin"), File: true},
	}
	want := []bool{true, false, false, true, false}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}
	for i, r := range results {
		if r.Available != want[i] {
			t.Errorf("%s: Available = %v, want %v (%s)", r.Name, r.Available, want[i], r.Detail)
		}
		if !r.Available && r.Detail == "" {
			t.Errorf("%s: expected detail for missing requirement", r.Name)
		}
	}
	if got := len(Missing(results)); got != 3 {
		t.Errorf("Missing() = %d, want 3", got)
	}
}

func TestRequirements(t *testing.T) {
	tests := []struct {
		name      string
		backend   string
		model     string
		wantCount int
		wantModel string
	}{
		{name: "whisper", backend: config.BackendWhisper, model: "base", wantCount: 2},
		{name: "whisper.cpp large", backend: config.BackendWhisperCPP, model: "large", wantCount: 3, wantModel: "ggml-large-v3.bin"},
		{name: "whisper.cpp small", backend: config.BackendWhisperCPP, model: "small", wantCount: 3, wantModel: "ggml-small.bin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Recognizer.Backend = tt.backend
			cfg.Recognizer.Model = tt.model
			if err := cfg.Validate(); err != nil {
				t.Fatal(err)
			}
			reqs := Requirements(cfg)
			if len(reqs) != tt.wantCount {
				t.Fatalf("got %d requirements, want %d", len(reqs), tt.wantCount)
			}
			if tt.wantModel != "" && filepath.Base(reqs[2].Command) != tt.wantModel {
				t.Errorf("model requirement = %s, want %s", reqs[2].Command, tt.wantModel)
			}
		})
	}
}
