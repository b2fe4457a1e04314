package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/history"
	"github.com/nguyentantai21042004/vidscribe/internal/processor"
)

type cliEnv struct {
	input, output, config string
}

// setupCLIEnv writes a config whose external tools do not exist, so runs
// exercise the failure path without ffmpeg or whisper installed.
func setupCLIEnv(t *testing.T, videos ...string) *cliEnv {
	t.Helper()
	base := t.TempDir()
	env := &cliEnv{
		input:  filepath.Join(base, "in"),
		output: filepath.Join(base, "out"),
		config: filepath.Join(base, "config.yaml"),
	}
	if err := os.MkdirAll(env.input, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, v := range videos {
		if err := os.WriteFile(filepath.Join(env.input, v), []byte("video"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	yaml := "paths:\n  input: " + env.input + "\n  output: " + env.output + "\n" +
		"ffmpeg:\n  binary_path: vidscribe-test-missing-ffmpeg\n" +
		"recognizer:\n  binary_path: vidscribe-test-missing-whisper\n" +
		"logging:\n  level: error\n"
	if err := os.WriteFile(env.config, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIDSCRIBE_LOG_LEVEL", "")
	return env
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestBatchEmptyInput(t *testing.T) {
	env := setupCLIEnv(t)

	out, _, err := runCLI(t, "-c", env.config, "--no-progress")
	if err != nil {
		t.Fatalf("batch error = %v", err)
	}
	if !strings.Contains(out, "Processed") {
		t.Errorf("summary table missing:\n%s", out)
	}
	if info, err := os.Stat(env.output); err != nil || !info.IsDir() {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestBatchFailuresAndHistory(t *testing.T) {
	env := setupCLIEnv(t, "lecture.mp4", "readme.txt")

	out, _, err := runCLI(t, "-c", env.config, "--no-progress")
	if !errors.Is(err, errFilesFailed) {
		t.Fatalf("batch error = %v, want errFilesFailed", err)
	}
	if !strings.Contains(out, "Failures:") || !strings.Contains(out, "lecture.mp4") {
		t.Errorf("failure table missing:\n%s", out)
	}

	out, _, err = runCLI(t, "-c", env.config, "history", "--failed")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out, "lecture.mp4") || !strings.Contains(out, "extraction") {
		t.Errorf("history output:\n%s", out)
	}
}

func TestBatchSetupErrors(t *testing.T) {
	env := setupCLIEnv(t)

	tests := []struct {
		name  string
		args  []string
		check func(error) bool
	}{
		{
			name:  "missing input",
			args:  []string{"-c", env.config, "-i", filepath.Join(env.input, "nope")},
			check: func(err error) bool { return errors.Is(err, errs.ErrNotFound) },
		},
		{
			name:  "explicit config missing",
			args:  []string{"-c", filepath.Join(env.input, "missing.yaml")},
			check: func(err error) bool { return err != nil },
		},
		{
			name:  "bad model",
			args:  []string{"-c", env.config, "-m", "huge"},
			check: func(err error) bool { return err != nil && strings.Contains(err.Error(), "--model") },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, append(tt.args, "--no-progress")...)
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestHistoryEmpty(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, "-c", env.config, "history")
	if err != nil {
		t.Fatalf("history error = %v", err)
	}
	if !strings.Contains(out, "No history recorded yet") {
		t.Errorf("output = %q", out)
	}
}

func TestDoctorReportsMissing(t *testing.T) {
	env := setupCLIEnv(t)
	out, _, err := runCLI(t, "-c", env.config, "doctor")
	if err == nil {
		t.Fatal("expected error for missing binaries")
	}
	if !strings.Contains(out, "vidscribe-test-missing-ffmpeg") || !strings.Contains(out, "missing") {
		t.Errorf("doctor output:\n%s", out)
	}
}

func TestSummarizeRequiresKeys(t *testing.T) {
	env := setupCLIEnv(t)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEYS", "")
	_, _, err := runCLI(t, "-c", env.config, "summarize")
	if err == nil || !strings.Contains(err.Error(), "API keys") {
		t.Fatalf("summarize error = %v", err)
	}
}

func TestRenderReport(t *testing.T) {
	r := &processor.Report{
		Processed: 2,
		Skipped:   1,
		Failed:    []processor.Failure{{Path: "/in/broken.mkv", Message: "audio extraction failed: no audio"}},
	}
	out := renderReport(r)
	for _, want := range []string{"Processed", "Failures:", "broken.mkv", "no audio"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	clean := renderReport(&processor.Report{Processed: 1})
	if strings.Contains(clean, "Failures:") {
		t.Errorf("failure table rendered without failures:\n%s", clean)
	}
}

func TestNewProgressObserver(t *testing.T) {
	var buf bytes.Buffer
	if obs := newProgressObserver(&buf, true); obs != nil {
		t.Error("expected no progress bar for a non-terminal writer")
	}
	if obs := newProgressObserver(os.Stderr, false); obs != nil {
		t.Error("expected no progress bar when disabled")
	}
}

// waitForHistory polls the ledger until file has an entry or the deadline passes.
func waitForHistory(t *testing.T, dbPath, file string) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if store, err := history.Open(dbPath); err == nil {
			entries, err := store.Recent(context.Background(), 50, false)
			store.Close()
			if err == nil {
				for _, e := range entries {
					if filepath.Base(e.Path) == file {
						return
					}
				}
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	t.Fatalf("no history entry for %s", file)
}

func TestWatchHoldsLockAndSeesNewFiles(t *testing.T) {
	env := setupCLIEnv(t, "existing.mp4")
	dbPath := filepath.Join(env.output, ".vidscribe", "history.db")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"-c", env.config, "--no-progress", "watch"})
	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	waitForHistory(t, dbPath, "existing.mp4")

	if _, err := processor.AcquireLock(env.output); !errors.Is(err, processor.ErrLocked) {
		t.Errorf("AcquireLock() during watch = %v, want ErrLocked", err)
	}

	if err := os.WriteFile(filepath.Join(env.input, "later.mkv"), []byte("video"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitForHistory(t, dbPath, "later.mkv")

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("watch error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}

	release, err := processor.AcquireLock(env.output)
	if err != nil {
		t.Fatalf("lock still held after watch: %v", err)
	}
	release()
}

func TestWatchLockedOutput(t *testing.T) {
	env := setupCLIEnv(t)
	release, err := processor.AcquireLock(env.output)
	if err != nil {
		t.Fatal(err)
	}
	defer release()

	_, _, err = runCLI(t, "-c", env.config, "--no-progress", "watch")
	if !errors.Is(err, processor.ErrLocked) {
		t.Errorf("watch error = %v, want ErrLocked", err)
	}
}
