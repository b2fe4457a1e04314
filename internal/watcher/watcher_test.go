package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/vidscribe/internal/logger"
)

func TestWatcherHandlesNewVideos(t *testing.T) {
	dir := t.TempDir()
	seen := make(chan string, 4)

	w, err := New(dir, func(ctx context.Context, path string) error {
		seen <- filepath.Base(path)
		return nil
	}, logger.NewNop(), 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	for _, name := range []string{"notes.txt", ".partial.mp4", "lecture.MOV"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case got := <-seen:
		if got != "lecture.MOV" {
			t.Errorf("handled %q, want lecture.MOV", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for handler")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	if len(seen) != 0 {
		t.Errorf("unexpected extra events: %d", len(seen))
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), nil, logger.NewNop(), 0)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
