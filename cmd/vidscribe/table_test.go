package main

import (
	"strings"
	"testing"
)

func TestGridKeepsHeaderCase(t *testing.T) {
	out := newGrid("Processed", "Used for").alignRight(0).add(7, "ffmpeg").String()

	for _, want := range []string{"Processed", "Used for", "ffmpeg"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "PROCESSED") {
		t.Errorf("header was upper-cased:\n%s", out)
	}
	if !strings.Contains(out, "        7 │") {
		t.Errorf("count column not right-aligned:\n%s", out)
	}
}

func TestGridPadsShortRows(t *testing.T) {
	out := newGrid("File", "Reason").add("only.mp4").String()
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[3], "only.mp4") || strings.Count(lines[3], "│") != 3 {
		t.Errorf("short row not padded: %q", lines[3])
	}
}

func TestGridWithoutColumns(t *testing.T) {
	if out := newGrid().String(); out != "" {
		t.Errorf("empty grid rendered %q", out)
	}
}
