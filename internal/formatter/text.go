package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/vidscribe/internal/transcript"
)

var (
	banner = strings.Repeat("=", 50)
	rule   = strings.Repeat("-", 30)
)

const (
	textTitle          = "Video Speech Recognition Results"
	fullTextHeading    = "Complete Transcription Text:"
	segmentedHeading   = "Segmented Transcription (with timestamps):"
	segmentLinePattern = "[%s - %s] %s\n"
)

// RenderText renders the human-readable report: the full text followed by one
// timestamped line per segment.
func RenderText(r transcript.Result) string {
	var b strings.Builder

	b.WriteString(banner + "\n")
	b.WriteString(textTitle + "\n")
	b.WriteString(banner + "\n\n")

	if r.SourcePath != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", filepath.Base(r.SourcePath))
	}

	b.WriteString(fullTextHeading + "\n")
	b.WriteString(rule + "\n")
	b.WriteString(r.FullText + "\n\n")

	b.WriteString(segmentedHeading + "\n")
	b.WriteString(rule + "\n")
	for _, s := range r.Segments {
		fmt.Fprintf(&b, segmentLinePattern, ClockTimestamp(s.Start), ClockTimestamp(s.End), s.Text)
	}

	return b.String()
}
