package formatter

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/vidscribe/internal/transcript"
)

// RenderSRT renders one cue per segment, numbered from 1, separated by blank lines.
func RenderSRT(segments []transcript.Segment) string {
	var b strings.Builder
	for i, s := range segments {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n", i+1, SRTTimestamp(s.Start), SRTTimestamp(s.End), s.Text)
	}
	return b.String()
}
