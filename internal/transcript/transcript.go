// Package transcript holds the recognizer-independent result of transcribing one video.
package transcript

import "strings"

// Segment is a timed span of recognized speech. Times are in seconds.
type Segment struct {
	Start float64
	End   float64
	Text  string
}

// Result is the transcription of a single source file.
type Result struct {
	FullText   string
	Segments   []Segment
	SourcePath string
	Language   string
}

// New builds a Result from raw recognizer segments. Segment text is trimmed,
// segments left without text are dropped, and FullText is the in-order join of
// the remaining texts, so every renderer sees the same segment list.
func New(sourcePath, language string, segments []Segment) Result {
	kept := make([]Segment, 0, len(segments))
	texts := make([]string, 0, len(segments))
	for _, s := range segments {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		kept = append(kept, Segment{Start: s.Start, End: s.End, Text: text})
		texts = append(texts, text)
	}

	return Result{
		FullText:   strings.Join(texts, " "),
		Segments:   kept,
		SourcePath: sourcePath,
		Language:   language,
	}
}

// Duration returns the end time of the last segment.
func (r Result) Duration() float64 {
	if len(r.Segments) == 0 {
		return 0
	}
	return r.Segments[len(r.Segments)-1].End
}
