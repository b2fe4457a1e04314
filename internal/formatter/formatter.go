// Package formatter renders a transcript into the three artifacts written per video:
// a human-readable text report, a JSON record, and SRT subtitles.
//
// Rendering is pure; writing files is the batch driver's job.
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nguyentantai21042004/vidscribe/internal/transcript"
)

// Output bundles the rendered artifacts for one transcript.
type Output struct {
	Text   string
	Record Record
	SRT    string
}

// Record is the machine-readable form of a transcript.
type Record struct {
	Text     string          `json:"text"`
	Language string          `json:"language,omitempty"`
	Segments []RecordSegment `json:"segments"`
	Source   string          `json:"source"`
}

type RecordSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Render produces all three artifacts for r.
func Render(r transcript.Result) Output {
	return Output{
		Text:   RenderText(r),
		Record: NewRecord(r),
		SRT:    RenderSRT(r.Segments),
	}
}

// NewRecord converts r into its serializable form.
func NewRecord(r transcript.Result) Record {
	segs := make([]RecordSegment, 0, len(r.Segments))
	for _, s := range r.Segments {
		segs = append(segs, RecordSegment{Start: s.Start, End: s.End, Text: s.Text})
	}
	return Record{
		Text:     r.FullText,
		Language: r.Language,
		Segments: segs,
		Source:   r.SourcePath,
	}
}

// EncodeRecord serializes rec as indented JSON. Non-ASCII text is kept as-is.
func EncodeRecord(rec Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeRecord parses a record previously written by EncodeRecord.
func DecodeRecord(data []byte) (Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}
