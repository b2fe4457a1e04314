package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nguyentantai21042004/vidscribe/internal/formatter"
	"github.com/nguyentantai21042004/vidscribe/internal/logger"
	"github.com/nguyentantai21042004/vidscribe/pkg/fileutil"
)

const (
	recordSuffix      = "_transcription.json"
	summarySuffix     = "_summary.md"
	summaryDocxSuffix = "_summary.docx"
	transcriptDocx    = "_transcript.docx"
	srtSuffix         = ".srt"
)

const summaryPrompt = `You are an expert at analyzing recorded talks and training videos. Using the timestamped transcript below, write a DETAILED summary in English.

Requirements:
- Start with a one-sentence overview of the video's topic
- List ALL main steps / topics in the order they appear
- Explain each step in detail, including important notes, tips and warnings
- Keep technical terms as spoken
- Use markdown: headings, bullet points, bold for key terms
- Finish with an "Important notes" section if anything deserves emphasis

Transcript:
---
%s
---`

var titleCaser = cases.Title(language.English)

// SummarizeAll summarizes every transcription record in outputDir that has no summary yet.
func (s *implSummarizer) SummarizeAll(ctx context.Context, outputDir string) (*Result, error) {
	records, err := discoverRecords(outputDir)
	if err != nil {
		return nil, fmt.Errorf("discover transcription records: %w", err)
	}

	res := &Result{}
	if len(records) == 0 {
		s.logger.Info(ctx, "No transcription records found in %s", outputDir)
		return res, nil
	}

	s.logger.Info(ctx, "Found %d transcription records", len(records))

	for i, recordPath := range records {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		stem := strings.TrimSuffix(filepath.Base(recordPath), recordSuffix)
		fctx := logger.WithFile(ctx, stem)

		mdPath := filepath.Join(outputDir, stem+summarySuffix)
		if fileutil.Exists(mdPath) {
			s.logger.Debug(fctx, "Summary already exists: %s", mdPath)
			res.Skipped++
			continue
		}

		s.logger.Info(fctx, "[%d/%d] Summarizing: %s", i+1, len(records), stem)
		if err := s.summarizeOne(fctx, outputDir, stem, recordPath, mdPath); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			s.logger.Error(fctx, "Failed to summarize %s: %v", stem, err)
			res.Failed++
			continue
		}
		res.Summarized++
	}

	s.logger.Info(ctx, "Summary complete: %d summarized, %d skipped, %d failed", res.Summarized, res.Skipped, res.Failed)
	return res, nil
}

func (s *implSummarizer) summarizeOne(ctx context.Context, outputDir, stem, recordPath, mdPath string) error {
	data, err := os.ReadFile(recordPath)
	if err != nil {
		return fmt.Errorf("read record: %w", err)
	}
	rec, err := formatter.DecodeRecord(data)
	if err != nil {
		return err
	}
	if len(rec.Segments) == 0 && strings.TrimSpace(rec.Text) == "" {
		return errors.New("transcript is empty")
	}

	summary, err := s.generator.Generate(ctx, fmt.Sprintf(summaryPrompt, promptTranscript(rec)))
	if err != nil {
		return err
	}

	title := displayTitle(stem)
	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n", title, s.now().Format("2006-01-02 15:04"), strings.TrimSpace(summary))

	// markdown goes last: its presence marks the record as summarized
	if err := markdownToDocx(title, md, filepath.Join(outputDir, stem+summaryDocxSuffix)); err != nil {
		return fmt.Errorf("write summary docx: %w", err)
	}

	srtPath := filepath.Join(outputDir, stem+srtSuffix)
	if srt, err := os.ReadFile(srtPath); err == nil {
		if err := srtToDocx(title, string(srt), filepath.Join(outputDir, stem+transcriptDocx)); err != nil {
			return fmt.Errorf("write transcript docx: %w", err)
		}
	} else {
		s.logger.Warn(ctx, "No SRT for %s, transcript docx not written", stem)
	}

	if err := fileutil.WriteFileAtomic(mdPath, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	s.logger.Info(ctx, "[DONE] %s -> %s", stem, mdPath)
	return nil
}

// promptTranscript renders segments as "[HH:MM:SS] text" lines, falling back to the full text.
func promptTranscript(rec formatter.Record) string {
	if len(rec.Segments) == 0 {
		return rec.Text
	}
	var b strings.Builder
	for _, seg := range rec.Segments {
		fmt.Fprintf(&b, "[%s] %s\n", formatter.ClockTimestamp(seg.Start), seg.Text)
	}
	return b.String()
}

// displayTitle turns a file stem like "sre_basic-overview" into "Sre Basic Overview".
func displayTitle(stem string) string {
	replacer := strings.NewReplacer("_", " ", "-", " ", ".", " ")
	return titleCaser.String(strings.Join(strings.Fields(replacer.Replace(stem)), " "))
}

func discoverRecords(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.HasSuffix(e.Name(), recordSuffix) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
