package processor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
	"github.com/nguyentantai21042004/vidscribe/internal/formatter"
	"github.com/nguyentantai21042004/vidscribe/pkg/fileutil"
)

const (
	textSuffix = "_transcription.txt"
	jsonSuffix = "_transcription.json"
	srtSuffix  = ".srt"
)

// Outputs are the artifact paths derived from one video.
type Outputs struct {
	Text string
	JSON string
	SRT  string
}

// OutputsFor derives artifact names from the video's stem.
func OutputsFor(videoPath, outputDir string) Outputs {
	base := filepath.Base(videoPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return Outputs{
		Text: filepath.Join(outputDir, stem+textSuffix),
		JSON: filepath.Join(outputDir, stem+jsonSuffix),
		SRT:  filepath.Join(outputDir, stem+srtSuffix),
	}
}

// Complete reports whether all three artifacts exist as regular files.
func (o Outputs) Complete() bool {
	for _, path := range []string{o.Text, o.JSON, o.SRT} {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return false
		}
	}
	return true
}

// write stores the artifacts atomically, JSON first and TXT last.
func (o Outputs) write(out formatter.Output) error {
	record, err := formatter.EncodeRecord(out.Record)
	if err != nil {
		return errs.Write(o.JSON, err)
	}

	files := []struct {
		path string
		data []byte
	}{
		{o.JSON, record},
		{o.SRT, []byte(out.SRT)},
		{o.Text, []byte(out.Text)},
	}
	for _, f := range files {
		if err := fileutil.WriteFileAtomic(f.path, f.data, 0o644); err != nil {
			return errs.Write(f.path, err)
		}
	}
	return nil
}
