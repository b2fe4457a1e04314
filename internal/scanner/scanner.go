package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/vidscribe/internal/errs"
)

// videoExtensions is the allow-list of containers the batch picks up.
var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".avi":  {},
	".mov":  {},
	".mkv":  {},
	".wmv":  {},
	".flv":  {},
	".webm": {},
	".m4v":  {},
}

// SupportedExtensions lists the allow-list in display order.
func SupportedExtensions() []string {
	return []string{".mp4", ".avi", ".mov", ".mkv", ".wmv", ".flv", ".webm", ".m4v"}
}

// IsVideo checks if the file has a supported video extension (case-insensitive)
func IsVideo(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Scan lists video files directly inside dir, in name order.
// The directory is read up front so a missing dir fails immediately;
// paths are then yielded lazily.
func Scan(dir string) (iter.Seq[string], error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NotFound(dir, err)
		}
		return nil, fmt.Errorf("stat input dir: %w", err)
	}
	if !info.IsDir() {
		return nil, errs.NotFound(dir, fmt.Errorf("not a directory"))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	return func(yield func(string) bool) {
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			if !IsVideo(e.Name()) {
				continue
			}
			if !yield(filepath.Join(dir, e.Name())) {
				return
			}
		}
	}, nil
}
