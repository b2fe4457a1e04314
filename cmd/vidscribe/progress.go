package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/vidscribe/internal/processor"
)

// progressObserver drives a terminal progress bar from batch notifications.
type progressObserver struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// newProgressObserver returns nil when progress is disabled or w is not a terminal.
func newProgressObserver(w io.Writer, enabled bool) processor.Observer {
	if !enabled || !isTerminal(w) {
		return nil
	}
	return &progressObserver{w: w}
}

func (o *progressObserver) BatchStarted(total int) {
	o.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(o.w),
		progressbar.OptionSetDescription("Transcribing"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(o.w) }),
	)
}

func (o *progressObserver) FileFinished(path string, state processor.State) {
	if o.bar == nil {
		return
	}
	o.bar.Describe(fmt.Sprintf("%s (%s)", filepath.Base(path), state))
	_ = o.bar.Add(1)
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
