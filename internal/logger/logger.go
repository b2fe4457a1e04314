package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

type implLogger struct {
	logger zerolog.Logger
}

// New creates a Logger writing to stdout
func New(level, format string) Logger {
	return newWithWriter(level, format, os.Stdout)
}

// NewNop returns a Logger that discards everything
func NewNop() Logger {
	return &implLogger{logger: zerolog.Nop()}
}

func newWithWriter(level, format string, w io.Writer) Logger {
	var out io.Writer = w
	if strings.ToLower(strings.TrimSpace(format)) != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(w),
		}
	}

	zl := zerolog.New(out).Level(parseLevel(level)).With().Timestamp().Logger()
	return &implLogger{logger: zl}
}

// parseLevel maps config levels to zerolog, defaulting to info
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.logger.Debug(), msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.logger.Info(), msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.logger.Warn(), msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log(ctx, l.logger.Error(), msg, args)
}

func (l *implLogger) log(ctx context.Context, ev *zerolog.Event, msg string, args []interface{}) {
	if ev == nil {
		return
	}
	if runID := RunID(ctx); runID != "" {
		ev = ev.Str(FieldRunID, runID)
	}
	if file := File(ctx); file != "" {
		ev = ev.Str(FieldFile, file)
	}
	if len(args) == 0 {
		ev.Msg(msg)
		return
	}
	ev.Msgf(msg, args...)
}
