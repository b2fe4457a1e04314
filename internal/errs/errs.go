// Package errs defines the failure kinds a transcription run can report.
//
// Every per-file failure the batch driver records is one of these kinds, so the
// CLI can summarize failures and callers can branch with errors.Is:
//
//	if errors.Is(err, errs.ErrExtraction) { ... }
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindExtraction
	KindRecognition
	KindWrite
)

var (
	ErrNotFound    = errors.New("not found")
	ErrExtraction  = errors.New("audio extraction failed")
	ErrRecognition = errors.New("speech recognition failed")
	ErrWrite       = errors.New("write failed")
)

// String returns the short name used in logs and history rows.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindExtraction:
		return "extraction"
	case KindRecognition:
		return "recognition"
	case KindWrite:
		return "write"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindExtraction:
		return ErrExtraction
	case KindRecognition:
		return ErrRecognition
	case KindWrite:
		return ErrWrite
	default:
		return nil
	}
}

// Error is a classified failure tied to a path.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.sentinel()
	if msg == nil {
		msg = errors.New("failed")
	}
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", msg, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", msg, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", msg, e.Err)
	default:
		return msg.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for this error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// NotFound reports a missing input directory or file.
func NotFound(path string, err error) error {
	return &Error{Kind: KindNotFound, Path: path, Err: err}
}

// Extraction reports an audio extraction failure.
func Extraction(path string, err error) error {
	return &Error{Kind: KindExtraction, Path: path, Err: err}
}

// Recognition reports a speech recognition failure.
func Recognition(path string, err error) error {
	return &Error{Kind: KindRecognition, Path: path, Err: err}
}

// Write reports an output write failure.
func Write(path string, err error) error {
	return &Error{Kind: KindWrite, Path: path, Err: err}
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
