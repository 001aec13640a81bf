package aoc

import (
	"errors"
	"fmt"
)

// ErrNoInputPath is reported when no input file was named on the command line.
var ErrNoInputPath = errors.New("no input file path given")

// ErrBadInput matches every *DecodeError.
var ErrBadInput = errors.New("bad puzzle input")

// RunErrorKind says which stage of a run failed.
type RunErrorKind int

const (
	NoInputPath RunErrorKind = iota
	ReadingInput
	RunningPuzzle
)

func (k RunErrorKind) String() string {
	switch k {
	case NoInputPath:
		return "NoInputFilePathGiven"
	case ReadingInput:
		return "ReadingInputFilePath"
	case RunningPuzzle:
		return "RunningPuzzle"
	}
	return fmt.Sprintf("RunErrorKind(%d)", int(k))
}

// A RunError is returned by Run.
type RunError struct {
	Kind RunErrorKind
	Path string // input path, empty for NoInputPath
	Err  error
}

func (e *RunError) Error() string {
	switch e.Kind {
	case NoInputPath:
		return e.Kind.String()
	case ReadingInput:
		return fmt.Sprintf("%v(%q): %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// A DecodeError reports malformed puzzle input. Line and Col are 0-based;
// Col is -1 when the problem is not tied to a column.
type DecodeError struct {
	Line int
	Col  int
	Text string // offending text
	Msg  string
	Err  error // underlying cause, may be nil
}

// BadInput returns a *DecodeError for the text at line y, column x.
func BadInput(y, x int, text, format string, args ...any) *DecodeError {
	return &DecodeError{
		Line: y,
		Col:  x,
		Text: text,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap sets the underlying cause of e and returns e.
func (e *DecodeError) Wrap(err error) *DecodeError {
	e.Err = err
	return e
}

func (e *DecodeError) Error() string {
	pos := fmt.Sprintf("line %d", e.Line+1)
	if e.Col >= 0 {
		pos = fmt.Sprintf("line %d, col %d", e.Line+1, e.Col+1)
	}
	s := fmt.Sprintf("%v: %s: %s %q", ErrBadInput, pos, e.Msg, e.Text)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrBadInput }
