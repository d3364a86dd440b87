package extractor

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a text could not be parsed.
type ErrorKind string

const (
	KindNoDate       ErrorKind = "no_date"
	KindNoTimeRange  ErrorKind = "no_time_range"
	KindInvalidRange ErrorKind = "invalid_range"
	KindInvalidDate  ErrorKind = "invalid_date"
	KindUnrecognized ErrorKind = "unrecognized"
)

// ParseError carries the failure kind and the offending text.
type ParseError struct {
	Kind ErrorKind
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return string(e.Kind)
}

// Is matches any ParseError of the same kind, so errors.Is(err, ErrNoDate) works.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Kind sentinels for errors.Is.
var (
	ErrNoDate       = &ParseError{Kind: KindNoDate}
	ErrNoTimeRange  = &ParseError{Kind: KindNoTimeRange}
	ErrInvalidRange = &ParseError{Kind: KindInvalidRange}
	ErrInvalidDate  = &ParseError{Kind: KindInvalidDate}
	ErrUnrecognized = &ParseError{Kind: KindUnrecognized}
)

func newParseError(kind ErrorKind, text, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// withText points a ParseError at the caller's original text instead of an
// intermediate, partly masked copy.
func withText(err error, text string) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		out := *perr
		out.Text = text
		return &out
	}
	return err
}
