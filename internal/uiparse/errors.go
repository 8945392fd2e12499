package uiparse

import "fmt"

// ParseError reports text the client rendered that could not be decoded.
type ParseError struct {
	What string // e.g. "distance", "capacity gauge"
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.What, e.Text, e.Msg)
}

func parseErr(what, text, format string, args ...any) *ParseError {
	return &ParseError{What: what, Text: text, Msg: fmt.Sprintf(format, args...)}
}

// Parsed holds either a decoded value or the error explaining why the text
// next to it did not decode.
type Parsed[T any] struct {
	Value T
	Err   error
}

func parsed[T any](v T, err error) Parsed[T] {
	if err != nil {
		return Parsed[T]{Err: err}
	}
	return Parsed[T]{Value: v}
}

// Get returns the value and error separately.
func (p Parsed[T]) Get() (T, error) { return p.Value, p.Err }

// OK reports whether the value decoded.
func (p Parsed[T]) OK() bool { return p.Err == nil }
