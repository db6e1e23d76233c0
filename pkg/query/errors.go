package query

import "fmt"

// SyntaxError reports a filter expression that could not be parsed.
// Pos is the byte offset in Input where the problem was noticed.
type SyntaxError struct {
	Attribute Attribute
	Input     string
	Pos       int
	Msg       string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid --%s filter %q at position %d: %s", e.Attribute, e.Input, e.Pos, e.Msg)
}

// UsageError reports options that cannot be combined or are missing.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}
