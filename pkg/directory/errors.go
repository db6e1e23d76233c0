package directory

import "fmt"

// NotFoundError is returned by Load when there is no file at Path.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no directory file at %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// FormatError is returned by Load when the file is not a valid directory.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid directory file %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
