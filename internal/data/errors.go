package data

import (
	"errors"
	"fmt"
)

// ErrNoDataset is matched by errors.Is when a search finds nothing.
var ErrNoDataset = errors.New("no dataset found")

// NotFoundError reports a name that matched neither a component nor a file.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No dataset with name: %q found.", e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNoDataset
}

// InputError is returned when a search is given an unusable list.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// FormatError reports a malformed mccode.sim or data file.
type FormatError struct {
	File string
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
