package instrument

import "errors"

var (
	// ErrNotFound marks references to components or parameters that do not
	// exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate marks names that are already in use.
	ErrDuplicate = errors.New("already in use")
	// ErrIllegalName marks names that are not legal C identifiers.
	ErrIllegalName = errors.New("not a legal C identifier")
	// ErrRequired marks required component parameters without a value.
	ErrRequired = errors.New("required parameter not set")
)

// NameError is returned when a name cannot be resolved or used.
type NameError struct {
	Kind    error
	Message string
}

func (e *NameError) Error() string {
	return e.Message
}

func (e *NameError) Unwrap() error {
	return e.Kind
}

func nameError(kind error, message string) *NameError {
	return &NameError{Kind: kind, Message: message}
}

// InputError is returned for arguments of the wrong shape.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}
