package settings

import "errors"

var (
	// ErrKeyNotFound is returned by lookups when the section is absent or
	// not an object, or the key is absent within it.
	ErrKeyNotFound = errors.New("key not found")
	// ErrConversion is returned when a value cannot be converted to the
	// requested kind or Go type.
	ErrConversion = errors.New("value conversion failed")
	// ErrMalformedConfig is returned when a configuration document is not a
	// JSON object.
	ErrMalformedConfig = errors.New("malformed configuration")
	// ErrFatal marks failures after which the process should stop.
	ErrFatal = errors.New("fatal configuration error")
)

// FatalError reports a failure the manager cannot recover from, such as the
// default configuration being unavailable when no local file exists.
// It matches both ErrFatal and the underlying cause with errors.Is.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *FatalError) Unwrap() []error {
	return []error{ErrFatal, e.Err}
}
