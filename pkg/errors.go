package trigdet

import "fmt"

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

// ErrConfiguration represents a malformed or missing setup parameter.
type ErrConfiguration struct {
	Message string
}

func (e *ErrConfiguration) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ErrUnknownChannelKind represents a hit on a map plane outside {1, 2}.
type ErrUnknownChannelKind struct {
	Plane   int
	Counter int
}

func (e *ErrUnknownChannelKind) Error() string {
	return fmt.Sprintf("unknown channel kind: plane %d, counter %d (only planes %d and %d are available)",
		e.Plane, e.Counter, ADC_PLANE, TDC_PLANE)
}

// ErrChannelOutOfRange represents a hit whose counter falls outside the
// configured channel count for its plane.
type ErrChannelOutOfRange struct {
	Plane      int
	Counter    int
	Configured int
}

func (e *ErrChannelOutOfRange) Error() string {
	return fmt.Sprintf("channel out of range: plane %d, counter %d, configured channels %d",
		e.Plane, e.Counter, e.Configured)
}

// ErrLifecycle represents a detector call made out of order.
type ErrLifecycle struct {
	Op     string
	Status DetStatus
}

func (e *ErrLifecycle) Error() string {
	return fmt.Sprintf("lifecycle error: %s called while detector is %v", e.Op, e.Status)
}
