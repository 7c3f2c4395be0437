package compose

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a malformed definition: mismatched or
// non-monotonic interpolation ranges, bad envelope breakpoints, or an
// invalid Sequence window. Definitions are never silently coerced.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// ResolutionError wraps an error returned by a content generator while a
// frame was being resolved. The frame is abandoned and the error surfaces
// to the caller; resolution is never retried.
type ResolutionError struct {
	Sequence string
	Frame    int
	Err      error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve frame %d: sequence %q: %v", e.Frame, e.Sequence, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// ErrOutOfWindow signals that a content generator was invoked outside its
// declared active window. The resolver never does this, so observing it
// means the compositor itself is broken.
var ErrOutOfWindow = errors.New("sequence evaluated outside its active window")
