package prformat

import (
	"errors"
	"fmt"
)

// ErrTrailersNotSuffix is returned when the parsed trailer block does not
// end the normalized body, so it cannot be split off safely
var ErrTrailersNotSuffix = errors.New("parsed trailers are not a suffix of the body")

// ConfigurationError reports missing input or an unusable setup
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error [%s]: %s", e.Field, e.Message)
}

// ExecutionError reports an external command that exited non-zero
type ExecutionError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *ExecutionError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("running `%s`: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("running `%s`: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
