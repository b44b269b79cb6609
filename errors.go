package cheat

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates an adapter, option or argument failed validation.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates the adapter does not serve the requested topic.
	ErrNotFound = errors.New("topic not found")

	// ErrUnknownAdapter indicates no adapter is registered under the name.
	ErrUnknownAdapter = errors.New("unknown adapter")

	// ErrTimeout indicates a content source did not finish in time.
	ErrTimeout = errors.New("timed out")
)

// ProcessError reports a content source command that could not be started or
// exited with a non-zero status. ExitCode is -1 when the process never ran.
type ProcessError struct {
	Adapter  string
	Argv     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s adapter: %s", e.Adapter, strings.Join(e.Argv, " "))
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, ": exit code %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		fmt.Fprintf(&b, ": %s", s)
	}
	return b.String()
}

func (e *ProcessError) Unwrap() error { return e.Err }
