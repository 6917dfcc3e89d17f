package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotRepository indicates the configured path is not inside a git working tree
	ErrNotRepository = errors.New("not a git repository")

	// ErrUnknownRevision indicates a commit id or ref that git cannot resolve
	ErrUnknownRevision = errors.New("unknown revision")
)

// InspectionError wraps a failed git invocation together with its stderr output
type InspectionError struct {
	Args   []string // git arguments, without the leading "git"
	Stderr string   // raw stderr text from git
	Err    error    // underlying exec error
}

// Error returns a description including the raw stderr text
func (e *InspectionError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("git %s failed: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("git %s failed: %v\n%s", strings.Join(e.Args, " "), e.Err, strings.TrimSpace(e.Stderr))
}

// Unwrap returns the underlying exec error
func (e *InspectionError) Unwrap() error {
	return e.Err
}
