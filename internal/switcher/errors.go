package switcher

import "fmt"

// UsageError means no toolkit index was given. It is the expected
// interactive path, not a crash.
type UsageError struct{}

func (e *UsageError) Error() string {
	return "no toolkit index given"
}

// NotFoundError means the requested index is not in the toolkit table.
type NotFoundError struct {
	Index string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no toolkit with index %q", e.Index)
}

// PathMissingError means the selected toolkit's install root does not exist
// on disk. No link update is attempted in this case.
type PathMissingError struct {
	Index   string
	Version string
	Root    string
}

func (e *PathMissingError) Error() string {
	return fmt.Sprintf("CUDA %s install root %s does not exist", e.Version, e.Root)
}

// OperationError means a privileged update-alternatives call failed.
type OperationError struct {
	Group string
	Err   error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("alternatives update for group %s failed: %v", e.Group, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
