package task

import (
	"fmt"
	"strings"
)

// ValidationError reports every schema violation found in a parameter
// set. Violations are listed in parameter declaration order, so the
// message is deterministic for a given spec and input.
type ValidationError struct {
	Task       string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid parameters: %s", e.Task, strings.Join(e.Violations, "; "))
}

// OutputNotFoundError means the tool exited zero but the expected output
// artifact is missing. It is deliberately distinct from an execution
// failure: the subprocess succeeded, the contract about its artifact did
// not hold.
type OutputNotFoundError struct {
	Task string
	Path string
}

func (e *OutputNotFoundError) Error() string {
	return fmt.Sprintf("%s: output file not found after successful run: %s", e.Task, e.Path)
}
