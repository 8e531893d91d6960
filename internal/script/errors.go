package script

import "fmt"

// LoadError reports a configuration module that failed to parse or evaluate,
// or that does not provide the expected entry point.
type LoadError struct {
	Module string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Module, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// EvalError reports a loaded entry point that failed for one entry.
type EvalError struct {
	Surface string
	Path    string
	Err     error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("%s: evaluating %s: %v", e.Path, e.Surface, e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }
