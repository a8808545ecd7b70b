package analyzer

import (
	"fmt"
	"time"
)

// The analyzer package reports failures as a closed set of typed errors so
// callers can handle each condition exhaustively with errors.As.

// ProjectNotFoundError indicates the project directory does not exist or has
// no Move.toml manifest.
type ProjectNotFoundError struct {
	Path string
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("Move project not found at path: %s", e.Path)
}

// BinaryNotFoundError indicates the analyzer binary is missing or cannot be
// executed. Path is the resolved location that was attempted.
type BinaryNotFoundError struct {
	Path string
}

func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf("analyzer binary not found at: %s", e.Path)
}

// FunctionNotFoundError indicates the analyzer ran successfully but found no
// function with the requested name.
type FunctionNotFoundError struct {
	Function    string
	ProjectPath string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("function %q not found in project at %s", e.Function, e.ProjectPath)
}

// AnalysisFailedError indicates the analyzer ran but produced malformed
// output or an unrecognized non-zero exit. ExitCode is zero when the failure
// happened after a successful exit (e.g. unparseable stdout).
type AnalysisFailedError struct {
	Message  string
	ExitCode int
}

func (e *AnalysisFailedError) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("%s (exit code: %d)", e.Message, e.ExitCode)
	}
	return e.Message
}

// TimeoutError indicates the analyzer did not complete within the bound.
// Batch callers treat it as "no results for this name", not a fatal error.
type TimeoutError struct {
	Function string
	Timeout  time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("analysis of %q timed out after %s", e.Function, e.Timeout)
}
