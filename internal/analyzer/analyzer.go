package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Analyzer drives the external move-function-analyzer binary over a Move
// project and decodes its per-function output.
type Analyzer struct {
	binaryPath string
	runner     CommandRunner
	batchArgs  bool
	timeout    time.Duration
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithRunner substitutes the process runner. Used by tests to avoid spawning
// real subprocesses.
func WithRunner(r CommandRunner) Option {
	return func(a *Analyzer) { a.runner = r }
}

// WithBatchArgs switches the invocation to the batch-reporting argument
// convention (--project-path, --function, --quiet) instead of the library
// convention (positional project path and function name).
func WithBatchArgs() Option {
	return func(a *Analyzer) { a.batchArgs = true }
}

// WithTimeout overrides the per-invocation analysis timeout.
func WithTimeout(d time.Duration) Option {
	return func(a *Analyzer) { a.timeout = d }
}

// New creates an Analyzer for the given binary path. An empty path resolves
// the default binary name on PATH. Returns BinaryNotFoundError when the
// binary is missing or unexecutable.
func New(binaryPath string, opts ...Option) (*Analyzer, error) {
	resolved, err := ResolveBinary(binaryPath)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		binaryPath: resolved,
		runner:     execRunner{},
		timeout:    AnalysisTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// BinaryPath returns the resolved analyzer binary location.
func (a *Analyzer) BinaryPath() string {
	return a.binaryPath
}

// Verify probes the binary with --version to confirm it is functional.
func (a *Analyzer) Verify(ctx context.Context) error {
	return verifyBinary(ctx, a.runner, a.binaryPath)
}

// ValidateProject checks that path is a Move project: the directory must
// exist and contain a Move.toml manifest. Returns ProjectNotFoundError
// otherwise. Runs before any analyzer invocation.
func ValidateProject(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return &ProjectNotFoundError{Path: path}
	}
	if _, err := os.Stat(filepath.Join(path, "Move.toml")); err != nil {
		return &ProjectNotFoundError{Path: fmt.Sprintf("no Move.toml found in %s", path)}
	}
	return nil
}

// Analyze runs the analyzer for one function name and decodes the results.
// Zero, one or many results may be returned; a function defined in several
// modules yields one result per definition.
func (a *Analyzer) Analyze(ctx context.Context, projectPath, functionName string) ([]AnalysisResult, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, &ProjectNotFoundError{Path: projectPath}
	}
	if err := ValidateProject(absPath); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	stdout, stderr, exitCode, runErr := a.runner.Run(runCtx, a.binaryPath, a.argsFor(absPath, functionName)...)

	// A killed child surfaces as an exit error, so the deadline check must
	// come before exit-code interpretation.
	if runCtx.Err() == context.DeadlineExceeded {
		return nil, &TimeoutError{Function: functionName, Timeout: a.timeout}
	}
	if runErr != nil {
		var execErr *exec.Error
		if errors.As(runErr, &execErr) || errors.Is(runErr, os.ErrPermission) {
			return nil, &BinaryNotFoundError{Path: a.binaryPath}
		}
		return nil, &AnalysisFailedError{Message: fmt.Sprintf("failed to execute analyzer: %v", runErr)}
	}

	return DecodeOutput(stdout, stderr, exitCode, functionName, absPath)
}

// AnalyzeRaw runs the same analysis as Analyze but returns the analyzer's
// original wire representation instead of the typed model. Both describe the
// same underlying result set.
func (a *Analyzer) AnalyzeRaw(ctx context.Context, projectPath, functionName string) ([]WireResult, error) {
	results, err := a.Analyze(ctx, projectPath, functionName)
	if err != nil {
		return nil, err
	}

	raw := make([]WireResult, len(results))
	for i := range results {
		raw[i] = results[i].ToWire()
	}
	return raw, nil
}

func (a *Analyzer) argsFor(projectPath, functionName string) []string {
	if a.batchArgs {
		return []string{"--project-path", projectPath, "--function", functionName, "--quiet"}
	}
	return []string{projectPath, functionName}
}

// AnalyzeFunction is a convenience wrapper: it resolves the default binary,
// analyzes one function and returns the typed results.
func AnalyzeFunction(ctx context.Context, projectPath, functionName string) ([]AnalysisResult, error) {
	a, err := New("")
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, projectPath, functionName)
}
