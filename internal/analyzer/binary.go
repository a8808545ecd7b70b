package analyzer

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultBinaryName is the analyzer executable expected on PATH when no
// explicit path is configured.
const DefaultBinaryName = "move-function-analyzer"

const (
	// AnalysisTimeout is the maximum time allowed for one per-function
	// analyzer invocation.
	AnalysisTimeout = 30 * time.Second

	// VersionProbeTimeout bounds the --version liveness probe.
	VersionProbeTimeout = 5 * time.Second
)

// ResolveBinary resolves the analyzer binary location. A path containing a
// separator is used directly; a bare name is looked up on PATH. On Unix the
// executable bit is ensured for direct paths, matching how the binary is
// shipped in release archives without its mode preserved.
func ResolveBinary(path string) (string, error) {
	if path == "" {
		path = DefaultBinaryName
	}

	if strings.ContainsRune(path, os.PathSeparator) {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return "", &BinaryNotFoundError{Path: path}
		}
		if runtime.GOOS != "windows" {
			if err := os.Chmod(path, 0o755); err != nil {
				return "", &BinaryNotFoundError{Path: path}
			}
		}
		return path, nil
	}

	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", &BinaryNotFoundError{Path: path}
	}
	return resolved, nil
}

// verifyBinary checks that the analyzer binary is functional by running
// --version with a short bound.
func verifyBinary(ctx context.Context, runner CommandRunner, binaryPath string) error {
	probeCtx, cancel := context.WithTimeout(ctx, VersionProbeTimeout)
	defer cancel()

	_, _, exitCode, err := runner.Run(probeCtx, binaryPath, "--version")
	if probeCtx.Err() == context.DeadlineExceeded {
		return &TimeoutError{Function: "--version", Timeout: VersionProbeTimeout}
	}
	if err != nil || exitCode != 0 {
		return &BinaryNotFoundError{Path: binaryPath}
	}
	return nil
}
