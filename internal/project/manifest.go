package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestName is the file that identifies a Move project root.
const ManifestName = "Move.toml"

// Manifest is the subset of Move.toml the tooling cares about.
type Manifest struct {
	Package   PackageInfo       `toml:"package"`
	Addresses map[string]string `toml:"addresses"`
}

// PackageInfo identifies the Move package being analyzed.
type PackageInfo struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// ManifestPath returns the expected manifest location for a project root.
func ManifestPath(projectPath string) string {
	return filepath.Join(projectPath, ManifestName)
}

// LoadManifest reads and parses the project's Move.toml. Analysis validity
// only requires the manifest to exist; parsing is used for user-facing
// output, so callers may treat a parse failure as non-fatal.
func LoadManifest(projectPath string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(projectPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ManifestName, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ManifestName, err)
	}
	return &m, nil
}
