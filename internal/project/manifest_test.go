package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("valid manifest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		manifest := `[package]
name = "simple-nft"
version = "0.0.1"
edition = "2024.beta"

[addresses]
simple_nft = "0x0"
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte(manifest), 0o644))

		m, err := LoadManifest(dir)
		require.NoError(t, err)
		assert.Equal(t, "simple-nft", m.Package.Name)
		assert.Equal(t, "0.0.1", m.Package.Version)
		assert.Equal(t, "2024.beta", m.Package.Edition)
		assert.Equal(t, "0x0", m.Addresses["simple_nft"])
	})

	t.Run("missing manifest", func(t *testing.T) {
		t.Parallel()
		_, err := LoadManifest(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), ManifestName)
	})

	t.Run("malformed manifest", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestName), []byte("[package\n"), 0o644))

		_, err := LoadManifest(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})
}

func TestManifestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("/proj", "Move.toml"), ManifestPath("/proj"))
}
