package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLocateExplicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves.toml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	found, err := Locate(path)
	require.NoError(t, err)
	require.Equal(t, path, found)
}

func TestLocateExplicitMissing(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestLocateSingleTOMLInCwd(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "saves.toml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	chdir(t, dir)

	found, err := Locate("")
	require.NoError(t, err)
	require.Equal(t, "saves.toml", filepath.Base(found))
}

func TestLocateNoTOMLInCwd(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Locate("")
	require.ErrorIs(t, err, ErrNoConfig)
}

func TestLocateAmbiguous(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.toml"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.toml"), nil, 0644))
	chdir(t, dir)

	_, err := Locate("")
	require.ErrorIs(t, err, ErrAmbiguousConfig)
	require.Contains(t, err.Error(), "a.toml")
	require.Contains(t, err.Error(), "b.toml")
}

func TestLocateIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "fake.toml"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.toml"), nil, 0644))
	chdir(t, dir)

	found, err := Locate("")
	require.NoError(t, err)
	require.Equal(t, "real.toml", filepath.Base(found))
}
