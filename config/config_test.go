package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cartridge.toml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestReadFullDocument(t *testing.T) {
	path := writeConfig(t, `
[[var]]
name = "saves"
value = "${home}/.local/share"

[[game]]
name = "GameA"

[[game.save]]
path = "${saves}/GameA"

[[game.save]]
path = "${saves}/GameA-extra"
files = ["*.sav", "backup_*.dat"]

[[game]]
name = "GameB"
enabled = false
`)

	cfg, v, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, path, v.ConfigFileUsed())

	require.Len(t, cfg.Vars, 1)
	require.Equal(t, "saves", cfg.Vars[0].Name)
	require.Equal(t, "${home}/.local/share", cfg.Vars[0].Value)

	require.Len(t, cfg.Games, 2)

	gameA := cfg.Games[0]
	require.Equal(t, "GameA", gameA.Name)
	require.True(t, gameA.IsEnabled())
	require.Len(t, gameA.Saves, 2)
	require.Equal(t, "${saves}/GameA", gameA.Saves[0].Path)
	require.Empty(t, gameA.Saves[0].Files)
	require.Equal(t, []string{"*.sav", "backup_*.dat"}, gameA.Saves[1].Files)

	gameB := cfg.Games[1]
	require.Equal(t, "GameB", gameB.Name)
	require.False(t, gameB.IsEnabled())
	require.Empty(t, gameB.Saves)
}

func TestReadUnknownFieldsIgnored(t *testing.T) {
	path := writeConfig(t, `
title = "my saves"

[[game]]
name = "GameA"
publisher = "whatever"
`)
	cfg, _, err := Read(path)
	require.NoError(t, err)
	require.Len(t, cfg.Games, 1)
	require.Equal(t, "GameA", cfg.Games[0].Name)
}

func TestReadMalformed(t *testing.T) {
	path := writeConfig(t, `[[game]`)
	_, _, err := Read(path)
	require.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, _, err := Read(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
