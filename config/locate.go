package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoConfig        = errors.New("no TOML configuration file found")
	ErrAmbiguousConfig = errors.New("multiple TOML files found")
)

// Locate returns the path of the configuration file to use. If explicit
// is non-empty it must point to an existing file. Otherwise the working
// directory is scanned (non-recursively) for regular files with a .toml
// extension, and exactly one must exist.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("%w: %s", ErrNoConfig, explicit)
			}
			return "", err
		}
		return explicit, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get current directory: %w", err)
	}
	entries, err := os.ReadDir(wd)
	if err != nil {
		return "", fmt.Errorf("could not read current directory %s: %w", wd, err)
	}

	var tomlFiles []string
	for _, entry := range entries {
		if entry.Type().IsRegular() && filepath.Ext(entry.Name()) == ".toml" {
			tomlFiles = append(tomlFiles, entry.Name())
		}
	}

	switch len(tomlFiles) {
	case 0:
		return "", fmt.Errorf("%w in current directory", ErrNoConfig)
	case 1:
		return filepath.Join(wd, tomlFiles[0]), nil
	default:
		return "", fmt.Errorf("%w in current directory: %s. specify which one to use with --config",
			ErrAmbiguousConfig, strings.Join(tomlFiles, ", "))
	}
}
