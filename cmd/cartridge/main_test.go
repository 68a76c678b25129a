package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWillRunInitOnlyInCommandPosition(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	args := [][]string{
		{"cartridge", "init"},
		{"cartridge", "-v", "init"},
		{"cartridge", "--verbose", "init"},
	}
	for _, a := range args {
		os.Args = a
		require.True(t, willRunInit(), "args: %v", a)
	}

	// A game named init must not be mistaken for the subcommand.
	args = [][]string{
		{"cartridge"},
		{"cartridge", "backup", "init"},
		{"cartridge", "restore", "init"},
		{"cartridge", "-v", "backup", "init"},
		{"cartridge", "list"},
	}
	for _, a := range args {
		os.Args = a
		require.False(t, willRunInit(), "args: %v", a)
	}
}
