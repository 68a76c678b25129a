package utils

import "github.com/fatih/color"

var (
	Bold  = color.New(color.Bold)
	Red   = color.New(color.FgRed)
	Green = color.New(color.FgGreen)
	Warn  = color.New(color.FgYellow)
)
