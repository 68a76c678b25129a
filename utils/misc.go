package utils

import (
	"os"
	"path/filepath"
)

// StartsWithDriveLetter reports whether path begins with a Windows drive
// prefix such as "C:".
func StartsWithDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// StripDriveLetter removes the drive prefix, if any.
func StripDriveLetter(path string) string {
	if StartsWithDriveLetter(path) {
		return path[2:]
	}
	return path
}

func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return err
	})
	return size, err
}
