package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// copyTree mirrors source into dest. A regular-file source is copied
// into dest under its basename; a directory source is copied
// recursively. Earlier copies are not rolled back on failure.
func (s *Service) copyTree(source, dest string) error {
	info, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("could not stat %s: %w", source, err)
	}

	if !info.IsDir() {
		destFile := filepath.Join(dest, filepath.Base(source))
		s.log.Debug("copying file", zap.String("from", source), zap.String("to", destFile))
		return copyFile(source, destFile)
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return fmt.Errorf("could not read directory %s: %w", source, err)
	}
	for _, entry := range entries {
		var (
			sourcePath = filepath.Join(source, entry.Name())
			destPath   = filepath.Join(dest, entry.Name())
		)
		if entry.IsDir() {
			err = os.MkdirAll(destPath, 0755)
			if err != nil {
				return fmt.Errorf("could not create directory %s: %w", destPath, err)
			}
			err = s.copyTree(sourcePath, destPath)
			if err != nil {
				return err
			}
		} else {
			s.log.Debug("copying file", zap.String("from", sourcePath), zap.String("to", destPath))
			err = copyFile(sourcePath, destPath)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// copyPattern copies every regular file under sourceDir matching the
// glob pattern into the top level of destDir. Matched files keep only
// their basename: two matches sharing a basename in different
// subdirectories overwrite each other. Directories among the matches
// are ignored.
func (s *Service) copyPattern(sourceDir, destDir, pattern string) error {
	fullPattern := filepath.Join(sourceDir, pattern)
	s.log.Debug("matching pattern", zap.String("pattern", fullPattern))

	matches, err := doublestar.FilepathGlob(fullPattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %s: %w", fullPattern, err)
	}

	count := 0
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			return fmt.Errorf("could not stat %s: %w", match, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		destFile := filepath.Join(destDir, filepath.Base(match))
		s.log.Debug("copying file", zap.String("from", match), zap.String("to", destFile))
		err = copyFile(match, destFile)
		if err != nil {
			return err
		}
		count++
	}

	s.log.Info("copied files matching pattern", zap.Int("count", count), zap.String("pattern", pattern))
	return nil
}

// copyFile copies content and permission bits.
func copyFile(source, dest string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", source, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("could not stat %s: %w", source, err)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("could not create %s: %w", dest, err)
	}
	_, err = io.Copy(out, in)
	if err != nil {
		out.Close()
		return fmt.Errorf("could not copy %s to %s: %w", source, dest, err)
	}
	err = out.Close()
	if err != nil {
		return err
	}
	// An already existing destination keeps its old mode through
	// OpenFile, so set it explicitly.
	return os.Chmod(dest, info.Mode().Perm())
}
