package backup

import (
	"path/filepath"
	"strings"

	"cartridge/utils"
)

// userHomeSegment replaces the username-bearing part of a path so that a
// backup made on one account can be restored on another.
const userHomeSegment = "user_home"

// anonymizer maps a host path to the relative path it occupies inside a
// game's backup directory. The mapping is a pure function of the path
// and the configured home directory; it never touches the filesystem.
// The variant is selected from the path's shape, so a backup tree made
// on one platform stays restorable on the other where the shape permits.
type anonymizer struct {
	home string
}

func (a anonymizer) anonymize(path string) string {
	if utils.StartsWithDriveLetter(path) {
		return a.anonymizeWindows(path)
	}
	return a.anonymizePosix(path)
}

// anonymizePosix: paths under the home directory become
// user_home/<relative>; other absolute paths lose their leading root;
// relative paths pass through unchanged.
func (a anonymizer) anonymizePosix(path string) string {
	path = filepath.Clean(path)

	if a.home != "" {
		home := strings.TrimSuffix(filepath.Clean(a.home), "/")
		if path == home {
			return userHomeSegment
		}
		if strings.HasPrefix(path, home+"/") {
			return filepath.Join(userHomeSegment, path[len(home)+1:])
		}
	}

	if strings.HasPrefix(path, "/") {
		return strings.TrimLeft(path, "/")
	}
	return path
}

// anonymizeWindows: the drive prefix becomes drive_<letter>, and a
// Users/<username> pair collapses to Users/user_home. Separators and
// root markers are dropped, keeping only normal components.
func (a anonymizer) anonymizeWindows(path string) string {
	drive := "drive_" + strings.ToLower(path[:1])

	components := strings.FieldsFunc(utils.StripDriveLetter(path), func(r rune) bool {
		return r == '/' || r == '\\'
	})

	out := []string{drive}
	for i := 0; i < len(components); i++ {
		if strings.EqualFold(components[i], "Users") && i+1 < len(components) {
			out = append(out, "Users", userHomeSegment)
			i++
			continue
		}
		out = append(out, components[i])
	}
	return filepath.Join(out...)
}
