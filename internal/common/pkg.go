package common

import "path"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// IsGoVersionSuffix reports whether elem looks like a major version path
// element such as "v2".
func IsGoVersionSuffix(elem string) bool {
	if len(elem) < 2 || elem[0] != 'v' {
		return false
	}

	for _, r := range elem[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
