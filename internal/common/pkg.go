package common

import (
	"path"
	"strings"
	"unicode"
)

// PackageName guesses the name a package is referred to by from its import
// path: the last element without a major version suffix, with characters
// that cannot appear in an identifier dropped. "example.com/nav/v2" and
// "gopkg.in/yaml.v3" give "nav" and "yaml". Returns "" for an empty path.
func PackageName(importPath string) string {
	if importPath == "" {
		return ""
	}

	dir, last := path.Split(importPath)
	if isMajorVersion(last) && dir != "" {
		last = path.Base(dir)
	}

	if i := strings.LastIndex(last, "."); i > 0 && isMajorVersion(last[i+1:]) {
		last = last[:i]
	}

	last = strings.TrimPrefix(last, "go-")

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return r
		}

		return -1
	}, last)
}

// isMajorVersion reports whether elem is a module major version suffix
// such as "v2".
func isMajorVersion(elem string) bool {
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
