package util

import (
	"errors"
	"strings"
)

// SanitizeFileName reduces a client-supplied file name to a safe object-key
// component: letters, digits, '.' and '-' pass through, everything else
// becomes '-'. Traversal patterns and empty names are rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return '-'
		}
	}, s)
	s = strings.Trim(s, "-")
	if s == "" || s == "." {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
