package util

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
)

// MaxFileNameRunes bounds names echoed back in candidate lists and logs.
const MaxFileNameRunes = 128

var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName keeps the base name of an uploaded file, drops control characters and
// shortens long names while keeping the extension. Traversal attempts are rejected.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrInvalidFileName
	}

	runes := []rune(name)
	if len(runes) <= MaxFileNameRunes {
		return name, nil
	}
	ext := []rune(filepath.Ext(name))
	if len(ext) >= MaxFileNameRunes {
		ext = nil
	}
	return string(runes[:MaxFileNameRunes-len(ext)]) + string(ext), nil
}
