package dataset

import (
	"path/filepath"
	"strings"
)

// Format is a dataset file format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_JSON     = Format(0) // json
	FORMAT_YAML     = Format(1) // yaml
	FORMAT_STARLARK = Format(2) // star
)

// ParseFormat returns the format for a name such as "json" or "yaml".
func ParseFormat(name string) (format Format, err error) {
	switch strings.ToLower(name) {
	case "json":
		format = FORMAT_JSON
	case "yaml", "yml":
		format = FORMAT_YAML
	case "star", "starlark":
		format = FORMAT_STARLARK
	default:
		err = ErrFormat(name)
	}

	return
}

// FormatOf guesses the format from a file name, defaulting to JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FORMAT_YAML
	case ".star", ".starlark":
		return FORMAT_STARLARK
	}

	return FORMAT_JSON
}
