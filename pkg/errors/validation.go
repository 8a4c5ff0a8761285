package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateOutputName validates the base name (without extension) that the
// image and the DOT sidecar are written under.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory (no trailing separator, not "." or "..")
func ValidateOutputName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "output name cannot be empty")
	}

	const maxPathLength = 500
	if len(name) > maxPathLength {
		return New(ErrCodeInvalidPath, "output name too long (max %d characters)", maxPathLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output name contains invalid characters")
		}
	}

	if strings.HasSuffix(name, "/") || strings.HasSuffix(name, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output name must be a file, not a directory: %q", name)
	}

	switch filepath.Base(name) {
	case ".", "..":
		return New(ErrCodeInvalidPath, "output name must be a file, not a directory: %q", name)
	}

	return nil
}

// ValidateChoice checks that value is one of allowed, returning an Error with
// the given code that lists the accepted values otherwise.
func ValidateChoice(code Code, kind, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(code, "invalid %s: %s (must be one of %s)", kind, value, strings.Join(allowed, ", "))
}
