package domain

import (
	"path/filepath"
	"strings"
)

const (
	// FallbackName substitutes a caption that sanitizes to nothing.
	FallbackName = "user"

	// DefaultExtension is used when neither the declared filename nor the
	// transport path carries one.
	DefaultExtension = ".bin"

	// PhotoExtension is what the transport serves compressed photos as.
	PhotoExtension = ".jpg"

	// PDFExtension is the only extension accepted under the PDF-only policy.
	PDFExtension = ".pdf"
)

// forbiddenRunes are unsafe in filenames and storage object names.
const forbiddenRunes = `/\:*?"<>|`

// Sanitize turns free-form caption text into a storage-safe token: trims
// surrounding whitespace, collapses internal whitespace runs into single
// underscores and strips forbidden runes. An empty result falls back to
// FallbackName. Idempotent.
func Sanitize(raw string) string {
	joined := strings.Join(strings.Fields(raw), "_")
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(forbiddenRunes, r) {
			return -1
		}
		return r
	}, joined)
	if cleaned == "" {
		return FallbackName
	}
	return cleaned
}

// ExtensionFromName extracts the trailing extension including the dot, or
// an empty string when the name has none.
func ExtensionFromName(name string) string {
	return filepath.Ext(name)
}

// ComposeStorageName derives the canonical storage object name from the
// user caption, the configured suffix and the resolved extension.
func ComposeStorageName(caption, suffix, ext string) string {
	return Sanitize(caption) + "_" + suffix + ext
}
