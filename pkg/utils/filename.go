package utils

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const maxStoredNameLen = 200

// SanitizeFileName keeps letters, digits, dot, dash and underscore from the base
// name and replaces everything else with an underscore.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		out = "file"
	}
	if len(out) > maxStoredNameLen {
		out = out[len(out)-maxStoredNameLen:]
	}
	return out
}

// StoredFileName returns a collision-free blob name of the form <uuid>_<sanitised>.
func StoredFileName(original string) string {
	return uuid.NewString() + "_" + SanitizeFileName(original)
}
