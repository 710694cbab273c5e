// Package slug derives URL-safe identifiers from display names.
package slug

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/SscSPs/biztime_api/internal/apperrors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var validSlug = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Normalize turns a display name into a lowercase, hyphen-separated ASCII token,
// e.g. "Acme Corp." -> "acme-corp" and "Café Müller" -> "cafe-muller".
// Whitespace, '-' and '_' separate words; any other punctuation is dropped.
// Different names may normalize to the same slug ("Acme!" and "Acme?").
func Normalize(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: name must not be empty", apperrors.ErrInvalidName)
	}

	// The chain is stateful, so it is built per call.
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, name)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidName, err)
	}

	var b strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingSep = b.Len() > 0
			continue
		default:
			continue
		}
		if pendingSep {
			b.WriteByte('-')
			pendingSep = false
		}
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q has no letters or digits", apperrors.ErrInvalidName, name)
	}
	return b.String(), nil
}

// Valid reports whether s is already in normalized form.
func Valid(s string) bool {
	return validSlug.MatchString(s)
}
