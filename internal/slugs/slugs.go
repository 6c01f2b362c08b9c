// Package slugs turns free-form note titles into filesystem- and URL-safe
// tokens. Slugging is used both as a public CLI action and for deriving a
// filename from --title when no filename is given.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// Make converts text to a lowercase slug containing only [a-z0-9] and single
// hyphens, with no leading or trailing hyphens. It is idempotent.
func Make(text string) string {
	s := goslug.Make(text)
	if s == "" {
		// gosimple/slug can reduce some inputs (e.g. all punctuation) to
		// nothing; fall back to a conservative ASCII transformation.
		return asciiSlug(text)
	}
	// gosimple/slug lets underscores through; the slug alphabet here is
	// hyphens only.
	if strings.ContainsRune(s, '_') {
		s = collapseHyphens(strings.ReplaceAll(s, "_", "-"))
	}
	return s
}

// collapseHyphens squeezes hyphen runs to single hyphens and strips them
// from the ends.
func collapseHyphens(s string) string {
	var b strings.Builder
	prevDash := false
	for _, r := range s {
		if r == '-' {
			prevDash = true
			continue
		}
		if prevDash && b.Len() > 0 {
			b.WriteRune('-')
		}
		prevDash = false
		b.WriteRune(r)
	}
	return b.String()
}

// Filename derives the on-disk filename for a note title.
func Filename(title string) string {
	return Make(title) + ".md"
}

func asciiSlug(text string) string {
	var b strings.Builder
	prevDash := false

	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash && b.Len() > 0 {
				b.WriteRune('-')
				prevDash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
