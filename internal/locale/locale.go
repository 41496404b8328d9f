// Package locale maps regions to canonical languages and rewrites the
// language segment of storefront paths. Out-of-range values are never
// errors here; callers validate via pkg/enums and fall back to defaults.
package locale

import (
	"strings"

	"github.com/mhanac/storefront-backend/pkg/enums"
)

// LanguageForRegion returns the canonical language for a region.
// Total: unknown regions resolve like the US market.
func LanguageForRegion(region enums.Region) enums.Language {
	if region == enums.RegionHaiti {
		return enums.LanguageHT
	}
	return enums.LanguageEN
}

// DefaultRegionForLanguage computes the fallback region when neither the URL
// nor storage supplies one: English implies the US market, everything else
// implies Haiti.
func DefaultRegionForLanguage(lang enums.Language) enums.Region {
	if lang == enums.LanguageEN {
		return enums.RegionUS
	}
	if !lang.IsValid() {
		return enums.RegionUS
	}
	return enums.RegionHaiti
}

// StripLanguagePrefix removes a leading language segment if present.
// Idempotent; an emptied path collapses to "/".
func StripLanguagePrefix(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	first, rest, _ := strings.Cut(trimmed, "/")
	if _, err := enums.ParseLanguage(first); err != nil {
		return ensureLeadingSlash(path)
	}
	return ensureLeadingSlash(rest)
}

// ReplaceLanguageInPath forces the first path segment to the given language,
// replacing a recognized language segment or prepending one. Later segments
// are preserved untouched; query strings are the caller's concern.
func ReplaceLanguageInPath(path string, lang enums.Language) string {
	stripped := StripLanguagePrefix(path)
	if stripped == "/" {
		return "/" + lang.String()
	}
	return "/" + lang.String() + stripped
}

// LanguageFromPath reads the leading language segment, reporting whether one
// was present.
func LanguageFromPath(path string) (enums.Language, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	first, _, _ := strings.Cut(trimmed, "/")
	lang, err := enums.ParseLanguage(first)
	if err != nil {
		return "", false
	}
	return lang, true
}

func ensureLeadingSlash(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}
