package enums

import "fmt"

// Language represents the locales the storefront can render.
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageHT Language = "ht"
	LanguageES Language = "es"
)

var validLanguages = []Language{
	LanguageEN,
	LanguageFR,
	LanguageHT,
	LanguageES,
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether the value is a known Language.
func (l Language) IsValid() bool {
	for _, candidate := range validLanguages {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseLanguage converts raw input into a Language.
func ParseLanguage(value string) (Language, error) {
	for _, candidate := range validLanguages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid language %q", value)
}

// Languages returns every supported language in declaration order.
func Languages() []Language {
	out := make([]Language, len(validLanguages))
	copy(out, validLanguages)
	return out
}
