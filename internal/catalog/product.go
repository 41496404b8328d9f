package catalog

import (
	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Title holds a product's localized names. Every catalog entry carries all
// four languages; English is the fallback for anything missing.
type Title map[enums.Language]string

// For returns the title in the requested language, falling back to English.
func (t Title) For(lang enums.Language) string {
	if v, ok := t[lang]; ok && v != "" {
		return v
	}
	return t[enums.LanguageEN]
}

// Product is one static catalog entry. Currency is fixed by the owning
// region at construction time and is never re-derived at display time.
type Product struct {
	ID       string            `json:"id"`
	Region   enums.Region      `json:"region"`
	Category enums.CategoryKey `json:"category"`
	Title    Title             `json:"title"`
	Price    decimal.Decimal   `json:"price"`
	Currency enums.Currency    `json:"currency"`
	Image    string            `json:"image,omitempty"`
	IsNew    bool              `json:"is_new,omitempty"`
}
