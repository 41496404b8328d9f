package enums

import "fmt"

// SortKey represents the supported catalog sort orders.
type SortKey string

const (
	// SortFeatured keeps the catalog declaration order.
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
)

var validSortKeys = []SortKey{
	SortFeatured,
	SortPriceAsc,
	SortPriceDesc,
	SortNewest,
}

// String implements fmt.Stringer.
func (s SortKey) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortKey.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
