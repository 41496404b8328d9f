package catalog

import (
	"sort"
	"strings"

	"github.com/mhanac/storefront-backend/pkg/enums"
)

// FilterByRegionAndCategory narrows the list to one region and one category.
// Both fields match exactly; deals is a real category, not a union view.
func FilterByRegionAndCategory(list []Product, region enums.Region, category enums.CategoryKey) []Product {
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if p.Region != region || p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchByTitle keeps products whose title in the given language contains the
// query, case-insensitively. Titles fall back to English for languages with no
// translation. An empty or whitespace-only query keeps everything.
func SearchByTitle(list []Product, lang enums.Language, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	out := make([]Product, 0, len(list))
	for _, p := range list {
		if strings.Contains(strings.ToLower(p.Title.For(lang)), q) {
			out = append(out, p)
		}
	}
	return out
}

// SortProducts returns a sorted copy; the input is never reordered. Featured
// keeps catalog order. Ties preserve catalog order in every mode.
func SortProducts(list []Product, key enums.SortKey) []Product {
	out := make([]Product, len(list))
	copy(out, list)
	switch key {
	case enums.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case enums.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case enums.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].IsNew && !out[j].IsNew
		})
	}
	return out
}
