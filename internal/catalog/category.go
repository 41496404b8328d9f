package catalog

import "github.com/mhanac/storefront-backend/pkg/enums"

// Category pairs a key with the set of regions it is offered in. The static
// list below is the source of truth; declaration order is the display order.
type Category struct {
	Key     enums.CategoryKey `json:"key"`
	Regions []enums.Region    `json:"regions"`
}

var categories = []Category{
	{Key: enums.CategoryDeals, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryElectronics, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryHomeKitchen, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryBeauty, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryFashion, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryGrocery, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryHealth, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryBabyKids, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryToysGames, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategorySportsOutdoors, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},

	// US-only assortment
	{Key: enums.CategoryAutomotive, Regions: []enums.Region{enums.RegionUS}},
	{Key: enums.CategoryPetSupplies, Regions: []enums.Region{enums.RegionUS}},

	{Key: enums.CategoryToolsHomeImprovement, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
	{Key: enums.CategoryOfficeSchool, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},

	// Haiti-only assortment
	{Key: enums.CategoryServices, Regions: []enums.Region{enums.RegionHaiti}},

	{Key: enums.CategoryWholesaleBulk, Regions: []enums.Region{enums.RegionUS, enums.RegionHaiti}},
}

// Categories returns the full static category list in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoriesByRegion filters the static list to categories offered in the
// region, preserving declaration order.
func CategoriesByRegion(region enums.Region) []Category {
	var out []Category
	for _, c := range categories {
		if c.OfferedIn(region) {
			out = append(out, c)
		}
	}
	return out
}

// CategoryByKey looks up a static category entry by its key.
func CategoryByKey(key enums.CategoryKey) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// OfferedIn reports whether the category is available in the region.
func (c Category) OfferedIn(region enums.Region) bool {
	for _, r := range c.Regions {
		if r == region {
			return true
		}
	}
	return false
}
