package enums

import "fmt"

// CategoryKey represents the canonical storefront categories.
type CategoryKey string

const (
	// CategoryDeals is a synthetic, always-available category used for
	// promotional listings.
	CategoryDeals CategoryKey = "deals"

	CategoryElectronics          CategoryKey = "electronics"
	CategoryHomeKitchen          CategoryKey = "home_kitchen"
	CategoryBeauty               CategoryKey = "beauty"
	CategoryFashion              CategoryKey = "fashion"
	CategoryGrocery              CategoryKey = "grocery"
	CategoryHealth               CategoryKey = "health"
	CategoryBabyKids             CategoryKey = "baby_kids"
	CategoryToysGames            CategoryKey = "toys_games"
	CategorySportsOutdoors       CategoryKey = "sports_outdoors"
	CategoryAutomotive           CategoryKey = "automotive"
	CategoryToolsHomeImprovement CategoryKey = "tools_home_improvement"
	CategoryOfficeSchool         CategoryKey = "office_school"
	CategoryPetSupplies          CategoryKey = "pet_supplies"
	CategoryServices             CategoryKey = "services"
	CategoryWholesaleBulk        CategoryKey = "wholesale_bulk"
)

var validCategoryKeys = []CategoryKey{
	CategoryDeals,
	CategoryElectronics,
	CategoryHomeKitchen,
	CategoryBeauty,
	CategoryFashion,
	CategoryGrocery,
	CategoryHealth,
	CategoryBabyKids,
	CategoryToysGames,
	CategorySportsOutdoors,
	CategoryAutomotive,
	CategoryToolsHomeImprovement,
	CategoryOfficeSchool,
	CategoryPetSupplies,
	CategoryServices,
	CategoryWholesaleBulk,
}

// String implements fmt.Stringer.
func (c CategoryKey) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CategoryKey.
func (c CategoryKey) IsValid() bool {
	for _, candidate := range validCategoryKeys {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategoryKey converts raw input into a CategoryKey.
func ParseCategoryKey(value string) (CategoryKey, error) {
	for _, candidate := range validCategoryKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
