package catalog

import (
	"testing"

	"github.com/mhanac/storefront-backend/pkg/enums"
)

func TestSeedIntegrity(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range products {
		if seen[p.ID] {
			t.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = true

		if !p.Region.IsValid() {
			t.Errorf("product %s: invalid region %q", p.ID, p.Region)
		}
		if !p.Category.IsValid() {
			t.Errorf("product %s: invalid category %q", p.ID, p.Category)
		}
		if want := enums.CurrencyForRegion(p.Region); p.Currency != want {
			t.Errorf("product %s: currency %s, region %s wants %s", p.ID, p.Currency, p.Region, want)
		}
		if !p.Price.IsPositive() {
			t.Errorf("product %s: non-positive price %s", p.ID, p.Price)
		}
		if c, ok := CategoryByKey(p.Category); !ok || !c.OfferedIn(p.Region) {
			t.Errorf("product %s: category %s not offered in %s", p.ID, p.Category, p.Region)
		}
		for _, lang := range enums.Languages() {
			if p.Title[lang] == "" {
				t.Errorf("product %s: missing %s title", p.ID, lang)
			}
		}
	}
}

func TestTitleFallsBackToEnglish(t *testing.T) {
	t.Parallel()

	title := Title{enums.LanguageEN: "Garden Hose"}
	if got := title.For(enums.LanguageHT); got != "Garden Hose" {
		t.Fatalf("For(ht) = %q, want english fallback", got)
	}
	title[enums.LanguageHT] = "Tiyo jaden"
	if got := title.For(enums.LanguageHT); got != "Tiyo jaden" {
		t.Fatalf("For(ht) = %q, want translation", got)
	}
}

func TestProductByID(t *testing.T) {
	t.Parallel()

	p, ok := ProductByID("ht-grc-ricebag")
	if !ok || p.Region != enums.RegionHaiti {
		t.Fatalf("ProductByID(ht-grc-ricebag) = %v, %v", p.ID, ok)
	}
	if _, ok := ProductByID("no-such-product"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestCategoriesByRegion(t *testing.T) {
	t.Parallel()

	byKey := func(list []Category, key enums.CategoryKey) bool {
		for _, c := range list {
			if c.Key == key {
				return true
			}
		}
		return false
	}

	us := CategoriesByRegion(enums.RegionUS)
	if !byKey(us, enums.CategoryAutomotive) || byKey(us, enums.CategoryServices) {
		t.Fatal("us category set wrong")
	}

	ht := CategoriesByRegion(enums.RegionHaiti)
	if !byKey(ht, enums.CategoryServices) || byKey(ht, enums.CategoryAutomotive) {
		t.Fatal("haiti category set wrong")
	}

	if us[0].Key != enums.CategoryDeals || ht[0].Key != enums.CategoryDeals {
		t.Fatal("deals must lead every region's category list")
	}
}
