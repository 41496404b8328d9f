package catalog

import (
	"testing"

	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

func TestFilterByRegionAndCategory(t *testing.T) {
	t.Parallel()

	us := FilterByRegionAndCategory(products, enums.RegionUS, enums.CategoryElectronics)
	if len(us) == 0 {
		t.Fatal("expected electronics products for us")
	}
	for _, p := range us {
		if p.Region != enums.RegionUS || p.Category != enums.CategoryElectronics {
			t.Fatalf("filter leaked product %s (%s/%s)", p.ID, p.Region, p.Category)
		}
	}
}

func TestFilterDealsMatchesExactly(t *testing.T) {
	t.Parallel()

	for _, region := range []enums.Region{enums.RegionUS, enums.RegionHaiti} {
		got := FilterByRegionAndCategory(products, region, enums.CategoryDeals)
		if len(got) == 0 {
			t.Fatalf("expected deals products for %s", region)
		}
		for _, p := range got {
			if p.Category != enums.CategoryDeals {
				t.Fatalf("deals filter leaked product %s with category %s", p.ID, p.Category)
			}
			if p.Region != region {
				t.Fatalf("deals filter leaked region %s", p.Region)
			}
		}
	}
}

func TestSearchByTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lang  enums.Language
		query string
		want  string
	}{
		{name: "english match", lang: enums.LanguageEN, query: "smart tv", want: "us-elc-tv55"},
		{name: "case insensitive", lang: enums.LanguageEN, query: "SMART TV", want: "us-elc-tv55"},
		{name: "french translation", lang: enums.LanguageFR, query: "téléviseur", want: "us-elc-tv55"},
		{name: "kreyol translation", lang: enums.LanguageHT, query: "diri peyi", want: "ht-grc-ricebag"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := SearchByTitle(products, tc.lang, tc.query)
			if len(got) != 1 || got[0].ID != tc.want {
				t.Fatalf("SearchByTitle(%q) = %d results, want exactly %s", tc.query, len(got), tc.want)
			}
		})
	}
}

func TestSearchEmptyQueryKeepsEverything(t *testing.T) {
	t.Parallel()

	if got := SearchByTitle(products, enums.LanguageEN, "   "); len(got) != len(products) {
		t.Fatalf("blank query dropped products: %d != %d", len(got), len(products))
	}
}

func TestSortProducts(t *testing.T) {
	t.Parallel()

	list := []Product{
		{ID: "a", Price: decimal.NewFromInt(30)},
		{ID: "b", Price: decimal.NewFromInt(10), IsNew: true},
		{ID: "c", Price: decimal.NewFromInt(20)},
		{ID: "d", Price: decimal.NewFromInt(10)},
	}

	asc := SortProducts(list, enums.SortPriceAsc)
	if ids(asc) != "b,d,c,a" {
		t.Fatalf("price_asc order = %s", ids(asc))
	}

	desc := SortProducts(list, enums.SortPriceDesc)
	if ids(desc) != "a,c,b,d" {
		t.Fatalf("price_desc order = %s", ids(desc))
	}

	newest := SortProducts(list, enums.SortNewest)
	if ids(newest) != "b,a,c,d" {
		t.Fatalf("newest order = %s", ids(newest))
	}

	featured := SortProducts(list, enums.SortFeatured)
	if ids(featured) != "a,b,c,d" {
		t.Fatalf("featured order = %s", ids(featured))
	}

	if ids(list) != "a,b,c,d" {
		t.Fatal("SortProducts mutated its input")
	}
}

func ids(list []Product) string {
	out := ""
	for i, p := range list {
		if i > 0 {
			out += ","
		}
		out += p.ID
	}
	return out
}
