package selection

import (
	"net/url"
	"testing"

	"github.com/mhanac/storefront-backend/pkg/enums"
)

func TestResolveRegionPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		u      URLState
		stored StoredState
		want   enums.Region
	}{
		{
			name:   "url wins over storage",
			u:      URLState{Path: "/ht/products", Language: enums.LanguageHT, HasLanguage: true, RawRegion: "haiti"},
			stored: StoredState{Region: enums.RegionUS},
			want:   enums.RegionHaiti,
		},
		{
			name:   "storage wins when url absent",
			u:      URLState{Path: "/ht/products", Language: enums.LanguageHT, HasLanguage: true},
			stored: StoredState{Region: enums.RegionHaiti},
			want:   enums.RegionHaiti,
		},
		{
			name: "invalid url region treated as absent",
			u:    URLState{Path: "/en/products", Language: enums.LanguageEN, HasLanguage: true, RawRegion: "mars"},
			want: enums.RegionUS,
		},
		{
			name: "language default when nothing stored",
			u:    URLState{Path: "/fr/products", Language: enums.LanguageFR, HasLanguage: true},
			want: enums.RegionHaiti,
		},
		{
			name: "no language context defaults to us",
			u:    URLState{Path: "/products"},
			want: enums.RegionUS,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Resolve(tc.u, tc.stored); got.Region != tc.want {
				t.Fatalf("region = %s, want %s", got.Region, tc.want)
			}
		})
	}
}

func TestResolveCategoryDefaultsToDeals(t *testing.T) {
	t.Parallel()

	u := URLState{Path: "/en/products", Language: enums.LanguageEN, HasLanguage: true, RawRegion: "us"}
	if got := Resolve(u, StoredState{}); got.Category != enums.CategoryDeals {
		t.Fatalf("category = %s", got.Category)
	}

	u.RawCategory = "not_a_category"
	if got := Resolve(u, StoredState{}); got.Category != enums.CategoryDeals {
		t.Fatalf("invalid category should fall back to deals, got %s", got.Category)
	}

	u.RawCategory = "electronics"
	if got := Resolve(u, StoredState{}); got.Category != enums.CategoryElectronics {
		t.Fatalf("category = %s", got.Category)
	}
}

func TestResolveRedirectsOnLanguageMismatch(t *testing.T) {
	t.Parallel()

	u := URLState{
		Path:        "/en/products",
		Language:    enums.LanguageEN,
		HasLanguage: true,
		RawRegion:   "haiti",
		RawCategory: "electronics",
		Query:       url.Values{"region": {"haiti"}, "category": {"electronics"}},
	}

	got := Resolve(u, StoredState{})
	if got.Redirect == nil {
		t.Fatal("expected a redirect for en URL with haiti region")
	}
	want := "/ht/products?category=electronics&region=haiti"
	if got.Redirect.Location != want {
		t.Fatalf("location = %q, want %q", got.Redirect.Location, want)
	}
	if got.Language != enums.LanguageHT {
		t.Fatalf("language = %s", got.Language)
	}
}

func TestResolveRedirectPreservesForeignQueryParams(t *testing.T) {
	t.Parallel()

	u := URLState{
		Path:        "/en/products",
		Language:    enums.LanguageEN,
		HasLanguage: true,
		RawRegion:   "haiti",
		Query:       url.Values{"region": {"haiti"}, "q": {"diri"}, "sort": {"price_asc"}},
	}

	got := Resolve(u, StoredState{})
	if got.Redirect == nil {
		t.Fatal("expected redirect")
	}
	loc, err := url.Parse(got.Redirect.Location)
	if err != nil {
		t.Fatalf("bad location: %v", err)
	}
	q := loc.Query()
	if q.Get("q") != "diri" || q.Get("sort") != "price_asc" {
		t.Fatalf("query params dropped: %s", got.Redirect.Location)
	}
	if q.Get("region") != "haiti" || q.Get("category") != "deals" {
		t.Fatalf("region/category not pinned: %s", got.Redirect.Location)
	}
}

func TestResolveNoRedirectWhenLanguageMatches(t *testing.T) {
	t.Parallel()

	u := URLState{Path: "/ht/products", Language: enums.LanguageHT, HasLanguage: true, RawRegion: "haiti"}
	if got := Resolve(u, StoredState{}); got.Redirect != nil {
		t.Fatalf("unexpected redirect to %s", got.Redirect.Location)
	}
}

func TestResolveRedirectsWhenPathHasNoLanguage(t *testing.T) {
	t.Parallel()

	got := Resolve(URLState{Path: "/products"}, StoredState{Region: enums.RegionHaiti})
	if got.Redirect == nil {
		t.Fatal("bare path must redirect to a language-qualified one")
	}
	want := "/ht/products?category=deals&region=haiti"
	if got.Redirect.Location != want {
		t.Fatalf("location = %q, want %q", got.Redirect.Location, want)
	}
}
