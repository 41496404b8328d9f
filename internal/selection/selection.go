// Package selection reconciles the storefront's region, category, and
// language across the URL, the session store, and computed defaults.
package selection

import (
	"net/url"

	"github.com/mhanac/storefront-backend/internal/locale"
	"github.com/mhanac/storefront-backend/pkg/enums"
)

// URLState is the selection-relevant slice of one storefront request.
// RawRegion and RawCategory are the unvalidated query values; Query is the
// full query string so redirects can preserve unrelated parameters.
type URLState struct {
	Path        string
	Language    enums.Language
	HasLanguage bool
	RawRegion   string
	RawCategory string
	Query       url.Values
}

// StoredState is what the session store remembers from earlier visits.
type StoredState struct {
	Region enums.Region
}

// Redirect instructs the caller to navigate instead of rendering.
type Redirect struct {
	Location string
}

// Resolution is a settled selection. Redirect is non-nil when the URL's
// language disagrees with the resolved region's canonical language; callers
// must follow it before rendering anything.
type Resolution struct {
	Region   enums.Region
	Category enums.CategoryKey
	Language enums.Language
	Redirect *Redirect
}

// Resolve settles a selection. Precedence for region: URL query, then stored
// value, then a default from the URL language (en means us, any other
// recognized language means haiti, no language at all means us). Category
// comes from the URL or defaults to deals; malformed values of either are
// treated as absent, never as errors.
//
// Languages are reconciled strictly: whenever the URL language differs from
// the resolved region's canonical language, Resolve returns a redirect that
// swaps the path's language segment and pins region and category as query
// parameters, preserving all other parameters.
func Resolve(u URLState, stored StoredState) Resolution {
	region, err := enums.ParseRegion(u.RawRegion)
	if err != nil {
		if stored.Region.IsValid() {
			region = stored.Region
		} else if u.HasLanguage {
			region = locale.DefaultRegionForLanguage(u.Language)
		} else {
			region = enums.RegionUS
		}
	}

	category, err := enums.ParseCategoryKey(u.RawCategory)
	if err != nil {
		category = enums.CategoryDeals
	}

	canonical := locale.LanguageForRegion(region)
	res := Resolution{Region: region, Category: category, Language: canonical}
	if !u.HasLanguage || u.Language != canonical {
		res.Redirect = &Redirect{Location: redirectLocation(u, canonical, region, category)}
	}
	return res
}

func redirectLocation(u URLState, lang enums.Language, region enums.Region, category enums.CategoryKey) string {
	query := url.Values{}
	for k, vs := range u.Query {
		query[k] = append([]string(nil), vs...)
	}
	query.Set("region", region.String())
	query.Set("category", category.String())
	return locale.ReplaceLanguageInPath(u.Path, lang) + "?" + query.Encode()
}
