package storefront

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mhanac/storefront-backend/api/middleware"
	"github.com/mhanac/storefront-backend/api/responses"
	"github.com/mhanac/storefront-backend/api/validators"
	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/mhanac/storefront-backend/internal/i18n"
	"github.com/mhanac/storefront-backend/internal/selection"
	"github.com/mhanac/storefront-backend/pkg/enums"
	pkgerrors "github.com/mhanac/storefront-backend/pkg/errors"
	"github.com/mhanac/storefront-backend/pkg/logger"
)

const (
	dealsRailSize   = 8
	maxPageSize     = 100
	defaultPageSize = 0 // unlimited
)

// Page renders a storefront page for the language segment in the path. The
// selection is reconciled before any catalog read; mismatched languages leave
// as a temporary redirect carrying the full query string.
func Page(selectionSvc *selection.Service, catalogSvc *catalog.Service, tr *i18n.Translator, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middleware.SessionIDFromContext(ctx)
		query := r.URL.Query()

		u := selection.URLState{
			Path:        r.URL.Path,
			RawRegion:   query.Get("region"),
			RawCategory: query.Get("category"),
			Query:       query,
		}
		if lang, err := enums.ParseLanguage(chi.URLParam(r, "lang")); err == nil {
			u.Language = lang
			u.HasLanguage = true
		}

		res := selectionSvc.Reconcile(ctx, sessionID, u)
		if res.Redirect != nil {
			http.Redirect(w, r, res.Redirect.Location, http.StatusTemporaryRedirect)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultPageSize, 0, maxPageSize)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		sort, err := enums.ParseSortKey(query.Get("sort"))
		if err != nil {
			sort = enums.SortFeatured
		}
		search := query.Get("q")

		products := catalogSvc.List(ctx, catalog.Query{
			Region:   res.Region,
			Category: res.Category,
			Language: res.Language,
			Search:   search,
			Sort:     sort,
			Limit:    limit,
		})

		view := View{
			Region:     res.Region.String(),
			Language:   res.Language.String(),
			Category:   res.Category.String(),
			Search:     search,
			Sort:       sort.String(),
			Categories: newCategoryViews(catalogSvc.CategoriesFor(ctx, res.Region), res.Language, tr),
			Products:   newProductViews(products, res.Language),
			NewRail:    newProductViews(catalogSvc.Deals(ctx, res.Region, dealsRailSize), res.Language),
		}
		responses.WriteSuccess(w, view)
	}
}

type regionSwitchRequest struct {
	Region string `json:"region" validate:"required,oneof=us haiti"`
	Path   string `json:"path,omitempty"`
}

type regionSwitchResponse struct {
	Region   string `json:"region"`
	Location string `json:"location"`
}

// RegionSwitch handles the interactive region picker. It persists the new
// region and always answers with a navigation target for the region's
// canonical language.
func RegionSwitch(selectionSvc *selection.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sessionID := middleware.SessionIDFromContext(ctx)

		var payload regionSwitchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		region, err := enums.ParseRegion(payload.Region)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid region"))
			return
		}

		// The client sends its current location as path; the query embedded
		// there carries the category and search we must preserve.
		path := payload.Path
		if path == "" {
			path = "/products"
		}
		path, rawQuery, _ := strings.Cut(path, "?")
		query, err := url.ParseQuery(rawQuery)
		if err != nil {
			query = url.Values{}
		}

		res := selectionSvc.SwitchRegion(ctx, sessionID, region, path, query)
		responses.WriteSuccess(w, regionSwitchResponse{
			Region:   res.Region.String(),
			Location: res.Redirect.Location,
		})
	}
}
