package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	cartdto "github.com/mhanac/storefront-backend/api/controllers/cart/dto"
	"github.com/mhanac/storefront-backend/api/middleware"
	"github.com/mhanac/storefront-backend/api/responses"
	"github.com/mhanac/storefront-backend/api/validators"
	cartsvc "github.com/mhanac/storefront-backend/internal/cart"
	"github.com/mhanac/storefront-backend/pkg/enums"
	pkgerrors "github.com/mhanac/storefront-backend/pkg/errors"
	"github.com/mhanac/storefront-backend/pkg/logger"
)

// CartFetch returns the session's cart.
func CartFetch(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		c := svc.Get(ctx, middleware.SessionIDFromContext(ctx))
		responses.WriteSuccess(w, newCartView(c, viewLanguage(r)))
	}
}

// CartAdd merges a product into the cart and opens the review flag.
func CartAdd(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		c, err := svc.Add(ctx, middleware.SessionIDFromContext(ctx), payload.ProductID, payload.Quantity)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, newCartView(c, viewLanguage(r)))
	}
}

// CartSetQuantity updates one line's quantity.
func CartSetQuantity(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID := chi.URLParam(r, "productId")
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id required"))
			return
		}

		var payload cartdto.SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		c := svc.SetQuantity(ctx, middleware.SessionIDFromContext(ctx), productID, payload.Quantity)
		responses.WriteSuccess(w, newCartView(c, viewLanguage(r)))
	}
}

// CartRemove drops one line; unknown ids answer the current cart unchanged.
func CartRemove(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		productID := chi.URLParam(r, "productId")
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id required"))
			return
		}

		c := svc.Remove(ctx, middleware.SessionIDFromContext(ctx), productID)
		responses.WriteSuccess(w, newCartView(c, viewLanguage(r)))
	}
}

// CartClear empties the cart.
func CartClear(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		c := svc.Clear(ctx, middleware.SessionIDFromContext(ctx))
		responses.WriteSuccess(w, newCartView(c, viewLanguage(r)))
	}
}

// CartDismiss closes the review flag without touching the lines.
func CartDismiss(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		c := svc.Dismiss(ctx, middleware.SessionIDFromContext(ctx))
		responses.WriteSuccess(w, newCartView(c, viewLanguage(r)))
	}
}

func viewLanguage(r *http.Request) enums.Language {
	lang, err := enums.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		return enums.LanguageEN
	}
	return lang
}
