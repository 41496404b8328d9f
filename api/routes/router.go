package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mhanac/storefront-backend/api/controllers"
	cartcontrollers "github.com/mhanac/storefront-backend/api/controllers/cart"
	"github.com/mhanac/storefront-backend/api/controllers/storefront"
	"github.com/mhanac/storefront-backend/api/middleware"
	"github.com/mhanac/storefront-backend/internal/catalog"
	cartsvc "github.com/mhanac/storefront-backend/internal/cart"
	"github.com/mhanac/storefront-backend/internal/i18n"
	"github.com/mhanac/storefront-backend/internal/selection"
	"github.com/mhanac/storefront-backend/pkg/config"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/mhanac/storefront-backend/pkg/metrics"
	"github.com/mhanac/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	selectionService *selection.Service,
	catalogService *catalog.Service,
	cartService *cartsvc.Service,
	translator *i18n.Translator,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pinger(redisClient)))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session, logg))

		page := storefront.Page(selectionService, catalogService, translator, logg)
		r.Get("/", page)
		r.Get("/{lang}", page)
		r.Get("/{lang}/products", page)

		r.Route("/api/v1", func(r chi.Router) {
			r.Post("/region", storefront.RegionSwitch(selectionService, logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.CartFetch(cartService, logg))
				r.Post("/items", cartcontrollers.CartAdd(cartService, logg))
				r.Patch("/items/{productId}", cartcontrollers.CartSetQuantity(cartService, logg))
				r.Delete("/items/{productId}", cartcontrollers.CartRemove(cartService, logg))
				r.Delete("/", cartcontrollers.CartClear(cartService, logg))
				r.Post("/dismiss", cartcontrollers.CartDismiss(cartService, logg))
			})
		})
	})

	return r
}

// pinger avoids handing a typed nil to the health handler.
func pinger(client *redis.Client) redis.Pinger {
	if client == nil {
		return nil
	}
	return client
}
