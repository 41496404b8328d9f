package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/mhanac/storefront-backend/api/responses"
	"github.com/mhanac/storefront-backend/pkg/config"
	pkgerrors "github.com/mhanac/storefront-backend/pkg/errors"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/mhanac/storefront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings the session store when one is configured. A memory-backed
// deployment is always ready.
func HealthReady(cfg *config.Config, logg *logger.Logger, redisClient redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Storefront-Env", cfg.App.Env)

		if redisClient != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := redisClient.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session store unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
