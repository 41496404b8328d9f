package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/mhanac/storefront-backend/pkg/config"
	"github.com/mhanac/storefront-backend/pkg/logger"
)

// Session identifies the browsing session behind each request. A missing or
// malformed cookie mints a fresh session id; the cookie is the only client
// handle onto the session store.
func Session(cfg config.SessionConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := WithSessionID(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
