package selection

import (
	"context"
	"errors"
	"net/url"

	"github.com/mhanac/storefront-backend/internal/locale"
	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/mhanac/storefront-backend/pkg/storage"
)

// Service runs the reconciliation algorithm against the session store. The
// store is best-effort: a read or write failure degrades to defaults and is
// logged, never surfaced to the visitor.
type Service struct {
	store storage.KV
	logg  *logger.Logger
}

func NewService(store storage.KV, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// Reconcile settles the selection for one request and makes the resolved
// region sticky. It runs to completion before any catalog read: callers
// receive either a settled selection or a redirect, never a partial state.
func (s *Service) Reconcile(ctx context.Context, sessionID string, u URLState) Resolution {
	res := Resolve(u, s.storedState(ctx, sessionID))
	s.persist(ctx, sessionID, res)
	return res
}

// SwitchRegion handles an explicit region change. The new region is persisted
// immediately and the caller always receives a navigation target for the
// region's canonical language, with region and category pinned.
func (s *Service) SwitchRegion(ctx context.Context, sessionID string, region enums.Region, path string, query url.Values) Resolution {
	u := URLState{
		Path:        path,
		RawRegion:   region.String(),
		RawCategory: query.Get("category"),
		Query:       query,
	}
	if lang, ok := locale.LanguageFromPath(path); ok {
		u.Language = lang
		u.HasLanguage = true
	}

	res := Resolve(u, StoredState{})
	if res.Redirect == nil {
		// Interactive switches always navigate, even when the language
		// already matches.
		res.Redirect = &Redirect{Location: redirectLocation(u, res.Language, res.Region, res.Category)}
	}
	s.persist(ctx, sessionID, res)
	return res
}

func (s *Service) storedState(ctx context.Context, sessionID string) StoredState {
	raw, err := s.store.Get(ctx, sessionID, storage.KeyRegion)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "session store read failed, using defaults")
		}
		return StoredState{}
	}
	region, err := enums.ParseRegion(raw)
	if err != nil {
		return StoredState{}
	}
	return StoredState{Region: region}
}

func (s *Service) persist(ctx context.Context, sessionID string, res Resolution) {
	if err := s.store.Set(ctx, sessionID, storage.KeyRegion, res.Region.String()); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to persist region selection")
	}
	if err := s.store.Set(ctx, sessionID, storage.KeyLanguage, res.Language.String()); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to persist language selection")
	}
}
