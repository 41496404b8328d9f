package cart

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/mhanac/storefront-backend/internal/catalog"
	"github.com/mhanac/storefront-backend/pkg/errors"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/mhanac/storefront-backend/pkg/storage"
)

// Service loads, mutates, and persists session carts. Every mutation writes
// the whole collection back to the session store; a store failure keeps the
// in-memory result and is logged, so a flaky store never loses the response.
type Service struct {
	store storage.KV
	logg  *logger.Logger
}

func NewService(store storage.KV, logg *logger.Logger) *Service {
	return &Service{store: store, logg: logg}
}

// Get rehydrates the session's cart. Missing or corrupt stored state yields
// an empty cart.
func (s *Service) Get(ctx context.Context, sessionID string) *Cart {
	raw, err := s.store.Get(ctx, sessionID, storage.KeyCart)
	if err != nil {
		if !stderrors.Is(err, storage.ErrNotFound) {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "cart read failed, starting empty")
		}
		raw = ""
	}
	return Restore(raw, s.loadOpen(ctx, sessionID))
}

// Add appends or merges a catalog product into the cart and opens the review
// flag. Unknown product ids are a not-found error.
func (s *Service) Add(ctx context.Context, sessionID, productID string, quantity int) (*Cart, error) {
	product, ok := catalog.ProductByID(productID)
	if !ok {
		return nil, errors.New(errors.CodeNotFound, "product not found").WithDetails(map[string]string{
			"product_id": productID,
		})
	}

	c := s.Get(ctx, sessionID)
	c.Add(product, quantity)
	s.save(ctx, sessionID, c)
	return c, nil
}

// Remove drops a line item; unknown ids are a silent no-op.
func (s *Service) Remove(ctx context.Context, sessionID, productID string) *Cart {
	c := s.Get(ctx, sessionID)
	c.Remove(productID)
	s.save(ctx, sessionID, c)
	return c
}

// SetQuantity updates a line's quantity, clamping below 1 up to 1.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) *Cart {
	c := s.Get(ctx, sessionID)
	c.SetQuantity(productID, quantity)
	s.save(ctx, sessionID, c)
	return c
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) *Cart {
	c := s.Get(ctx, sessionID)
	c.Clear()
	s.save(ctx, sessionID, c)
	return c
}

// Dismiss closes the cart review flag without touching the lines.
func (s *Service) Dismiss(ctx context.Context, sessionID string) *Cart {
	c := s.Get(ctx, sessionID)
	c.SetOpen(false)
	s.save(ctx, sessionID, c)
	return c
}

func (s *Service) loadOpen(ctx context.Context, sessionID string) bool {
	raw, err := s.store.Get(ctx, sessionID, storage.KeyCartOpen)
	if err != nil {
		return false
	}
	open, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return open
}

func (s *Service) save(ctx context.Context, sessionID string, c *Cart) {
	raw, err := c.MarshalItems()
	if err != nil {
		s.logg.Error(ctx, "failed to serialize cart", err)
		return
	}
	if err := s.store.Set(ctx, sessionID, storage.KeyCart, raw); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to persist cart")
	}
	if err := s.store.Set(ctx, sessionID, storage.KeyCartOpen, strconv.FormatBool(c.Open())); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "failed to persist cart visibility")
	}
}
