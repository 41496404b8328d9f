// Package storage provides the session-scoped key/value store backing
// selection state and carts. It is the server-side counterpart of browser
// local storage: string keys, string values, best-effort durability.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no value exists for the session/key pair.
var ErrNotFound = errors.New("storage: key not found")

// Well-known session storage keys.
const (
	KeyRegion   = "region"
	KeyLanguage = "language"
	KeyCart     = "cart_v1"
	KeyCartOpen = "cart_open"
)

// KV is the storage surface shared by the selection and cart services.
// Implementations must treat reads of absent keys as ErrNotFound, never as a
// fatal condition.
type KV interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID, key string) error
}
