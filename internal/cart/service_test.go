package cart

import (
	"context"
	"io"
	"testing"

	"github.com/mhanac/storefront-backend/pkg/errors"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/mhanac/storefront-backend/pkg/storage"
	"github.com/rs/zerolog"
)

func testService() (*Service, *storage.Memory) {
	store := storage.NewMemory()
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
	return NewService(store, logg), store
}

func TestServicePersistsEveryMutation(t *testing.T) {
	t.Parallel()

	svc, store := testService()
	ctx := context.Background()

	c, err := svc.Add(ctx, "sess-1", "us-elc-earbuds", 2)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.Count() != 2 || !c.Open() {
		t.Fatalf("cart after add: count=%d open=%v", c.Count(), c.Open())
	}

	// A fresh service instance over the same store sees the persisted cart.
	svc2 := NewService(store, logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard}))
	got := svc2.Get(ctx, "sess-1")
	if got.Count() != 2 || !got.Open() {
		t.Fatalf("rehydrated cart: count=%d open=%v", got.Count(), got.Open())
	}

	c = svc.SetQuantity(ctx, "sess-1", "us-elc-earbuds", 5)
	if c.Count() != 5 {
		t.Fatalf("count = %d", c.Count())
	}

	c = svc.Dismiss(ctx, "sess-1")
	if c.Open() {
		t.Fatal("dismiss should close the flag")
	}
	if got := svc2.Get(ctx, "sess-1"); got.Open() {
		t.Fatal("dismissed flag not persisted")
	}

	c = svc.Clear(ctx, "sess-1")
	if c.Count() != 0 {
		t.Fatal("clear failed")
	}
	if got := svc2.Get(ctx, "sess-1"); got.Count() != 0 {
		t.Fatal("cleared cart not persisted")
	}
}

func TestServiceAddUnknownProduct(t *testing.T) {
	t.Parallel()

	svc, _ := testService()
	_, err := svc.Add(context.Background(), "sess-2", "no-such-product", 1)
	appErr := errors.As(err)
	if appErr == nil || appErr.Code() != errors.CodeNotFound {
		t.Fatalf("err = %v, want not-found", err)
	}
}

func TestServiceCorruptStoredCartStartsEmpty(t *testing.T) {
	t.Parallel()

	svc, store := testService()
	ctx := context.Background()
	if err := store.Set(ctx, "sess-3", storage.KeyCart, "{{{"); err != nil {
		t.Fatal(err)
	}

	if got := svc.Get(ctx, "sess-3"); got.Count() != 0 {
		t.Fatalf("corrupt cart should start empty, count=%d", got.Count())
	}
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	t.Parallel()

	svc, _ := testService()
	ctx := context.Background()

	if _, err := svc.Add(ctx, "sess-a", "us-elc-earbuds", 1); err != nil {
		t.Fatal(err)
	}
	if got := svc.Get(ctx, "sess-b"); got.Count() != 0 {
		t.Fatal("cart leaked across sessions")
	}
}
