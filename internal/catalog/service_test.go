package catalog

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/mhanac/storefront-backend/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type stubSource struct {
	list   []Product
	cats   []Category
	err    error
	catErr error
	seen   []Query
}

func (s *stubSource) Products(_ context.Context, q Query) ([]Product, error) {
	s.seen = append(s.seen, q)
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

func (s *stubSource) Categories(_ context.Context, _ enums.Region) ([]Category, error) {
	if s.catErr != nil {
		return nil, s.catErr
	}
	return s.cats, nil
}

func discardLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})
}

func TestListPrefersRemote(t *testing.T) {
	t.Parallel()

	remote := &stubSource{list: []Product{{
		ID:       "remote-1",
		Region:   enums.RegionUS,
		Category: enums.CategoryElectronics,
		Title:    Title{enums.LanguageEN: "Remote Gadget"},
		Price:    decimal.NewFromInt(10),
		Currency: enums.CurrencyUSD,
	}}}
	svc := NewService(remote, discardLogger())

	got := svc.List(context.Background(), Query{Region: enums.RegionUS, Category: enums.CategoryElectronics, Language: enums.LanguageEN})
	if len(got) != 1 || got[0].ID != "remote-1" {
		t.Fatalf("expected remote product, got %v", got)
	}
	if len(remote.seen) != 1 {
		t.Fatalf("remote queried %d times", len(remote.seen))
	}
}

func TestListFallsBackToStaticOnRemoteFailure(t *testing.T) {
	t.Parallel()

	remote := &stubSource{err: fmt.Errorf("upstream down")}
	svc := NewService(remote, discardLogger())

	got := svc.List(context.Background(), Query{Region: enums.RegionUS, Category: enums.CategoryElectronics, Language: enums.LanguageEN})
	if len(got) == 0 {
		t.Fatal("fallback should serve the static catalog")
	}
	for _, p := range got {
		if p.Region != enums.RegionUS || p.Category != enums.CategoryElectronics {
			t.Fatalf("fallback leaked product %s", p.ID)
		}
	}
}

func TestListWithoutRemoteUsesStatic(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, discardLogger())

	got := svc.List(context.Background(), Query{
		Region:   enums.RegionHaiti,
		Category: enums.CategoryGrocery,
		Language: enums.LanguageHT,
		Search:   "diri",
	})
	if len(got) != 1 || got[0].ID != "ht-grc-ricebag" {
		t.Fatalf("grocery search = %v", got)
	}
}

func TestListAppliesSortAndLimit(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, discardLogger())

	got := svc.List(context.Background(), Query{
		Region:   enums.RegionUS,
		Category: enums.CategoryElectronics,
		Language: enums.LanguageEN,
		Sort:     enums.SortPriceAsc,
		Limit:    1,
	})
	if len(got) != 1 {
		t.Fatalf("limit ignored, got %d products", len(got))
	}
	if got[0].ID != "us-elc-earbuds" {
		t.Fatalf("cheapest electronics = %s", got[0].ID)
	}
}

func TestDealsRailOnlyDealsCategory(t *testing.T) {
	t.Parallel()

	svc := NewService(nil, discardLogger())

	got := svc.Deals(context.Background(), enums.RegionHaiti, 10)
	if len(got) == 0 {
		t.Fatal("expected deals for haiti")
	}
	for _, p := range got {
		if p.Category != enums.CategoryDeals || p.Region != enums.RegionHaiti {
			t.Fatalf("deals rail leaked product %s (%s)", p.ID, p.Category)
		}
	}
}

func TestCategoriesForPrefersRemote(t *testing.T) {
	t.Parallel()

	remote := &stubSource{cats: []Category{{Key: enums.CategoryDeals, Regions: []enums.Region{enums.RegionHaiti}}}}
	svc := NewService(remote, discardLogger())

	got := svc.CategoriesFor(context.Background(), enums.RegionHaiti)
	if len(got) != 1 || got[0].Key != enums.CategoryDeals {
		t.Fatalf("expected remote categories, got %v", got)
	}
}

func TestCategoriesForFallsBackToStatic(t *testing.T) {
	t.Parallel()

	remote := &stubSource{catErr: fmt.Errorf("upstream down")}
	svc := NewService(remote, discardLogger())

	got := svc.CategoriesFor(context.Background(), enums.RegionHaiti)
	want := CategoriesByRegion(enums.RegionHaiti)
	if len(got) != len(want) {
		t.Fatalf("fallback categories = %d, want %d", len(got), len(want))
	}
}
