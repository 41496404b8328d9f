package catalog

import (
	"context"

	"github.com/mhanac/storefront-backend/pkg/enums"
	"github.com/mhanac/storefront-backend/pkg/logger"
)

// Query names one catalog listing request after region and language have been
// settled upstream.
type Query struct {
	Region   enums.Region
	Category enums.CategoryKey
	Language enums.Language
	Search   string
	Sort     enums.SortKey
	Limit    int
}

// Source serves base product lists and category rails. Search narrowing may
// happen at the source; sort and limit never do.
type Source interface {
	Products(ctx context.Context, q Query) ([]Product, error)
	Categories(ctx context.Context, region enums.Region) ([]Category, error)
}

// Service resolves catalog listings, preferring the remote source and falling
// back to the static seed on any remote failure. Listing never returns an
// error: the static catalog always answers.
type Service struct {
	remote Source
	logg   *logger.Logger
}

func NewService(remote Source, logg *logger.Logger) *Service {
	return &Service{remote: remote, logg: logg}
}

// List returns the products for a query, sorted and limited. Limit <= 0 means
// no limit.
func (s *Service) List(ctx context.Context, q Query) []Product {
	list := s.baseList(ctx, q)
	list = SortProducts(list, q.Sort)
	if q.Limit > 0 && len(list) > q.Limit {
		list = list[:q.Limit]
	}
	return list
}

// Deals returns the promotional rail for a region: products tagged with the
// deals category, in catalog order.
func (s *Service) Deals(ctx context.Context, region enums.Region, limit int) []Product {
	list := s.baseList(ctx, Query{Region: region, Category: enums.CategoryDeals})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// CategoriesFor returns the region's category rail, preferring the remote
// catalog and falling back to the static table on failure or an empty reply.
func (s *Service) CategoriesFor(ctx context.Context, region enums.Region) []Category {
	if s.remote != nil {
		list, err := s.remote.Categories(ctx, region)
		if err == nil && len(list) > 0 {
			return list
		}
		if err != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "remote catalog failed, serving static categories")
		}
	}
	return CategoriesByRegion(region)
}

func (s *Service) baseList(ctx context.Context, q Query) []Product {
	if s.remote != nil {
		list, err := s.remote.Products(ctx, q)
		if err == nil {
			return list
		}
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "remote catalog failed, serving static catalog")
	}

	list := FilterByRegionAndCategory(products, q.Region, q.Category)
	return SearchByTitle(list, q.Language, q.Search)
}
