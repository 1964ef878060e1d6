package service

import (
	"context"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

// CatalogService serves the read-only category list through the cache.
type CatalogService struct {
	categories CategoryStore
	cache      CategoryCache
}

func NewCatalogService(categories CategoryStore, cache CategoryCache) *CatalogService {
	return &CatalogService{
		categories: categories,
		cache:      cache,
	}
}

func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	if s.cache != nil {
		if categories, ok := s.cache.GetCategories(ctx); ok {
			return categories, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetCategories(ctx, categories)
	}
	return categories, nil
}
