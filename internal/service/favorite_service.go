package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

type FavoriteService struct {
	favorites FavoriteStore
	products  ProductStore
	log       zerolog.Logger
}

func NewFavoriteService(favorites FavoriteStore, products ProductStore, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{
		favorites: favorites,
		products:  products,
		log:       log,
	}
}

func (s *FavoriteService) List(ctx context.Context, userID string) ([]models.Product, error) {
	return s.favorites.ListProducts(ctx, userID)
}

// Add verifies the product exists and is active before favoriting it, so a
// favorite can never be created against a dead product.
func (s *FavoriteService) Add(ctx context.Context, userID string, productID string) error {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.favorites.Add(ctx, userID, productID)
}

func (s *FavoriteService) Remove(ctx context.Context, userID string, productID string) error {
	return s.favorites.Remove(ctx, userID, productID)
}
