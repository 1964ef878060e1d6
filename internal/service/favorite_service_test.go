package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
)

func newFavoriteService(t *testing.T) (*FavoriteService, *MockFavoriteStore, *MockProductStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	favorites := NewMockFavoriteStore(ctrl)
	products := NewMockProductStore(ctrl)
	return NewFavoriteService(favorites, products, zerolog.Nop()), favorites, products
}

func TestAddFavoriteChecksProduct(t *testing.T) {
	svc, favorites, products := newFavoriteService(t)
	ctx := context.Background()

	products.EXPECT().GetByID(ctx, "prod-1").Return(models.Product{ID: "prod-1"}, nil)
	favorites.EXPECT().Add(ctx, "user-1", "prod-1").Return(nil)

	assert.NoError(t, svc.Add(ctx, "user-1", "prod-1"))
}

func TestAddFavoriteMissingProduct(t *testing.T) {
	svc, _, products := newFavoriteService(t)
	ctx := context.Background()

	products.EXPECT().GetByID(ctx, "missing").Return(models.Product{}, repository.ErrProductNotFound)
	// No favorites expectation: nothing is written for a dead product.

	err := svc.Add(ctx, "user-1", "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	svc, favorites, _ := newFavoriteService(t)
	ctx := context.Background()

	favorites.EXPECT().Remove(ctx, "user-1", "prod-1").Return(repository.ErrFavoriteNotFound)

	err := svc.Remove(ctx, "user-1", "prod-1")
	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestListFavorites(t *testing.T) {
	svc, favorites, _ := newFavoriteService(t)
	ctx := context.Background()

	want := []models.Product{{ID: "prod-1"}, {ID: "prod-2"}}
	favorites.EXPECT().ListProducts(ctx, "user-1").Return(want, nil)

	got, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
