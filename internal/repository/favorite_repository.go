package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

var ErrFavoriteNotFound = errors.New("favorite not found")

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// Add is idempotent: favoriting an already-favorited product is a no-op.
func (r *FavoriteRepository) Add(ctx context.Context, userID string, productID string) error {
	const query = `
		INSERT INTO user_favorites (user_id, product_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, product_id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID, productID)
	return err
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID string, productID string) error {
	const query = `DELETE FROM user_favorites WHERE user_id = $1 AND product_id = $2`
	cmd, err := r.pool.Exec(ctx, query, userID, productID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// ListProducts returns the favorited products that are still active;
// favorites pointing at deactivated products are filtered out, not deleted.
func (r *FavoriteRepository) ListProducts(ctx context.Context, userID string) ([]models.Product, error) {
	const query = `
		SELECT p.id, p.name, p.description, p.category, p.price, p.image_url, p.images, p.features,
		       p.ingredients, p.specifications, p.stock_quantity, p.in_stock, p.featured, p.is_active,
		       p.created_by, p.created_at, p.updated_at
		FROM user_favorites f
		JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1 AND p.is_active = TRUE
		ORDER BY f.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
