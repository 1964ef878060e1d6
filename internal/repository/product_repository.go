package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

const productColumns = `id, name, description, category, price, image_url, images, features, ingredients, specifications, stock_quantity, in_stock, featured, is_active, created_by, created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var product models.Product
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Category,
		&product.Price,
		&product.ImageURL,
		&product.Images,
		&product.Features,
		&product.Ingredients,
		&product.Specifications,
		&product.StockQuantity,
		&product.InStock,
		&product.Featured,
		&product.IsActive,
		&product.CreatedBy,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product models.Product) error {
	const query = `
		INSERT INTO products (
			id, name, description, category, price, image_url, images, features, ingredients,
			specifications, stock_quantity, in_stock, featured, is_active, created_by, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, NOW(), NOW()
		)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Category,
		product.Price,
		product.ImageURL,
		product.Images,
		product.Features,
		product.Ingredients,
		product.Specifications,
		product.StockQuantity,
		product.InStock,
		product.Featured,
		product.IsActive,
		product.CreatedBy,
	)
	return err
}

// GetByID returns the product only while it is active; deleted or
// deactivated products report not found.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	const query = `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND is_active = TRUE`
	return scanProduct(r.pool.QueryRow(ctx, query, id))
}

// List applies the filter conjunctively over active products, newest first.
// Category matching is case-insensitive exact; free-text search is a
// case-insensitive substring match on name or description.
func (r *ProductRepository) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	where := []string{"is_active = TRUE"}
	var args []any
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		where = append(where, "LOWER(category) = LOWER("+arg(filter.Category)+")")
	}
	if filter.Featured != nil {
		where = append(where, "featured = "+arg(*filter.Featured))
	}
	if filter.InStock != nil {
		where = append(where, "in_stock = "+arg(*filter.InStock))
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		where = append(where, fmt.Sprintf("(name ILIKE %s OR description ILIKE %s)", pattern, pattern))
	}
	if filter.MinPrice != nil {
		where = append(where, "price >= "+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where = append(where, "price <= "+arg(*filter.MaxPrice))
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
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

// Update applies the partial patch and returns the row as mutated. The
// RETURNING read bypasses the active filter so a deactivation still hands
// the caller the final state.
func (r *ProductRepository) Update(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	if update.Empty() {
		return models.Product{}, errors.New("empty product update")
	}

	var (
		sets []string
		args []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.Name != nil {
		add("name", *update.Name)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.Category != nil {
		add("category", *update.Category)
	}
	if update.Price != nil {
		add("price", *update.Price)
	}
	if update.ImageURL != nil {
		add("image_url", *update.ImageURL)
	}
	if update.Images != nil {
		add("images", update.Images)
	}
	if update.Features != nil {
		add("features", update.Features)
	}
	if update.Ingredients != nil {
		add("ingredients", *update.Ingredients)
	}
	if update.Specifications != nil {
		add("specifications", update.Specifications)
	}
	if update.StockQuantity != nil {
		add("stock_quantity", *update.StockQuantity)
	}
	if update.InStock != nil {
		add("in_stock", *update.InStock)
	}
	if update.Featured != nil {
		add("featured", *update.Featured)
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), productColumns,
	)

	return scanProduct(r.pool.QueryRow(ctx, query, args...))
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM products WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}
