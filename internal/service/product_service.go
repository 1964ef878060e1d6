package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/ids"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

var ErrProductFields = errors.New("product name and category are required")

type ProductService struct {
	products ProductStore
	images   ImageStore
	cache    ProductCache
	log      zerolog.Logger
}

func NewProductService(products ProductStore, images ImageStore, cache ProductCache, log zerolog.Logger) *ProductService {
	return &ProductService{
		products: products,
		images:   images,
		cache:    cache,
		log:      log,
	}
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.products.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Featured(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetFeatured(ctx); ok {
			return products, nil
		}
	}

	featured := true
	products, err := s.products.List(ctx, models.ProductFilter{Featured: &featured})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetFeatured(ctx, products)
	}
	return products, nil
}

func (s *ProductService) ByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return s.products.List(ctx, models.ProductFilter{Category: category})
}

func (s *ProductService) Search(ctx context.Context, query string, filter models.ProductFilter) ([]models.Product, error) {
	filter.Search = query
	return s.products.List(ctx, filter)
}

type CreateProductInput struct {
	Name           string
	Description    string
	Category       string
	Price          *float64
	ImageURL       *string
	Images         []string
	Features       []string
	Ingredients    string
	Specifications map[string]string
	StockQuantity  *int
	InStock        *bool
	Featured       *bool
	CreatedBy      *string
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (models.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Category) == "" {
		return models.Product{}, ErrProductFields
	}

	product := models.Product{
		ID:             ids.New(),
		Name:           input.Name,
		Description:    input.Description,
		Category:       input.Category,
		Price:          input.Price,
		ImageURL:       input.ImageURL,
		Images:         input.Images,
		Features:       input.Features,
		Ingredients:    input.Ingredients,
		Specifications: input.Specifications,
		StockQuantity:  0,
		InStock:        true,
		Featured:       false,
		IsActive:       true,
		CreatedBy:      input.CreatedBy,
	}
	if input.StockQuantity != nil {
		product.StockQuantity = *input.StockQuantity
	}
	if input.InStock != nil {
		product.InStock = *input.InStock
	}
	if input.Featured != nil {
		product.Featured = *input.Featured
	}

	if err := s.products.Create(ctx, product); err != nil {
		return models.Product{}, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("product_id", product.ID).Str("category", product.Category).Msg("product created")
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	if update.Empty() {
		return models.Product{}, ErrEmptyUpdate
	}

	product, err := s.products.Update(ctx, id, update)
	if err != nil {
		return models.Product{}, err
	}

	s.invalidate(ctx)
	s.log.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes the row first and only then attempts image cleanup:
// database consistency wins over storage hygiene, so a cleanup failure is
// logged and swallowed.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	if product.ImageURL != nil && *product.ImageURL != "" && s.images != nil {
		if err := s.images.RemoveByURL(ctx, *product.ImageURL); err != nil {
			s.log.Warn().Err(err).Str("product_id", id).Msg("image cleanup failed")
		}
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

type UploadImageInput struct {
	ProductID   string
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// UploadImage stores the file on the image host and points the product's
// image_url at it.
func (s *ProductService) UploadImage(ctx context.Context, input UploadImageInput) (string, error) {
	if _, err := s.products.GetByID(ctx, input.ProductID); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(input.Filename))
	objectKey := fmt.Sprintf("products/%s/%s%s", input.ProductID, ids.New(), ext)

	url, err := s.images.PutProductImage(ctx, objectKey, input.Reader, input.Size, input.ContentType)
	if err != nil {
		return "", err
	}

	if _, err := s.Update(ctx, input.ProductID, models.ProductUpdate{ImageURL: &url}); err != nil {
		return "", err
	}
	return url, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidateProducts(ctx)
	}
}
