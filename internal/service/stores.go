package service

import (
	"context"
	"io"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

// The services are written against these narrow store interfaces rather
// than the concrete repositories, so every caller goes through one
// persistence contract and tests can substitute mocks.

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, update models.UserUpdate) error
	DeleteCascade(ctx context.Context, id string) error
}

type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	GetByID(ctx context.Context, id string) (models.Session, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteByUser(ctx context.Context, userID string) error
	Touch(ctx context.Context, sessionID string, ip string, userAgent string) error
}

type ProductStore interface {
	Create(ctx context.Context, product models.Product) error
	GetByID(ctx context.Context, id string) (models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Update(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
}

type FavoriteStore interface {
	Add(ctx context.Context, userID string, productID string) error
	Remove(ctx context.Context, userID string, productID string) error
	ListProducts(ctx context.Context, userID string) ([]models.Product, error)
}

type AnalyticsStore interface {
	Insert(ctx context.Context, event models.AnalyticsEvent) error
	List(ctx context.Context, limit int, offset int) ([]models.AnalyticsEvent, error)
}

// ImageStore is the external image host. Removal failures are a policy
// decision of the caller, not the store.
type ImageStore interface {
	PutProductImage(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	RemoveByURL(ctx context.Context, rawURL string) error
}

// ProductCache fronts the hot catalog reads. Implementations must degrade
// to a miss on any failure.
type ProductCache interface {
	GetFeatured(ctx context.Context) ([]models.Product, bool)
	SetFeatured(ctx context.Context, products []models.Product)
	InvalidateProducts(ctx context.Context)
}

type CategoryCache interface {
	GetCategories(ctx context.Context) ([]models.Category, bool)
	SetCategories(ctx context.Context, categories []models.Category)
}

// EventPublisher fans analytics events out to the stream consumed by
// downstream reporting. Publishing is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event models.AnalyticsEvent) error
}
