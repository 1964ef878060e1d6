package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
	"github.com/KEYAJANI/demiland-sub000/internal/service"
)

// envelope is the uniform response wrapper: {success, data?, message?}.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: true, Message: message})
}

func respondDataMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{Success: true, Data: data, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, envelope{Success: false, Message: message})
}

// respondServiceError translates service/repository sentinels into HTTP
// statuses. Anything unrecognized is a 500 with a generic message; internal
// detail stays in the logs.
func (h HandlerSet) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields),
		errors.Is(err, service.ErrProductFields),
		errors.Is(err, service.ErrEventType),
		errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrSelfDelete),
		errors.Is(err, service.ErrCurrentPassword),
		errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrFavoriteNotFound),
		errors.Is(err, repository.ErrSessionNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	default:
		h.log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

// userResponse is the only shape a user leaves the API in. There is no
// password hash field, so it cannot leak.
type userResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         *string   `json:"phone,omitempty"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		Role:          string(user.Role),
		EmailVerified: user.EmailVerified,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func toUserResponses(users []models.User) []userResponse {
	resp := make([]userResponse, 0, len(users))
	for _, user := range users {
		resp = append(resp, toUserResponse(user))
	}
	return resp
}

// productResponse carries the camelCase aliases the storefront consumes:
// image for image_url, inStock, stockQuantity, isActive.
type productResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       string            `json:"category"`
	Price          *float64          `json:"price,omitempty"`
	Image          *string           `json:"image,omitempty"`
	Images         []string          `json:"images"`
	Features       []string          `json:"features"`
	Ingredients    string            `json:"ingredients"`
	Specifications map[string]string `json:"specifications"`
	StockQuantity  int               `json:"stockQuantity"`
	InStock        bool              `json:"inStock"`
	Featured       bool              `json:"featured"`
	IsActive       bool              `json:"isActive"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

func toProductResponse(product models.Product) productResponse {
	resp := productResponse{
		ID:             product.ID,
		Name:           product.Name,
		Description:    product.Description,
		Category:       product.Category,
		Price:          product.Price,
		Image:          product.ImageURL,
		Images:         product.Images,
		Features:       product.Features,
		Ingredients:    product.Ingredients,
		Specifications: product.Specifications,
		StockQuantity:  product.StockQuantity,
		InStock:        product.InStock,
		Featured:       product.Featured,
		IsActive:       product.IsActive,
		CreatedAt:      product.CreatedAt,
		UpdatedAt:      product.UpdatedAt,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.Features == nil {
		resp.Features = []string{}
	}
	if resp.Specifications == nil {
		resp.Specifications = map[string]string{}
	}
	return resp
}

func toProductResponses(products []models.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, toProductResponse(product))
	}
	return resp
}

type categoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type eventResponse struct {
	ID        string         `json:"id"`
	EventType string         `json:"eventType"`
	Payload   map[string]any `json:"payload"`
	UserID    *string        `json:"userId,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}
