package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/middleware"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/service"
)

// parseProductFilter reads the optional, conjunctive list filters from the
// query string. Unparseable values are ignored rather than rejected.
func parseProductFilter(c *gin.Context) models.ProductFilter {
	filter := models.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("featured"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &v
		}
	}
	if raw := c.Query("inStock"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.InStock = &v
		}
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	return filter
}

func (h HandlerSet) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context(), parseProductFilter(c))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toProductResponses(products))
}

func (h HandlerSet) FeaturedProducts(c *gin.Context) {
	products, err := h.products.Featured(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toProductResponses(products))
}

func (h HandlerSet) ProductsByCategory(c *gin.Context) {
	products, err := h.products.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toProductResponses(products))
}

func (h HandlerSet) SearchProducts(c *gin.Context) {
	filter := parseProductFilter(c)
	products, err := h.products.Search(c.Request.Context(), c.Param("query"), filter)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toProductResponses(products))
}

func (h HandlerSet) GetProduct(c *gin.Context) {
	product, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toProductResponse(product))
}

type createProductRequest struct {
	Name           string            `json:"name" binding:"required"`
	Description    string            `json:"description"`
	Category       string            `json:"category" binding:"required"`
	Price          *float64          `json:"price"`
	Image          *string           `json:"image"`
	Images         []string          `json:"images"`
	Features       []string          `json:"features"`
	Ingredients    string            `json:"ingredients"`
	Specifications map[string]string `json:"specifications"`
	StockQuantity  *int              `json:"stockQuantity"`
	InStock        *bool             `json:"inStock"`
	Featured       *bool             `json:"featured"`
}

func (h HandlerSet) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrProductFields.Error())
		return
	}

	input := service.CreateProductInput{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		ImageURL:       req.Image,
		Images:         req.Images,
		Features:       req.Features,
		Ingredients:    req.Ingredients,
		Specifications: req.Specifications,
		StockQuantity:  req.StockQuantity,
		InStock:        req.InStock,
		Featured:       req.Featured,
	}
	if user, ok := middleware.CurrentUser(c); ok {
		input.CreatedBy = &user.ID
	}

	product, err := h.products.Create(c.Request.Context(), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusCreated, toProductResponse(product), "product created")
}

type updateProductRequest struct {
	Name           *string           `json:"name"`
	Description    *string           `json:"description"`
	Category       *string           `json:"category"`
	Price          *float64          `json:"price"`
	Image          *string           `json:"image"`
	Images         []string          `json:"images"`
	Features       []string          `json:"features"`
	Ingredients    *string           `json:"ingredients"`
	Specifications map[string]string `json:"specifications"`
	StockQuantity  *int              `json:"stockQuantity"`
	InStock        *bool             `json:"inStock"`
	Featured       *bool             `json:"featured"`
	IsActive       *bool             `json:"isActive"`
}

func (h HandlerSet) UpdateProduct(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.products.Update(c.Request.Context(), c.Param("id"), models.ProductUpdate{
		Name:           req.Name,
		Description:    req.Description,
		Category:       req.Category,
		Price:          req.Price,
		ImageURL:       req.Image,
		Images:         req.Images,
		Features:       req.Features,
		Ingredients:    req.Ingredients,
		Specifications: req.Specifications,
		StockQuantity:  req.StockQuantity,
		InStock:        req.InStock,
		Featured:       req.Featured,
		IsActive:       req.IsActive,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusOK, toProductResponse(product), "product updated")
}

func (h HandlerSet) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "product deleted")
}

func (h HandlerSet) UploadProductImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := h.products.UploadImage(c.Request.Context(), service.UploadImageInput{
		ProductID:   c.Param("id"),
		Reader:      file,
		Size:        header.Size,
		ContentType: contentType,
		Filename:    header.Filename,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusOK, gin.H{"image": url}, "image uploaded")
}
