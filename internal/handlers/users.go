package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/middleware"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

func (h HandlerSet) ListCategories(c *gin.Context) {
	categories, err := h.catalog.Categories(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	resp := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, categoryResponse{ID: category.ID, Name: category.Name})
	}

	respondData(c, http.StatusOK, resp)
}

func (h HandlerSet) ListFavorites(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	products, err := h.favorites.List(c.Request.Context(), user.ID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toProductResponses(products))
}

func (h HandlerSet) AddFavorite(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	if err := h.favorites.Add(c.Request.Context(), user.ID, c.Param("productId")); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "favorite added")
}

func (h HandlerSet) RemoveFavorite(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), user.ID, c.Param("productId")); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "favorite removed")
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h HandlerSet) ChangeUserRole(c *gin.Context) {
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "role is required")
		return
	}

	user, err := h.admin.ChangeRole(c.Request.Context(), c.Param("id"), models.UserRole(req.Role))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusOK, toUserResponse(user), "role updated")
}
