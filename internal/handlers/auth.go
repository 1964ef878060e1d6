package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KEYAJANI/demiland-sub000/internal/middleware"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
	"github.com/KEYAJANI/demiland-sub000/internal/service"
)

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type authData struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

func (h HandlerSet) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrMissingFields.Error())
		return
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusCreated, authData{
		User:  toUserResponse(result.User),
		Token: result.Token,
	}, "registration successful")
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusOK, authData{
		User:  toUserResponse(result.User),
		Token: result.Token,
	}, "login successful")
}

func (h HandlerSet) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	respondData(c, http.StatusOK, toUserResponse(user))
}

type profileUpdateRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
}

func (h HandlerSet) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.auth.UpdateProfile(c.Request.Context(), user.ID, service.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusOK, toUserResponse(updated), "profile updated")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (h HandlerSet) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "current and new password are required")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "password changed")
}

// VerifyToken echoes the decoded claims so clients can validate a stored
// token without a full profile fetch.
func (h HandlerSet) VerifyToken(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"userId":  claims.UserID,
		"email":   claims.Email,
		"role":    claims.Role,
		"isAdmin": models.UserRole(claims.Role).IsAdmin(),
	})
}

func (h HandlerSet) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	if err := h.auth.Logout(c.Request.Context(), claims.SessionID); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "logged out")
}

type adminCreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

func (h HandlerSet) AdminCreateUser(c *gin.Context) {
	var req adminCreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, service.ErrMissingFields.Error())
		return
	}

	user, err := h.admin.Create(c.Request.Context(), service.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      models.UserRole(req.Role),
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusCreated, toUserResponse(user), "user created")
}

func (h HandlerSet) AdminListUsers(c *gin.Context) {
	users, err := h.admin.List(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondData(c, http.StatusOK, toUserResponses(users))
}

type adminUpdateUserRequest struct {
	Email     *string `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
	Password  *string `json:"password"`
}

func (h HandlerSet) AdminUpdateUser(c *gin.Context) {
	var req adminUpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	update := service.AdminUserUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  req.IsActive,
		Password:  req.Password,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		update.Role = &role
	}

	user, err := h.admin.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondDataMessage(c, http.StatusOK, toUserResponse(user), "user updated")
}

func (h HandlerSet) AdminDeleteUser(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication token required")
		return
	}

	if err := h.admin.Delete(c.Request.Context(), actor.ID, c.Param("id")); err != nil {
		h.respondServiceError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "user deleted")
}
