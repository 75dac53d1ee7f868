package handler

import (
	identityapp "github.com/carbyfah/backend/internal/application/identity"
	"github.com/carbyfah/backend/internal/domain/identity"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles account management endpoints
type UserHandler struct {
	BaseHandler
	userService *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *identityapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRoutes registers the account management routes. The whole
// group is admin-only.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/auth/usuarios", middleware.RequireAdmin())
	{
		users.GET("", h.List)
		users.POST("", h.Create)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.POST("/:id/restablecer-contrasena", h.ResetPassword)
		users.POST("/:id/activar", h.Activate)
		users.POST("/:id/desactivar", h.Deactivate)
	}
}

// CreateUserRequest carries an account creation request
type CreateUserRequest struct {
	Username    string     `json:"username" binding:"required"`
	Password    string     `json:"password" binding:"required"`
	Email       string     `json:"email"`
	AccessLevel string     `json:"nivel_acceso" binding:"required"`
	ProfileID   *uuid.UUID `json:"perfil_id"`
}

// Create registers a new account
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), identityapp.CreateUserRequest{
		Username:    req.Username,
		Password:    req.Password,
		Email:       req.Email,
		AccessLevel: identity.AccessLevel(req.AccessLevel),
		ProfileID:   req.ProfileID,
		CreatedBy:   actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, user)
}

// GetByID retrieves an account by ID
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// UserListQuery carries listing options for accounts
type UserListQuery struct {
	Search   string `form:"buscar"`
	Page     int    `form:"pagina"`
	PageSize int    `form:"tamano_pagina"`
}

// List retrieves accounts with pagination
func (h *UserHandler) List(c *gin.Context) {
	var query UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BindError(c, err)
		return
	}
	if query.Page == 0 {
		query.Page = 1
	}
	if query.PageSize == 0 {
		query.PageSize = 20
	}

	users, total, err := h.userService.List(c.Request.Context(), identityapp.UserListFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, total, query.Page, query.PageSize)
}

// UpdateUserRequest carries an account update request
type UpdateUserRequest struct {
	Email       string `json:"email"`
	AccessLevel string `json:"nivel_acceso" binding:"required"`
}

// Update modifies an account's email and access level
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, identityapp.UpdateUserRequest{
		Email:       req.Email,
		AccessLevel: identity.AccessLevel(req.AccessLevel),
		UpdatedBy:   actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, user)
}

// ResetPasswordRequest carries the administrative password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"contrasena_nueva" binding:"required"`
}

// ResetPassword sets a new password without the old one
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	if err := h.userService.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Activate re-enables a deactivated or locked account
func (h *UserHandler) Activate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.userService.Activate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Deactivate disables an account
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	if err := h.userService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete soft-deletes an account
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
