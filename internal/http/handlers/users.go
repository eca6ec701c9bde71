package handlers

import (
	"net/http"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ListUsers returns all accounts without password hashes.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.LoadUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	safe := make([]domain.User, 0, len(users))
	for _, u := range users {
		safe = append(safe, u.Sanitized())
	}
	c.JSON(http.StatusOK, gin.H{"users": safe})
}

type CreateUserRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required,min=4"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
}

// CreateUser adds one account to the users document.
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if req.Role == "" {
		req.Role = domain.RoleUser
	}
	if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown role"})
		return
	}

	ctx := c.Request.Context()
	users, err := h.Store.LoadUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	for _, u := range users {
		if u.Username == req.Username {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
	}

	hash, err := service.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	user := domain.User{
		Username:     req.Username,
		Role:         req.Role,
		PasswordHash: hash,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		City:         req.City,
		History:      []domain.PlayRecord{},
	}

	users = append(users, user)
	if err := h.Store.SaveUsers(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save users"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user.Sanitized()})
}

// DeleteUser removes one account by username.
func (h *Handler) DeleteUser(c *gin.Context) {
	username := c.Param("username")

	ctx := c.Request.Context()
	users, err := h.Store.LoadUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}

	for i, u := range users {
		if u.Username != username {
			continue
		}
		users = append(users[:i], users[i+1:]...)
		if err := h.Store.SaveUsers(ctx, users); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save users"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
}
