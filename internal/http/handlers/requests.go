package handlers

import (
	"net/http"
	"time"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SignupRequestBody struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	City        string `json:"city"`
	GDPRConsent bool   `json:"gdpr_consent"`
}

// CreateRequest files a self-service signup request for an admin to
// review. Public endpoint, rate limited at the route level.
func (h *Handler) CreateRequest(c *gin.Context) {
	var body SignupRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	now := time.Now()
	req := domain.SignupRequest{
		ID:          uuid.NewString(),
		FirstName:   body.FirstName,
		LastName:    body.LastName,
		Email:       body.Email,
		Phone:       body.Phone,
		City:        body.City,
		RequestedAt: now.Format(time.RFC3339),
		GDPRConsent: body.GDPRConsent,
	}
	if body.GDPRConsent {
		req.GDPRDate = now.Format(time.RFC3339)
	}

	ctx := c.Request.Context()
	reqs, err := h.Store.LoadRequests(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}
	reqs = append(reqs, req)
	if err := h.Store.SaveRequests(ctx, reqs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save request"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

// ListRequests returns all signup requests for the dashboard.
func (h *Handler) ListRequests(c *gin.Context) {
	reqs, err := h.Store.LoadRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": reqs})
}

type ApproveRequestBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=4"`
}

// ApproveRequest turns a pending signup request into an account and
// marks the request as created.
func (h *Handler) ApproveRequest(c *gin.Context) {
	id := c.Param("id")

	var body ApproveRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	reqs, err := h.Store.LoadRequests(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}

	idx := -1
	for i := range reqs {
		if reqs[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
		return
	}
	if reqs[idx].Created {
		c.JSON(http.StatusConflict, gin.H{"error": "request already approved"})
		return
	}

	users, err := h.Store.LoadUsers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load users"})
		return
	}
	for _, u := range users {
		if u.Username == body.Username {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}

	users = append(users, domain.User{
		Username:     body.Username,
		Role:         domain.RoleUser,
		PasswordHash: hash,
		Email:        reqs[idx].Email,
		FirstName:    reqs[idx].FirstName,
		LastName:     reqs[idx].LastName,
		Phone:        reqs[idx].Phone,
		City:         reqs[idx].City,
		GDPRConsent:  reqs[idx].GDPRConsent,
		GDPRDate:     reqs[idx].GDPRDate,
		History:      []domain.PlayRecord{},
	})
	if err := h.Store.SaveUsers(ctx, users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save users"})
		return
	}

	reqs[idx].Created = true
	reqs[idx].Username = body.Username
	if err := h.Store.SaveRequests(ctx, reqs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save requests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "username": body.Username})
}

// DeleteRequest removes a signup request by ID.
func (h *Handler) DeleteRequest(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	reqs, err := h.Store.LoadRequests(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load requests"})
		return
	}

	for i := range reqs {
		if reqs[i].ID != id {
			continue
		}
		reqs = append(reqs[:i], reqs[i+1:]...)
		if err := h.Store.SaveRequests(ctx, reqs); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save requests"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
}
