package handlers

import (
	"net/http"

	"wheel_backend/internal/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store   store.Store
	version string
}

func NewHealthHandler(st store.Store, version string) *HealthHandler {
	return &HealthHandler{store: st, version: version}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

// Liveness only confirms the process answers.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readiness checks the document store is reachable.
func (h *HealthHandler) Readiness(c *gin.Context) {
	if _, err := h.store.LoadPlays(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
