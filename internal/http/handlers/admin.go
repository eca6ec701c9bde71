package handlers

import (
	"errors"
	"net/http"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GetConfig returns the full wheel configuration, caps and odds included.
func (h *Handler) GetConfig(c *gin.Context) {
	cfg, err := h.Store.LoadConfig(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no config saved yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// SaveConfig validates and replaces the wheel configuration document.
func (h *Handler) SaveConfig(c *gin.Context) {
	var cfg domain.WheelConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid config: " + err.Error()})
		return
	}
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.SaveConfig(c.Request.Context(), &cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save config"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListPlays returns the whole play log for the dashboard.
func (h *Handler) ListPlays(c *gin.Context) {
	plays, err := h.Store.LoadPlays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plays": plays})
}

type ClaimRequest struct {
	WinCode string `json:"win_code" binding:"required"`
}

// ClaimPlay marks the winning play carrying the given code as claimed.
// Keyed by win code, not log position, so a log that grew since the
// dashboard loaded cannot mis-target an entry.
func (h *Handler) ClaimPlay(c *gin.Context) {
	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	plays, err := h.Store.LoadPlays(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plays"})
		return
	}

	for i := range plays {
		if !plays[i].IsWin || plays[i].WinCode != req.WinCode {
			continue
		}
		if plays[i].Claimed {
			c.JSON(http.StatusConflict, gin.H{"error": "prize already claimed"})
			return
		}
		plays[i].Claimed = true
		if err := h.Store.SavePlays(ctx, plays); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save plays"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "play": plays[i]})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "win code not found"})
}

// ClearPlays wipes the play log, resetting every daily counter.
func (h *Handler) ClearPlays(c *gin.Context) {
	if err := h.Store.SavePlays(c.Request.Context(), []domain.PlayLogEntry{}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear plays"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
