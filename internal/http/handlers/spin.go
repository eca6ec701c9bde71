package handlers

import (
	"errors"
	"net/http"

	"wheel_backend/internal/domain"
	"wheel_backend/internal/service"
	"wheel_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// SpinRequest carries the wheel's current absolute rotation so the
// server can plan a forward-only animation target. Rotation state is
// per browser session; the server never stores it.
type SpinRequest struct {
	CurrentRotation float64 `json:"current_rotation"`
}

type SpinResponse struct {
	SegmentIndex   int     `json:"segment_index"`
	Label          string  `json:"label"`
	Value          int     `json:"value"`
	IsWin          bool    `json:"is_win"`
	WinCode        string  `json:"win_code,omitempty"`
	Rotation       float64 `json:"rotation"`
	PlaysRemaining int     `json:"plays_remaining"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
}

// HandleSpin runs one spin for the authenticated user.
func (h *Handler) HandleSpin(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	var req SpinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	res, err := h.Spin.Spin(c.Request.Context(), username, isAdmin(c), req.CurrentRotation)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWheelInactive):
			c.JSON(http.StatusConflict, gin.H{"error": "wheel_inactive"})
		case errors.Is(err, service.ErrDailyLimit):
			c.JSON(http.StatusConflict, gin.H{"error": "daily_limit"})
		case errors.Is(err, store.ErrConfigNotFound),
			errors.Is(err, domain.ErrNoSegments),
			errors.Is(err, domain.ErrBadWinPercent),
			errors.Is(err, domain.ErrNegativeLimit):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "wheel is misconfigured"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "spin failed"})
		}
		return
	}

	c.JSON(http.StatusOK, SpinResponse{
		SegmentIndex:   res.Index,
		Label:          res.Entry.Result,
		Value:          res.Value,
		IsWin:          res.Entry.IsWin,
		WinCode:        res.Entry.WinCode,
		Rotation:       res.Rotation,
		PlaysRemaining: res.PlaysRemaining,
		Date:           res.Entry.Date,
		Time:           res.Entry.Time,
	})
}

// MyHistory returns the caller's entries from the play log.
func (h *Handler) MyHistory(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	plays, err := h.Spin.History(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	if plays == nil {
		plays = []domain.PlayLogEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"plays": plays})
}

// Wheel returns what the game screen needs to draw the wheel: name,
// theme, segments and the kill switch. Odds and caps stay server-side.
func (h *Handler) Wheel(c *gin.Context) {
	cfg, err := h.Store.LoadConfig(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrConfigNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wheel not configured"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wheel"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wheel_name":      cfg.WheelName,
		"theme":           cfg.Theme,
		"segments":        cfg.Segments,
		"max_daily_plays": cfg.MaxDailyPlays,
		"active":          cfg.Active,
	})
}
