package http

import (
	"time"

	"wheel_backend/internal/config"
	"wheel_backend/internal/http/handlers"
	"wheel_backend/internal/http/middleware"
	"wheel_backend/internal/service"
	"wheel_backend/internal/store"
	"wheel_backend/internal/ws"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole API. The spin service gets the feed
// hub attached here so every persisted play reaches the dashboard.
func RegisterRoutes(r *gin.Engine, st store.Store, cfg *config.Config, version string) {
	hub := ws.NewHub()
	spin := service.NewSpinService(st)
	spin.SetFeed(hub)

	h := handlers.NewHandler(st, spin, hub)
	healthHandler := handlers.NewHealthHandler(st, version)

	apiRateWindow := time.Duration(cfg.APIRateWindowSeconds) * time.Second
	authRateWindow := time.Duration(cfg.AuthRateWindowSeconds) * time.Second
	spinRateWindow := time.Duration(cfg.SpinRateWindowSeconds) * time.Second

	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	registerAPIRoutes(v1, h, cfg, authRateWindow, spinRateWindow)

	// Legacy unversioned mirror
	api := r.Group("/api")
	api.Use(middleware.RedisRateLimit(cfg.APIRateLimit, apiRateWindow))
	registerAPIRoutes(api, h, cfg, authRateWindow, spinRateWindow)
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, cfg *config.Config, authRateWindow, spinRateWindow time.Duration) {
	// Auth
	api.POST("/auth/login", middleware.RedisRateLimit(cfg.AuthRateLimit, authRateWindow), h.Login)
	api.POST("/auth/password", middleware.JWT(), h.ChangePassword)

	// Game
	api.GET("/wheel", h.Wheel)
	api.POST("/spin", middleware.JWT(),
		middleware.SpinRateLimit(cfg.SpinRateLimit, spinRateWindow), h.HandleSpin)
	api.GET("/me/history", middleware.JWT(), h.MyHistory)

	// Signup requests (public submit)
	api.POST("/requests", middleware.RedisRateLimit(cfg.AuthRateLimit, authRateWindow), h.CreateRequest)

	// Dashboard
	admin := api.Group("/admin")
	admin.Use(middleware.JWT(), middleware.AdminOnly())
	{
		admin.GET("/config", h.GetConfig)
		admin.PUT("/config", h.SaveConfig)

		admin.GET("/plays", h.ListPlays)
		admin.POST("/plays/claim", h.ClaimPlay)
		admin.DELETE("/plays", h.ClearPlays)

		admin.GET("/users", h.ListUsers)
		admin.POST("/users", h.CreateUser)
		admin.DELETE("/users/:username", h.DeleteUser)

		admin.GET("/requests", h.ListRequests)
		admin.POST("/requests/:id/approve", h.ApproveRequest)
		admin.DELETE("/requests/:id", h.DeleteRequest)

		admin.GET("/feed", h.Feed)
	}
}
