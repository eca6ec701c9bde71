package handlers

import (
	"wheel_backend/internal/service"
	"wheel_backend/internal/store"
	"wheel_backend/internal/ws"
)

type Handler struct {
	Store store.Store
	Spin  *service.SpinService
	Auth  *service.AuthService
	Hub   *ws.Hub
}

func NewHandler(st store.Store, spin *service.SpinService, hub *ws.Hub) *Handler {
	return &Handler{
		Store: st,
		Spin:  spin,
		Auth:  service.NewAuthService(st),
		Hub:   hub,
	}
}

// getUsername extracts the authenticated username from the gin context.
func getUsername(c interface{ Get(string) (any, bool) }) (string, bool) {
	v, ok := c.Get("username")
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

func isAdmin(c interface{ Get(string) (any, bool) }) bool {
	v, _ := c.Get("role")
	role, _ := v.(string)
	return role == "admin"
}
