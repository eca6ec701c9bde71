package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"wheel_backend/internal/config"
	"wheel_backend/internal/domain"
	"wheel_backend/internal/service"
	"wheel_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
	service.InitJWT()

	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if err := st.SaveConfig(ctx, &domain.WheelConfig{
		WheelName: "Ruota",
		Segments: []domain.PrizeSegment{
			{Label: "gelato", Winning: true, Value: 5},
			{Label: "nothing"},
			{Label: "nothing"},
			{Label: "nothing"},
		},
		MaxDailyPlays: 1,
		MaxDailyWins:  1,
		WinPercent:    100,
		Active:        true,
	}); err != nil {
		t.Fatal(err)
	}

	aliceHash, _ := service.HashPassword("alicepw")
	bossHash, _ := service.HashPassword("bosspw")
	if err := st.SaveUsers(ctx, []domain.User{
		{Username: "alice", Role: domain.RoleUser, PasswordHash: aliceHash, History: []domain.PlayRecord{}},
		{Username: "boss", Role: domain.RoleAdmin, PasswordHash: bossHash, History: []domain.PlayRecord{}},
	}); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		APIRateLimit:          1000,
		APIRateWindowSeconds:  60,
		AuthRateLimit:         1000,
		AuthRateWindowSeconds: 60,
		SpinRateLimit:         1000,
		SpinRateWindowSeconds: 60,
	}

	r := gin.New()
	RegisterRoutes(r, st, cfg, "test")

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, st
}

func doJSON(t *testing.T, method, url, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var decoded map[string]any
	_ = json.NewDecoder(res.Body).Decode(&decoded)
	return res, decoded
}

func login(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	res, body := doJSON(t, "POST", srv.URL+"/api/v1/auth/login", "",
		map[string]string{"username": username, "password": password})
	if res.StatusCode != 200 {
		t.Fatalf("login %s: status %d body %v", username, res.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("login returned no token")
	}
	return token
}

func TestSpinFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "alice", "alicepw")

	res, body := doJSON(t, "POST", srv.URL+"/api/v1/spin", token,
		map[string]any{"current_rotation": 0})
	if res.StatusCode != 200 {
		t.Fatalf("spin: status %d body %v", res.StatusCode, body)
	}
	if body["is_win"] != true {
		t.Fatalf("first spin with 100%% and empty log should win: %v", body)
	}
	if code, _ := body["win_code"].(string); len(code) != 8 {
		t.Errorf("win_code = %v", body["win_code"])
	}
	if rot, _ := body["rotation"].(float64); rot < 5*360 {
		t.Errorf("rotation = %v, want at least 5 full turns", rot)
	}

	// daily cap is 1: second spin is rejected, not an error
	res, body = doJSON(t, "POST", srv.URL+"/api/v1/spin", token,
		map[string]any{"current_rotation": 0})
	if res.StatusCode != http.StatusConflict || body["error"] != "daily_limit" {
		t.Fatalf("second spin: status %d body %v, want 409 daily_limit", res.StatusCode, body)
	}
}

func TestSpinRequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	res, _ := doJSON(t, "POST", srv.URL+"/api/v1/spin", "", map[string]any{})
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", res.StatusCode)
	}
}

func TestAdminGate(t *testing.T) {
	srv, _ := newTestServer(t)

	aliceToken := login(t, srv, "alice", "alicepw")
	res, _ := doJSON(t, "GET", srv.URL+"/api/v1/admin/config", aliceToken, nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("user hitting admin route: status %d, want 403", res.StatusCode)
	}

	bossToken := login(t, srv, "boss", "bosspw")
	res, body := doJSON(t, "GET", srv.URL+"/api/v1/admin/config", bossToken, nil)
	if res.StatusCode != 200 {
		t.Fatalf("admin config: status %d body %v", res.StatusCode, body)
	}
	if body["wheel_name"] != "Ruota" {
		t.Errorf("config = %v", body)
	}
}

func TestClaimFlow(t *testing.T) {
	srv, _ := newTestServer(t)
	aliceToken := login(t, srv, "alice", "alicepw")
	bossToken := login(t, srv, "boss", "bosspw")

	_, spinBody := doJSON(t, "POST", srv.URL+"/api/v1/spin", aliceToken,
		map[string]any{"current_rotation": 0})
	winCode, _ := spinBody["win_code"].(string)
	if winCode == "" {
		t.Fatal("expected a winning spin")
	}

	res, _ := doJSON(t, "POST", srv.URL+"/api/v1/admin/plays/claim", bossToken,
		map[string]string{"win_code": winCode})
	if res.StatusCode != 200 {
		t.Fatalf("claim: status %d", res.StatusCode)
	}

	res, _ = doJSON(t, "POST", srv.URL+"/api/v1/admin/plays/claim", bossToken,
		map[string]string{"win_code": winCode})
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("double claim: status %d, want 409", res.StatusCode)
	}

	res, _ = doJSON(t, "POST", srv.URL+"/api/v1/admin/plays/claim", bossToken,
		map[string]string{"win_code": "NOPE1234"})
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown code: status %d, want 404", res.StatusCode)
	}
}

func TestSignupRequestApproval(t *testing.T) {
	srv, _ := newTestServer(t)
	bossToken := login(t, srv, "boss", "bosspw")

	res, body := doJSON(t, "POST", srv.URL+"/api/v1/requests", "",
		map[string]any{
			"first_name":   "Mario",
			"last_name":    "Rossi",
			"email":        "mario@example.com",
			"gdpr_consent": true,
		})
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create request: status %d body %v", res.StatusCode, body)
	}
	id, _ := body["id"].(string)
	if id == "" {
		t.Fatal("no request id returned")
	}

	res, _ = doJSON(t, "POST", srv.URL+"/api/v1/admin/requests/"+id+"/approve", bossToken,
		map[string]string{"username": "mario", "password": "mariopw"})
	if res.StatusCode != 200 {
		t.Fatalf("approve: status %d", res.StatusCode)
	}

	// the new account can log in and see the wheel
	marioToken := login(t, srv, "mario", "mariopw")
	res, _ = doJSON(t, "GET", srv.URL+"/api/v1/wheel", marioToken, nil)
	if res.StatusCode != 200 {
		t.Fatalf("wheel: status %d", res.StatusCode)
	}

	// approving twice must fail
	res, _ = doJSON(t, "POST", srv.URL+"/api/v1/admin/requests/"+id+"/approve", bossToken,
		map[string]string{"username": "mario2", "password": "mariopw"})
	if res.StatusCode != http.StatusConflict {
		t.Fatalf("double approve: status %d, want 409", res.StatusCode)
	}
}

func TestInactiveWheelBlocksUsersNotAdmins(t *testing.T) {
	srv, st := newTestServer(t)

	cfg, err := st.LoadConfig(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	cfg.Active = false
	if err := st.SaveConfig(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}

	aliceToken := login(t, srv, "alice", "alicepw")
	res, body := doJSON(t, "POST", srv.URL+"/api/v1/spin", aliceToken,
		map[string]any{"current_rotation": 0})
	if res.StatusCode != http.StatusConflict || body["error"] != "wheel_inactive" {
		t.Fatalf("status %d body %v, want 409 wheel_inactive", res.StatusCode, body)
	}

	bossToken := login(t, srv, "boss", "bosspw")
	res, _ = doJSON(t, "POST", srv.URL+"/api/v1/spin", bossToken,
		map[string]any{"current_rotation": 0})
	if res.StatusCode != 200 {
		t.Fatalf("admin spin on inactive wheel: status %d", res.StatusCode)
	}
}
