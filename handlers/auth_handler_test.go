package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/224saisrikanth/Judment-analysis/auth"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	creds := auth.NewCredentialStore(filepath.Join(t.TempDir(), "credentials.json"))
	authHandler := NewAuthHandler(creds)

	r := gin.New()
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte("test-secret"))))
	r.POST("/api/login", authHandler.Login)

	authed := r.Group("/api")
	authed.Use(RequireAuth())
	authed.GET("/session", authHandler.Session)
	authed.POST("/logout", authHandler.Logout)

	return r
}

func doJSON(r *gin.Engine, method, path, body, cookieHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"wrong"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INVALID_CREDENTIALS") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestRequireAuthBlocksAnonymous(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodGet, "/api/session", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "UNAUTHORIZED") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestLoginSessionFlow(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Header().Values("Set-Cookie")
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}
	cookieHeader := strings.Split(cookies[0], ";")[0]

	w = doJSON(r, http.MethodGet, "/api/session", "", cookieHeader)
	if w.Code != http.StatusOK {
		t.Fatalf("session status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Username    string `json:"username"`
			DisplayName string `json:"display_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Data.Username != "admin" || resp.Data.DisplayName != "Administrator" {
		t.Errorf("session payload = %+v", resp)
	}

	// Logout invalidates the cookie for later requests.
	w = doJSON(r, http.MethodPost, "/api/logout", "", cookieHeader)
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}
	expired := strings.Split(w.Header().Values("Set-Cookie")[0], ";")[0]
	w = doJSON(r, http.MethodGet, "/api/session", "", expired)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status after logout = %d, want 401", w.Code)
	}
}
