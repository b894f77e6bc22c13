package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/config"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

func newTestAuthRouter(t *testing.T) (*gin.Engine, *AuthHandler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", TokenExpiry: time.Hour}
	h := NewAuthHandler(nil, nil, cfg)

	r := gin.New()
	r.GET("/me", h.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})
	return r, h
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, h := newTestAuthRouter(t)

	token, err := h.issueToken(&model.User{ID: 42, Username: "admin", IsAdmin: true})
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if want := `"user_id":42`; !strings.Contains(w.Body.String(), want) {
		t.Errorf("body %q missing %q", w.Body.String(), want)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	r, _ := newTestAuthRouter(t)

	other := NewAuthHandler(nil, nil, &config.Config{JWTSecret: "another-secret", TokenExpiry: time.Hour})
	token, err := other.issueToken(&model.User{ID: 1, Username: "admin"})
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestUserIDFromBearer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(nil, nil, &config.Config{JWTSecret: "test-secret", TokenExpiry: time.Hour})

	token, err := h.issueToken(&model.User{ID: 42, Username: "admin"})
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/fuel/export", nil)
	c.Request.Header.Set("Authorization", "Bearer "+token)
	if id, ok := h.UserIDFromBearer(c); !ok || id != "42" {
		t.Fatalf("got %q/%v, want 42/true", id, ok)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/fuel/export", nil)
	if _, ok := h.UserIDFromBearer(c); ok {
		t.Fatal("expected no user for a request without a bearer token")
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/reports/fuel/export", nil)
	c.Request.Header.Set("Authorization", "Bearer not.a.token")
	if _, ok := h.UserIDFromBearer(c); ok {
		t.Fatal("expected no user for a malformed token")
	}
}
