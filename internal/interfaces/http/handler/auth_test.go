package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"pitchcraft-ai-api/internal/config"
	"pitchcraft-ai-api/internal/interfaces/http/dto"
)

func newAuthTestRouter(h *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/auth/register", h.Register)
	r.POST("/v1/auth/login", h.Login)
	return r
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "test-issuer",
		Expiration:        time.Hour,
		RefreshExpiration: 24 * time.Hour,
	}
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	h := NewAuthHandler(testJWTConfig(), newFakeUserRepo())
	r := newAuthTestRouter(h)

	w := postJSON(r, "/v1/auth/register", `{"email":"founder@ecogrow.io","password":"long-enough","name":"Alex"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, body %s", w.Code, w.Body.String())
	}

	var resp dto.Response[*dto.AuthResponse]
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Data.AccessToken == "" {
		t.Error("expected access token")
	}
	if resp.Data.User == nil || resp.Data.User.Email != "founder@ecogrow.io" {
		t.Errorf("user = %+v", resp.Data.User)
	}

	// 重复注册
	w = postJSON(r, "/v1/auth/register", `{"email":"founder@ecogrow.io","password":"long-enough"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register status = %d, want 400", w.Code)
	}

	// 正确口令登录
	w = postJSON(r, "/v1/auth/login", `{"email":"founder@ecogrow.io","password":"long-enough"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	// 错误口令与未知邮箱返回同一种 401
	w = postJSON(r, "/v1/auth/login", `{"email":"founder@ecogrow.io","password":"wrong-password"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}
	w = postJSON(r, "/v1/auth/login", `{"email":"nobody@example.com","password":"long-enough"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown email status = %d, want 401", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	h := NewAuthHandler(testJWTConfig(), newFakeUserRepo())
	r := newAuthTestRouter(h)

	tests := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"not-an-email","password":"long-enough"}`},
		{"short password", `{"email":"a@b.com","password":"short"}`},
		{"missing password", `{"email":"a@b.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := postJSON(r, "/v1/auth/register", tt.body); w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}
