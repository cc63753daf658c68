package middleware

import (
	"cboard/internal/utils"
	"cboard/models"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type fakeDenylist map[string]bool

func (d fakeDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return d[jti], nil
}

func newEngine(tokens *utils.TokenManager, checker RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Session(tokens, checker, "accessToken"))
	r.GET("/open", func(ctx *gin.Context) {
		if identity, ok := GetIdentity(ctx); ok {
			ctx.String(http.StatusOK, identity.Nickname)
			return
		}
		ctx.String(http.StatusOK, "anonymous")
	})
	r.GET("/closed", RequireLogin(), func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	return r
}

func TestSession(t *testing.T) {
	tokens := utils.NewTokenManager("secret", "cboard", time.Hour)
	valid, _, err := tokens.GenToken(&models.AccountInfo{ID: 1, Nickname: "Alice"})
	if err != nil {
		t.Fatalf("GenToken: %v", err)
	}
	revoked, revokedClaims, _ := tokens.GenToken(&models.AccountInfo{ID: 1, Nickname: "Alice"})
	expired, _, _ := utils.NewTokenManager("secret", "cboard", -time.Minute).GenToken(&models.AccountInfo{ID: 1})

	r := newEngine(tokens, fakeDenylist{revokedClaims.ID: true})

	tests := []struct {
		name   string
		path   string
		cookie string
		bearer string
		status int
		body   string
	}{
		{name: "anonymous", path: "/open", status: http.StatusOK, body: "anonymous"},
		{name: "cookie", path: "/open", cookie: valid, status: http.StatusOK, body: "Alice"},
		{name: "bearer", path: "/open", bearer: valid, status: http.StatusOK, body: "Alice"},
		{name: "garbage token", path: "/open", cookie: "garbage", status: http.StatusForbidden},
		{name: "expired token", path: "/open", bearer: expired, status: http.StatusForbidden},
		{name: "revoked token", path: "/open", cookie: revoked, status: http.StatusForbidden},
		{name: "login required", path: "/closed", status: http.StatusUnauthorized},
		{name: "logged in", path: "/closed", cookie: valid, status: http.StatusOK, body: "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "accessToken", Value: tt.cookie})
			}
			if tt.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tt.bearer)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tt.status, w.Body.String())
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}

func TestSessionWithoutChecker(t *testing.T) {
	tokens := utils.NewTokenManager("secret", "cboard", time.Hour)
	token, _, _ := tokens.GenToken(&models.AccountInfo{ID: 2, Nickname: "Bob"})
	r := newEngine(tokens, nil)

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "Bob" {
		t.Errorf("got %d %q", w.Code, w.Body.String())
	}
}

func TestCORF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORF("*"))
	r.GET("/x", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
}
