package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"todolist/internal/models"
	"todolist/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.requireUser, func(c *gin.Context) {
		u := currentUser(c)
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": u.ID})
	})
	return r
}

func TestRequireUser_Rejections(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		authErr  error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "missing header",
			header:   "",
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, no token.",
		},
		{
			name:     "wrong scheme",
			header:   "Token abc",
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, no token.",
		},
		{
			name:     "bearer without token",
			header:   "Bearer",
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, no token.",
		},
		{
			name:     "expired token",
			header:   "Bearer expired",
			authErr:  service.ErrTokenExpired,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, token failed.",
		},
		{
			name:     "tampered token",
			header:   "Bearer tampered",
			authErr:  service.ErrTokenSignature,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, token failed.",
		},
		{
			name:     "malformed token",
			header:   "Bearer junk",
			authErr:  service.ErrTokenMalformed,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, token failed.",
		},
		{
			name:     "user deleted after issuance",
			header:   "Bearer stale",
			authErr:  service.ErrUserNotFound,
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Not authorized, user not found.",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{authErr: tc.authErr}
			s := &service.Service{Authorization: auth}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}

			var out struct {
				Message string `json:"message"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Message != tc.wantMsg {
				t.Fatalf("message: got %q, want %q", out.Message, tc.wantMsg)
			}
		})
	}
}

func TestRequireUser_SuccessAttachesUser(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: "u-123", Username: "alice"}}
	s := &service.Service{Authorization: auth}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool   `json:"ok"`
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != "u-123" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastAuthToken != "good-token" {
		t.Fatalf("Authenticate got %q, want %q", auth.lastAuthToken, "good-token")
	}
	if auth.authCalls != 1 {
		t.Fatalf("expected exactly 1 Authenticate call, got %d", auth.authCalls)
	}
}
