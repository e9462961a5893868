package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
)

type stubVerifier struct {
	uid string
	err error
}

func (s stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &auth.Token{UID: s.uid}, nil
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		verifier stubVerifier
		want     int
		wantUID  string
	}{
		{"missing header", "", stubVerifier{uid: "u1"}, http.StatusUnauthorized, ""},
		{"not bearer", "Basic abc", stubVerifier{uid: "u1"}, http.StatusUnauthorized, ""},
		{"invalid token", "Bearer bad", stubVerifier{err: errors.New("expired")}, http.StatusUnauthorized, ""},
		{"valid token", "Bearer good", stubVerifier{uid: "u1"}, http.StatusOK, "u1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &AuthMiddleware{verifier: tt.verifier}
			var gotUID string
			next := func(c echo.Context) error {
				gotUID, _ = c.Get("uid").(string)
				return c.NoContent(http.StatusOK)
			}
			req := httptest.NewRequest(http.MethodPost, "/api/transform", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			if err := m.RequireAuth(next)(echo.New().NewContext(req, rec)); err != nil {
				t.Fatalf("err=%v", err)
			}
			if rec.Code != tt.want {
				t.Fatalf("code=%d want=%d", rec.Code, tt.want)
			}
			if gotUID != tt.wantUID {
				t.Fatalf("uid=%q want=%q", gotUID, tt.wantUID)
			}
		})
	}
}

func TestNewAuthMiddlewareRequiresProject(t *testing.T) {
	if _, err := NewAuthMiddleware(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty project id")
	}
}
