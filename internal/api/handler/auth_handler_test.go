package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, name, role string) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, string, *domain.User, error)
	logoutFn   func(ctx context.Context, sessionToken string) error
}

func (s *stubAuthService) Register(ctx context.Context, email, password, name, role string) (*domain.User, error) {
	return s.registerFn(ctx, email, password, name, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionToken string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, sessionToken)
	}
	return nil
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(_ context.Context, email, password, name, role string) (*domain.User, error) {
			if email != "alice@example.com" || role != domain.RoleProvider {
				t.Fatalf("unexpected args: %s %s", email, role)
			}
			return &domain.User{ID: "1", Email: email, Name: name, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := postJSON(e, "/register", `{"email":"alice@example.com","password":"Str0ng!pass","name":"Alice","role":"provider"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "alice@example.com" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			t.Fatalf("service should not be called on validation failure")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := postJSON(e, "/register", `{"email":"bob@example.com","password":"abc","name":"Bob","role":"provider"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Errors["password"]) != 4 {
		t.Fatalf("expected 4 password messages, got %v", resp.Errors["password"])
	}
}

func TestAuthHandler_Register_PrivilegedRoleDenied(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string, string) (*domain.User, error) {
			t.Fatalf("service should not be called on denial")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	// The weak password would also fail, but the denial must suppress it.
	c, rec := postJSON(e, "/register", `{"email":"eve@example.com","password":"abc","name":"Eve","role":"super_admin"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Errors string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("denial body must carry a single string message: %v", err)
	}
	if resp.Errors != "You are not allowed to register with this role" {
		t.Fatalf("unexpected denial message: %q", resp.Errors)
	}
}

func TestAuthHandler_Login_SetsSessionCookie(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, string, *domain.User, error) {
			return "opaque-session", "jwt-token", &domain.User{ID: "1", Email: "carol@example.com", Role: domain.RoleCompany}, nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, rec := postJSON(e, "/login", `{"email":"carol@example.com","password":"S3cret!pw"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "session_token=opaque-session") {
		t.Fatalf("session cookie not set: %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("session cookie must be HttpOnly: %q", cookie)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, string, *domain.User, error) {
			return "", "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	c, _ := postJSON(e, "/login", `{"email":"carol@example.com","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Me_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewAuthHandler(&stubAuthService{}, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Me(c); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	e := echo.New()
	deleted := ""
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, token string) error {
			deleted = token
			return nil
		},
	}
	h := NewAuthHandler(stub, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: "opaque-session"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "opaque-session" {
		t.Fatalf("expected session to be deleted, got %q", deleted)
	}
}
