package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-api/internal/core/domain"
)

type stubNotificationRepo struct {
	notifications map[string]*domain.Notification
	marked        []string
}

func newStubNotificationRepo(notifications ...*domain.Notification) *stubNotificationRepo {
	r := &stubNotificationRepo{notifications: make(map[string]*domain.Notification)}
	for _, n := range notifications {
		r.notifications[n.ID] = n
	}
	return r
}

func (r *stubNotificationRepo) FindByID(_ context.Context, id string) (*domain.Notification, error) {
	n, ok := r.notifications[id]
	if !ok {
		return nil, domain.ErrNotificationNotFound
	}
	return n, nil
}

func (r *stubNotificationRepo) MarkRead(_ context.Context, id string) error {
	r.marked = append(r.marked, id)
	return nil
}

func markReadContext(e *echo.Echo, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/notifications/n1/read", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("n1")
	if userID != "" {
		c.Set("user_id", userID)
		c.Set("role", domain.RoleProvider)
	}
	return c, rec
}

func TestNotificationHandler_MarkRead_Owner(t *testing.T) {
	e := echo.New()
	repo := newStubNotificationRepo(&domain.Notification{ID: "n1", UserID: "7"})
	h := NewNotificationHandler(repo)

	c, rec := markReadContext(e, "7")
	if err := h.MarkRead(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(repo.marked) != 1 || repo.marked[0] != "n1" {
		t.Fatalf("notification not marked read: %v", repo.marked)
	}
}

func TestNotificationHandler_MarkRead_NonOwnerForbidden(t *testing.T) {
	e := echo.New()
	repo := newStubNotificationRepo(&domain.Notification{ID: "n1", UserID: "7"})
	h := NewNotificationHandler(repo)

	c, _ := markReadContext(e, "8")
	if err := h.MarkRead(c); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(repo.marked) != 0 {
		t.Fatalf("notification must not be marked on denial")
	}
}

func TestNotificationHandler_MarkRead_Unauthenticated(t *testing.T) {
	e := echo.New()
	repo := newStubNotificationRepo(&domain.Notification{ID: "n1", UserID: "7"})
	h := NewNotificationHandler(repo)

	c, _ := markReadContext(e, "")
	if err := h.MarkRead(c); err != domain.ErrNotAuthenticated {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}
