package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nordblog/console/internal/core/domain"
	"github.com/nordblog/console/internal/notify"
	"github.com/nordblog/console/internal/web/view"
)

type stubSessions struct {
	loginFn    func(ctx context.Context, creds domain.Credentials) (bool, error)
	registerFn func(ctx context.Context, creds domain.Credentials) (bool, error)
	snapshot   domain.Session
	logouts    int
	probes     int
}

func (s *stubSessions) Probe(ctx context.Context) { s.probes++ }

func (s *stubSessions) Login(ctx context.Context, creds domain.Credentials) (bool, error) {
	return s.loginFn(ctx, creds)
}

func (s *stubSessions) Register(ctx context.Context, creds domain.Credentials) (bool, error) {
	return s.registerFn(ctx, creds)
}

func (s *stubSessions) Logout(ctx context.Context) { s.logouts++ }

func (s *stubSessions) Snapshot() domain.Session {
	if s.snapshot.Status == "" {
		return domain.Session{Status: domain.StatusAnonymous}
	}
	return s.snapshot
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.New()
	e.Validator = NewValidator()
	return e
}

func formRequest(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{
		loginFn: func(ctx context.Context, creds domain.Credentials) (bool, error) {
			if creds.Email != "a@example.com" || creds.Password != "secret" {
				t.Errorf("unexpected credentials: %+v", creds)
			}
			return true, nil
		},
	}
	handler := NewAuthHandler(stub, notify.NewBulletin(0), zerolog.Nop())

	req := formRequest("/login", url.Values{"email": {"a@example.com"}, "password": {"secret"}})
	rec := httptest.NewRecorder()

	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin" {
		t.Fatalf("expected redirect to /admin, got %q", loc)
	}
}

func TestAuthHandler_Login_RejectedCredentials(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{
		loginFn: func(ctx context.Context, creds domain.Credentials) (bool, error) {
			return false, nil
		},
	}
	handler := NewAuthHandler(stub, notify.NewBulletin(0), zerolog.Nop())

	req := formRequest("/login", url.Values{"email": {"a@example.com"}, "password": {"wrong"}})
	rec := httptest.NewRecorder()

	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("expected inline error in body")
	}
	if !strings.Contains(rec.Body.String(), "a@example.com") {
		t.Fatalf("expected submitted email to be kept in the form")
	}
}

func TestAuthHandler_Login_TransportFailure(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{
		loginFn: func(ctx context.Context, creds domain.Credentials) (bool, error) {
			return false, errors.New("connection refused")
		},
	}
	handler := NewAuthHandler(stub, notify.NewBulletin(0), zerolog.Nop())

	req := formRequest("/login", url.Values{"email": {"a@example.com"}, "password": {"secret"}})
	rec := httptest.NewRecorder()

	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "temporarily unavailable") {
		t.Fatalf("expected unavailability message in body")
	}
}

func TestAuthHandler_Login_InvalidForm(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{
		loginFn: func(ctx context.Context, creds domain.Credentials) (bool, error) {
			t.Errorf("login should not be called")
			return false, nil
		},
	}
	handler := NewAuthHandler(stub, notify.NewBulletin(0), zerolog.Nop())

	req := formRequest("/login", url.Values{"email": {"not-an-email"}, "password": {"secret"}})
	rec := httptest.NewRecorder()

	if err := handler.Login(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "must be a valid email") {
		t.Fatalf("expected validation message in body")
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{
		registerFn: func(ctx context.Context, creds domain.Credentials) (bool, error) {
			return true, nil
		},
	}
	bulletin := notify.NewBulletin(0)
	handler := NewAuthHandler(stub, bulletin, zerolog.Nop())

	req := formRequest("/register", url.Values{"email": {"new@example.com"}, "password": {"longenough"}})
	rec := httptest.NewRecorder()

	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
	flash := bulletin.Current()
	if flash == nil || flash.Severity != domain.SeverityInfo {
		t.Fatalf("expected info notification, got %+v", flash)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{
		registerFn: func(ctx context.Context, creds domain.Credentials) (bool, error) {
			t.Errorf("register should not be called")
			return false, nil
		},
	}
	handler := NewAuthHandler(stub, notify.NewBulletin(0), zerolog.Nop())

	req := formRequest("/register", url.Values{"email": {"new@example.com"}, "password": {"short"}})
	rec := httptest.NewRecorder()

	if err := handler.Register(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "at least 8 characters") {
		t.Fatalf("expected validation message in body")
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	stub := &stubSessions{}
	handler := NewAuthHandler(stub, notify.NewBulletin(0), zerolog.Nop())

	req := formRequest("/logout", url.Values{})
	rec := httptest.NewRecorder()

	if err := handler.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
	if stub.logouts != 1 {
		t.Fatalf("expected one logout call, got %d", stub.logouts)
	}
}
