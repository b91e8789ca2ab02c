package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/dangonz2277-glitch/Veterinaria-FInal/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, role string) (string, *domain.Account, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.Account, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, role string) (string, *domain.Account, error) {
	return s.registerFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	return s.loginFn(ctx, email, password)
}

type stubAuditSink struct {
	mu     sync.Mutex
	events []domain.AuthEvent
}

func (s *stubAuditSink) Publish(event domain.AuthEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func newAuthContext(t *testing.T, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, email, password, role string) (string, *domain.Account, error) {
			if email != "alice@clinic.test" || role != "" {
				t.Fatalf("unexpected args: %s %s", email, role)
			}
			return "tok-123", &domain.Account{ID: "acc-1", Email: email, Role: domain.RoleVeterinarian, Active: true}, nil
		},
	}
	sink := &stubAuditSink{}
	h := NewAuthHandler(stub, sink)

	c, rec := newAuthContext(t, "/api/auth/register", `{"email":"alice@clinic.test","password":"Str0ng!pass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token   string `json:"token"`
		Account struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"account"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tok-123" {
		t.Fatalf("unexpected token: %s", resp.Token)
	}
	if resp.Account.Role != domain.RoleVeterinarian {
		t.Fatalf("unexpected role: %s", resp.Account.Role)
	}

	if len(sink.events) != 1 || sink.events[0].Outcome != domain.AuditOutcomeSuccess {
		t.Fatalf("expected a success audit event, got %+v", sink.events)
	}
}

func TestAuthHandler_Register_WeakPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (string, *domain.Account, error) {
			return "", nil, &domain.WeakPasswordError{Notes: []string{"must include numbers", "must include symbols or special characters"}}
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthContext(t, "/api/auth/register", `{"email":"alice@clinic.test","password":"abcdefgh"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "password is too weak" {
		t.Fatalf("unexpected error: %s", resp.Error)
	}
	if len(resp.Details) != 2 {
		t.Fatalf("expected the unmet rules in details, got %v", resp.Details)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, string, string, string) (string, *domain.Account, error) {
			return "", nil, domain.ErrDuplicateAccount
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthContext(t, "/api/auth/register", `{"email":"alice@clinic.test","password":"Str0ng!pass"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, nil)

	cases := []struct {
		name string
		body string
	}{
		{"not json", `{{`},
		{"bad email", `{"email":"not-an-email","password":"Str0ng!pass"}`},
		{"short password", `{"email":"alice@clinic.test","password":"Ab1!"}`},
		{"bad role", `{"email":"alice@clinic.test","password":"Str0ng!pass","role":"janitor"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthContext(t, "/api/auth/register", tc.body)
			if err := h.Register(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.Account, error) {
			if email != "alice@clinic.test" || password != "Str0ng!pass" {
				t.Fatalf("unexpected args: %s", email)
			}
			return "tok-456", &domain.Account{ID: "acc-1", Email: email, Role: domain.RoleAdministrator, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"alice@clinic.test","password":"Str0ng!pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Token != "tok-456" {
		t.Fatalf("unexpected token: %s", resp.Token)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	sink := &stubAuditSink{}
	h := NewAuthHandler(stub, sink)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"alice@clinic.test","password":"wrong-pass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	if len(sink.events) != 1 || sink.events[0].Outcome != domain.AuditOutcomeFailure {
		t.Fatalf("expected a failure audit event, got %+v", sink.events)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.Account, error) {
			return "", nil, domain.ErrTooManyAttempts
		},
	}
	h := NewAuthHandler(stub, nil)

	c, rec := newAuthContext(t, "/api/auth/login", `{"email":"alice@clinic.test","password":"whatever1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
