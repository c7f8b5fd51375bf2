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

	"github.com/patitas/shelter-api/internal/api/middleware"
	"github.com/patitas/shelter-api/internal/core/domain"
	"github.com/patitas/shelter-api/internal/core/ports"
	"github.com/patitas/shelter-api/internal/infrastructure/session"
)

type stubAuthService struct {
	emailExistsFn func(ctx context.Context, email string) (bool, error)
	registerFn    func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn       func(ctx context.Context, email, password string) (*domain.SessionIdentity, error)
}

func (s *stubAuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	if s.emailExistsFn == nil {
		return false, nil
	}
	return s.emailExistsFn(ctx, email)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.SessionIdentity, error) {
	return s.loginFn(ctx, email, password)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

const registerBody = `{
	"nombre": "Ana",
	"apellido_paterno": "García",
	"apellido_materno": "López",
	"calle": "Av. Reforma 1",
	"colonia": "Centro",
	"ciudad": "CDMX",
	"codigo_postal": "06000",
	"telefono": "5512345678",
	"correo": "ana@example.com",
	"password": "s3cret"
}`

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	res := rec.Result()
	defer res.Body.Close()
	for _, cookie := range res.Cookies() {
		if cookie.Name == middleware.CookieName {
			return cookie
		}
	}
	t.Fatalf("expected %s cookie", middleware.CookieName)
	return nil
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	store := session.NewMemoryStore(time.Hour)
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "ana@example.com" || input.Password != "s3cret" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "user_1", Name: input.Name, Email: input.Email, Active: true}, nil
		},
	}
	h := NewAuthHandler(stub, store, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

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
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["correo"] != "ana@example.com" || user["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", user)
	}

	// Registration logs the new user in.
	cookie := sessionCookie(t, rec)
	identity, err := store.Get(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if identity.ID != "user_1" || identity.Role != domain.RoleUser {
		t.Fatalf("unexpected session identity: %+v", identity)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		emailExistsFn: func(ctx context.Context, email string) (bool, error) { return true, nil },
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("Register must not be called for a taken email")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, session.NewMemoryStore(time.Hour), time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(registerBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("Register must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, session.NewMemoryStore(time.Hour), time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"correo":"ana@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	store := session.NewMemoryStore(time.Hour)
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.SessionIdentity, error) {
			if email != "ana@example.com" || password != "s3cret" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return &domain.SessionIdentity{ID: "user_1", Name: "Ana", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, store, time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"correo":"ana@example.com","password":"s3cret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cookie := sessionCookie(t, rec)
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}
	if cookie.MaxAge != int(time.Hour.Seconds()) {
		t.Fatalf("unexpected cookie max-age: %d", cookie.MaxAge)
	}
	if _, err := store.Get(context.Background(), cookie.Value); err != nil {
		t.Fatalf("session not stored: %v", err)
	}
}

func TestAuthHandler_Login_UniformFailure(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.SessionIdentity, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, session.NewMemoryStore(time.Hour), time.Hour)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"correo":"nobody@example.com","password":"wrong"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "incorrect email or password" {
		t.Fatalf("unexpected error body: %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newTestEcho()
	store := session.NewMemoryStore(time.Hour)
	token, err := store.Create(context.Background(), domain.SessionIdentity{ID: "user_1", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	h := NewAuthHandler(&stubAuthService{}, store, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %s", loc)
	}

	if _, err := store.Get(context.Background(), token); err != domain.ErrSessionNotFound {
		t.Fatalf("expected session to be revoked, got %v", err)
	}
	if cookie := sessionCookie(t, rec); cookie.MaxAge >= 0 {
		t.Fatalf("expected cookie to be cleared, max-age %d", cookie.MaxAge)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, session.NewMemoryStore(time.Hour), time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetIdentity(c, domain.SessionIdentity{ID: "user_1", Name: "Ana", Email: "ana@example.com", Role: domain.RoleUser})

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"correo":"ana@example.com"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_NoSession(t *testing.T) {
	e := newTestEcho()
	h := NewAuthHandler(&stubAuthService{}, session.NewMemoryStore(time.Hour), time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
