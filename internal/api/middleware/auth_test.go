package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/service"
)

func newVerifier(t *testing.T, secret string) *service.TokenService {
	t.Helper()
	svc, err := service.NewTokenService(secret, time.Hour)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return svc
}

func issue(t *testing.T, secret, userID string) string {
	t.Helper()
	token, err := newVerifier(t, secret).Issue(domain.AuthUser{ID: userID})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

// serve runs the gate over a request carrying headers and reports whether
// the downstream handler ran and with which identity.
func serve(t *testing.T, secret string, headers map[string]string) (*httptest.ResponseRecorder, *domain.AuthUser, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		called bool
		seen   *domain.AuthUser
	)
	handler := Auth(newVerifier(t, secret), zerolog.Nop())(func(c echo.Context) error {
		called = true
		seen, _ = UserFrom(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, seen, called
}

func assertRejected(t *testing.T, rec *httptest.ResponseRecorder, called bool, wantMsg string) {
	t.Helper()
	if called {
		t.Fatalf("next must not be called on rejection")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(body) != 1 || body["msg"] != wantMsg {
		t.Fatalf("expected {msg: %q}, got %v", wantMsg, body)
	}
}

func TestAuth_XAuthToken(t *testing.T) {
	rec, user, called := serve(t, "S1", map[string]string{"x-auth-token": issue(t, "S1", "u1")})

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got called=%v code=%d", called, rec.Code)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("expected user u1, got %+v", user)
	}
}

func TestAuth_BearerToken(t *testing.T) {
	rec, user, called := serve(t, "S1", map[string]string{"Authorization": "Bearer " + issue(t, "S1", "u1")})

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through, got called=%v code=%d", called, rec.Code)
	}
	if user == nil || user.ID != "u1" {
		t.Fatalf("expected user u1, got %+v", user)
	}
}

func TestAuth_XAuthTokenTakesPrecedence(t *testing.T) {
	_, user, called := serve(t, "S1", map[string]string{
		"x-auth-token":  issue(t, "S1", "from-x-auth"),
		"Authorization": "Bearer " + issue(t, "S1", "from-bearer"),
	})
	if !called || user == nil || user.ID != "from-x-auth" {
		t.Fatalf("expected x-auth-token identity, got %+v", user)
	}

	// An invalid x-auth-token is not rescued by a valid bearer token.
	rec, _, called := serve(t, "S1", map[string]string{
		"x-auth-token":  "garbage",
		"Authorization": "Bearer " + issue(t, "S1", "from-bearer"),
	})
	assertRejected(t, rec, called, "Token is not valid")
}

func TestAuth_MissingCredential(t *testing.T) {
	rec, _, called := serve(t, "S1", nil)
	assertRejected(t, rec, called, "No token, authorization denied")
}

func TestAuth_WrongScheme(t *testing.T) {
	for _, header := range []string{"Basic abc123", "bearer abc123", "Bearer", "Bearer "} {
		t.Run(header, func(t *testing.T) {
			rec, _, called := serve(t, "S1", map[string]string{"Authorization": header})
			assertRejected(t, rec, called, "No token, authorization denied")
		})
	}
}

func TestAuth_WrongSecret(t *testing.T) {
	token := issue(t, "S1", "u1")

	_, user, called := serve(t, "S1", map[string]string{"x-auth-token": token})
	if !called || user.ID != "u1" {
		t.Fatalf("expected success with S1, got %+v", user)
	}

	rec, _, called := serve(t, "S2", map[string]string{"x-auth-token": token})
	assertRejected(t, rec, called, "Token is not valid")
}

func TestAuth_ExpiredToken(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]any{"id": "u1"},
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("S1"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	rec, _, called := serve(t, "S1", map[string]string{"Authorization": "Bearer " + expired})
	assertRejected(t, rec, called, "Token is not valid")
}

func TestAuth_MalformedToken(t *testing.T) {
	rec, _, called := serve(t, "S1", map[string]string{"Authorization": "Bearer not-a-token"})
	assertRejected(t, rec, called, "Token is not valid")
}

func TestAuth_RepeatedRequestsSucceed(t *testing.T) {
	token := issue(t, "S1", "u1")
	for i := 0; i < 3; i++ {
		rec, user, called := serve(t, "S1", map[string]string{"x-auth-token": token})
		if !called || rec.Code != http.StatusOK || user.ID != "u1" {
			t.Fatalf("attempt %d: called=%v code=%d user=%+v", i, called, rec.Code, user)
		}
	}
}

func TestExtractCredential(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
		wantErr error
	}{
		{"x-auth-token verbatim", map[string]string{"X-Auth-Token": "Bearer abc"}, "Bearer abc", nil},
		{"bearer", map[string]string{"Authorization": "Bearer abc"}, "abc", nil},
		{"empty x-auth-token falls back", map[string]string{"X-Auth-Token": "", "Authorization": "Bearer abc"}, "abc", nil},
		{"basic", map[string]string{"Authorization": "Basic abc123"}, "", domain.ErrMissingCredential},
		{"none", nil, "", domain.ErrMissingCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			got, err := ExtractCredential(h)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected err %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestUserFrom_Unauthenticated(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if _, ok := UserFrom(c); ok {
		t.Fatalf("expected no user before the gate runs")
	}
}
