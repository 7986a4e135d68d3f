package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func validClaims(role any) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":         "7",
		"unique_name": "alice",
		"role":        role,
		"iat":         now.Unix(),
		"nbf":         now.Unix(),
		"exp":         now.Add(time.Hour).Unix(),
	}
}

func expectStatus(t *testing.T, err error, code int) {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError with %d, got %v", code, err)
	}
	if he.Code != code {
		t.Fatalf("expected %d, got %d", code, he.Code)
	}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e := echo.New()
	signed := signToken(t, jwt.SigningMethodHS256, "secret", validClaims("admin"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Authenticate("secret")(func(c echo.Context) error {
		called = true
		if c.Get(ContextKeyUserID) != "7" {
			t.Fatalf("user id not set")
		}
		if c.Get(ContextKeyUserName) != "alice" {
			t.Fatalf("user name not set")
		}
		roles, _ := c.Get(ContextKeyRoles).([]string)
		if len(roles) != 1 || roles[0] != "admin" {
			t.Fatalf("roles not set: %v", roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_RoleList(t *testing.T) {
	e := echo.New()
	signed := signToken(t, jwt.SigningMethodHS256, "secret", validClaims([]string{"customer", "admin"}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+signed)
	c := e.NewContext(req, httptest.NewRecorder())

	var roles []string
	handler := Authenticate("secret")(func(c echo.Context) error {
		roles, _ = c.Get(ContextKeyRoles).([]string)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(roles) != 2 || roles[1] != "admin" {
		t.Fatalf("expected both roles, got %v", roles)
	}
}

func TestAuthenticate_Rejects(t *testing.T) {
	expired := validClaims("admin")
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	noExpiry := validClaims("admin")
	delete(noExpiry, "exp")

	notYet := validClaims("admin")
	notYet["nbf"] = time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + signToken(t, jwt.SigningMethodHS256, "other", validClaims("admin"))},
		{"wrong algorithm", "Bearer " + signToken(t, jwt.SigningMethodHS512, "secret", validClaims("admin"))},
		{"expired", "Bearer " + signToken(t, jwt.SigningMethodHS256, "secret", expired)},
		{"no expiry", "Bearer " + signToken(t, jwt.SigningMethodHS256, "secret", noExpiry)},
		{"not yet valid", "Bearer " + signToken(t, jwt.SigningMethodHS256, "secret", notYet)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			handler := Authenticate("secret")(func(c echo.Context) error {
				t.Fatalf("next should not be called")
				return nil
			})
			expectStatus(t, handler(c), http.StatusUnauthorized)
		})
	}
}
