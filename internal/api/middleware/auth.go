package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/handicraft/inventory-api/internal/api/metrics"
	"github.com/handicraft/inventory-api/internal/core/domain"
	"github.com/handicraft/inventory-api/internal/core/ports"
)

const (
	// HeaderAuthToken is checked before Authorization.
	HeaderAuthToken = "x-auth-token"
	bearerPrefix    = "Bearer "

	// UserKey is the echo.Context key holding the *domain.AuthUser of an
	// authenticated request.
	UserKey = "user"

	msgMissingCredential = "No token, authorization denied"
	msgInvalidCredential = "Token is not valid"
)

type messageResponse struct {
	Msg string `json:"msg"`
}

// ExtractCredential returns the raw token from x-auth-token, falling back to
// an "Authorization: Bearer <token>" header. Any other scheme counts as absent.
func ExtractCredential(h http.Header) (string, error) {
	if token := h.Get(HeaderAuthToken); token != "" {
		return token, nil
	}
	if token, ok := strings.CutPrefix(h.Get(echo.HeaderAuthorization), bearerPrefix); ok && token != "" {
		return token, nil
	}
	return "", domain.ErrMissingCredential
}

// Auth guards the wrapped handlers. A request passes only with a credential
// the verifier accepts; the decoded identity is then stored under UserKey.
// Rejections are answered here with 401 and never reach next.
func Auth(verifier ports.TokenVerifier, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := ExtractCredential(c.Request().Header)
			if err != nil {
				return reject(c, log, "missing", msgMissingCredential)
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				return reject(c, log, "invalid", msgInvalidCredential)
			}

			user := claims.User
			c.Set(UserKey, &user)

			return next(c)
		}
	}
}

// UserFrom returns the identity attached by Auth.
func UserFrom(c echo.Context) (*domain.AuthUser, bool) {
	user, ok := c.Get(UserKey).(*domain.AuthUser)
	return user, ok && user != nil
}

func reject(c echo.Context, log zerolog.Logger, reason, msg string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()

	// The credential itself is never logged.
	log.Debug().
		Str("reason", reason).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request rejected by auth gate")

	return c.JSON(http.StatusUnauthorized, messageResponse{Msg: msg})
}
