package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/handicraft/inventory-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the wire shape of a credential payload: {"user": {...}, "exp", "iat"}.
type tokenClaims struct {
	User *domain.AuthUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS256 credentials with a shared secret.
// It holds no mutable state and is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a TokenService bound to secret. An empty secret is
// rejected so a misconfigured process fails at startup instead of per request.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token service: secret is required")
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a credential carrying user under the "user" claim.
func (s *TokenService) Issue(user domain.AuthUser) (string, error) {
	if user.ID == "" {
		return "", errors.New("issue token: user id is required")
	}

	now := s.now()
	claims := tokenClaims{
		User: &user,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of raw and decodes its claims.
// Every failure, whatever the cause, is reported as ErrInvalidCredential.
func (s *TokenService) Verify(raw string) (*domain.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCredential, err)
	}

	if claims.User == nil || claims.User.ID == "" {
		return nil, fmt.Errorf("%w: missing user claim", domain.ErrInvalidCredential)
	}

	out := &domain.Claims{User: *claims.User}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}

func (s *TokenService) keyFunc(_ *jwt.Token) (any, error) {
	return s.secret, nil
}
