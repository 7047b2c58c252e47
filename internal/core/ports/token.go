package ports

import "github.com/handicraft/inventory-api/internal/core/domain"

// TokenVerifier checks a raw credential and returns its decoded claims.
// Implementations must be safe for concurrent use and must not block.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// TokenIssuer signs a credential for an authenticated user.
type TokenIssuer interface {
	Issue(user domain.AuthUser) (string, error)
}
