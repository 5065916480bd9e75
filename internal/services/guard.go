package services

import (
	"context"
	"errors"
	"strings"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// AuthGuard resolves "Authorization: Bearer <token>" headers to accounts.
// Every protected handler goes through Resolve before touching any data.
type AuthGuard struct {
	tokens   *TokenService
	accounts store.AccountStore
}

func NewAuthGuard(tokens *TokenService, accounts store.AccountStore) *AuthGuard {
	return &AuthGuard{tokens: tokens, accounts: accounts}
}

// ExtractBearerToken pulls the token out of an Authorization header value.
// Returns "" when the header doesn't follow the Bearer convention.
func ExtractBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// Resolve verifies the bearer token and loads the account it refers to.
// A bad token and a token for a deleted account both come back as
// ErrUnauthenticated, so the caller can't tell them apart.
func (g *AuthGuard) Resolve(ctx context.Context, authorizationHeader string) (*models.User, error) {
	token := ExtractBearerToken(authorizationHeader)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	subjectID, _, err := g.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			// Preserved so the boundary can show "expired, log in again".
			return nil, ErrTokenExpired
		}
		return nil, ErrUnauthenticated
	}

	user, err := g.accounts.FindByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// ResolveAdmin is Resolve plus an ADMIN role check.
func (g *AuthGuard) ResolveAdmin(ctx context.Context, authorizationHeader string) (*models.User, error) {
	user, err := g.Resolve(ctx, authorizationHeader)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin {
		return nil, ErrForbidden
	}
	return user, nil
}
