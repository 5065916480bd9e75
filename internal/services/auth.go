package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
	"github.com/daybook-app/daybook-backend/pkg/utils"
)

// AccountRegistry creates and authenticates accounts. User and admin
// registration run through the same routine parameterized by role.
type AccountRegistry struct {
	accounts store.AccountStore
	tokens   *TokenService
}

func NewAccountRegistry(accounts store.AccountStore, tokens *TokenService) *AccountRegistry {
	return &AccountRegistry{accounts: accounts, tokens: tokens}
}

// Register creates an account with the given role. The email pre-check and
// the unique index both report store.ErrDuplicateEmail, so a concurrent
// registration racing past the pre-check still fails cleanly at insert.
func (r *AccountRegistry) Register(ctx context.Context, role models.Role, firstName, lastName, email, password string) (*models.User, error) {
	if _, err := r.accounts.FindByEmail(ctx, email); err == nil {
		return nil, store.ErrDuplicateEmail
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		CreatedAt:    time.Now(),
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := r.accounts.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and issues a token embedding the
// account's id and role. Unknown email and wrong password yield the same
// ErrInvalidCredentials.
func (r *AccountRegistry) Authenticate(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := r.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !utils.VerifyPassword(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := r.tokens.Issue(user.ID.String(), user.Role, r.tokens.TTL())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// AuthenticateAdmin is Authenticate plus an ADMIN role requirement.
func (r *AccountRegistry) AuthenticateAdmin(ctx context.Context, email, password string) (string, *models.User, error) {
	token, user, err := r.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	if user.Role != models.RoleAdmin {
		return "", nil, ErrForbidden
	}
	return token, user, nil
}

// ListPaged returns one page of accounts in creation order plus the total
// count. page starts at 1; limit is clamped to [1,100].
func (r *AccountRegistry) ListPaged(ctx context.Context, page, limit int) ([]models.User, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	total, err := r.accounts.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	users, err := r.accounts.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
