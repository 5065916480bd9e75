package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// uniqueViolation is the Postgres error code for unique-constraint violations.
const uniqueViolation = "23505"

// PostgresAccountStore stores accounts in the users table.
type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

// Insert persists a new account. A unique-constraint violation on email is
// reported as ErrDuplicateEmail, so a registration that loses a race with a
// concurrent identical registration still surfaces the right failure.
func (s *PostgresAccountStore) Insert(ctx context.Context, user *models.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, created_at, first_name, last_name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, user.ID, user.CreatedAt, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.Role)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *PostgresAccountStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, `
		SELECT id, created_at, first_name, last_name, email, password_hash, role
		FROM users WHERE email = $1
	`, email)
}

func (s *PostgresAccountStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.findOne(ctx, `
		SELECT id, created_at, first_name, last_name, email, password_hash, role
		FROM users WHERE id = $1
	`, parsedID)
}

func (s *PostgresAccountStore) findOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.CreatedAt, &user.FirstName, &user.LastName,
		&user.Email, &user.PasswordHash, &user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List returns accounts ordered by creation time (id breaks ties so the
// ordering is deterministic for pagination).
func (s *PostgresAccountStore) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, first_name, last_name, email, password_hash, role
		FROM users
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2
	`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID, &user.CreatedAt, &user.FirstName, &user.LastName,
			&user.Email, &user.PasswordHash, &user.Role,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *PostgresAccountStore) Count(ctx context.Context) (int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}
