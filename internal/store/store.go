// Package store holds the persistence layer: accounts in PostgreSQL and
// journal entries in MongoDB. Services depend on the interfaces here so tests
// can substitute in-memory fakes.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/daybook-app/daybook-backend/internal/models"
)

var (
	// ErrNotFound indicates the record does not exist or, for journal
	// entries, that it is not visible to the requesting owner.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail indicates an account with that email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountStore persists user and admin accounts.
type AccountStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	// List returns accounts in creation order (stable across calls).
	List(ctx context.Context, offset, limit int) ([]models.User, error)
	Count(ctx context.Context) (int, error)
}

// JournalUpdate carries the mutable fields of a journal entry.
type JournalUpdate struct {
	Title       string
	Content     string
	Category    string
	DateOfEntry time.Time
}

// JournalStore persists journal entries. Every operation is owner-scoped: an
// entry belonging to another owner behaves exactly as if it did not exist.
type JournalStore interface {
	Insert(ctx context.Context, entry *models.JournalEntry) error
	FindByID(ctx context.Context, ownerID, id string) (*models.JournalEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.JournalEntry, error)
	ListByOwnerYear(ctx context.Context, ownerID string, year int) ([]models.JournalEntry, error)
	ListByOwnerCategory(ctx context.Context, ownerID, category string) ([]models.JournalEntry, error)
	ListByOwnerDate(ctx context.Context, ownerID string, day time.Time) ([]models.JournalEntry, error)
	Update(ctx context.Context, ownerID, id string, upd JournalUpdate) (*models.JournalEntry, error)
	Delete(ctx context.Context, ownerID, id string) error
}
