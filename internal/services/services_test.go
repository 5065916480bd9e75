package services

import (
	"context"
	"sync"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// fakeAccountStore is an in-memory AccountStore preserving insertion order.
type fakeAccountStore struct {
	mu    sync.Mutex
	users []models.User
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{}
}

func (f *fakeAccountStore) Insert(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeAccountStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccountStore) FindByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID.String() == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccountStore) List(_ context.Context, offset, limit int) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if offset >= len(f.users) {
		return []models.User{}, nil
	}
	end := offset + limit
	if end > len(f.users) {
		end = len(f.users)
	}
	page := make([]models.User, end-offset)
	copy(page, f.users[offset:end])
	return page, nil
}

func (f *fakeAccountStore) Count(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users), nil
}

func (f *fakeAccountStore) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID.String() == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return
		}
	}
}
