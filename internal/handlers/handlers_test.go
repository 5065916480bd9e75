package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/daybook-app/daybook-backend/internal/handlers"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/routes"
	"github.com/daybook-app/daybook-backend/internal/services"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// fakeAccountStore is an in-memory AccountStore preserving insertion order.
type fakeAccountStore struct {
	mu    sync.Mutex
	users []models.User
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

// fakeJournalStore is an in-memory JournalStore with owner-scoped lookups.
type fakeJournalStore struct {
	mu      sync.Mutex
	entries []models.JournalEntry
}

func (f *fakeJournalStore) Insert(_ context.Context, entry *models.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeJournalStore) FindByID(_ context.Context, ownerID, id string) (*models.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID.Hex() == id && f.entries[i].OwnerID == ownerID {
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeJournalStore) ListByOwner(_ context.Context, ownerID string) ([]models.JournalEntry, error) {
	return f.filter(func(e models.JournalEntry) bool { return e.OwnerID == ownerID }), nil
}

func (f *fakeJournalStore) ListByOwnerYear(_ context.Context, ownerID string, year int) ([]models.JournalEntry, error) {
	return f.filter(func(e models.JournalEntry) bool {
		return e.OwnerID == ownerID && e.DateOfEntry.Year() == year
	}), nil
}

func (f *fakeJournalStore) ListByOwnerCategory(_ context.Context, ownerID, category string) ([]models.JournalEntry, error) {
	return f.filter(func(e models.JournalEntry) bool {
		return e.OwnerID == ownerID && e.Category == category
	}), nil
}

func (f *fakeJournalStore) ListByOwnerDate(_ context.Context, ownerID string, day time.Time) ([]models.JournalEntry, error) {
	date := day.Format("2006-01-02")
	return f.filter(func(e models.JournalEntry) bool {
		return e.OwnerID == ownerID && e.DateOfEntry.Format("2006-01-02") == date
	}), nil
}

func (f *fakeJournalStore) filter(keep func(models.JournalEntry) bool) []models.JournalEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.JournalEntry, 0)
	for _, entry := range f.entries {
		if keep(entry) {
			out = append(out, entry)
		}
	}
	return out
}

func (f *fakeJournalStore) Update(_ context.Context, ownerID, id string, upd store.JournalUpdate) (*models.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID.Hex() == id && f.entries[i].OwnerID == ownerID {
			f.entries[i].Title = upd.Title
			f.entries[i].Content = upd.Content
			f.entries[i].Category = upd.Category
			f.entries[i].DateOfEntry = upd.DateOfEntry
			f.entries[i].UpdatedAt = time.Now()
			entry := f.entries[i]
			return &entry, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeJournalStore) Delete(_ context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID.Hex() == id && f.entries[i].OwnerID == ownerID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// newTestRouter wires the handler package to fresh fakes and returns the
// full route table.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	accounts := &fakeAccountStore{}
	journals := &fakeJournalStore{}
	tokens := services.NewTokenService(services.TokenConfig{Secret: "test-secret"})
	registry := services.NewAccountRegistry(accounts, tokens)
	guard := services.NewAuthGuard(tokens, accounts)
	handlers.Init(registry, guard, journals)

	r := chi.NewRouter()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func registerAndLogin(t *testing.T, router http.Handler, kind, email string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/"+kind+"/register", "", map[string]string{
		"first_name": "Test",
		"last_name":  "Account",
		"email":      email,
		"password":   "correct horse battery",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/auth/"+kind+"/login", "", map[string]string{
		"email":    email,
		"password": "correct horse battery",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, _ := decodeBody(t, rec)["token"].(string)
	require.NotEmpty(t, token)
	return token
}
