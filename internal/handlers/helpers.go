package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/services"
	"github.com/daybook-app/daybook-backend/internal/store"
)

var (
	registry *services.AccountRegistry
	guard    *services.AuthGuard
	journals store.JournalStore

	validate = validator.New()
)

// Init wires the handler package to its services. Called once from main;
// tests call it with fakes.
func Init(reg *services.AccountRegistry, g *services.AuthGuard, js store.JournalStore) {
	registry = reg
	guard = g
	journals = js
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeServiceError translates business failures into HTTP statuses.
// Anything unrecognized is an internal error and gets logged without detail
// leaking to the client.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Not authorized to access this resource")
	case errors.Is(err, services.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "Session expired. Please log in again.")
	case errors.Is(err, services.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// requireAuth resolves the bearer token to an account. Writes the failure
// response itself and returns ok=false when the request is unauthenticated.
func requireAuth(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := guard.Resolve(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return user, true
}

// requireAdmin is requireAuth plus the ADMIN role gate.
func requireAdmin(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := guard.ResolveAdmin(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeServiceError(w, err)
		return nil, false
	}
	return user, true
}
