package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// RegisterRequest is the signup payload shared by user and admin registration.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the signin payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
	Role    models.Role  `json:"role,omitempty"`
}

// UserRegister handles user registration
func UserRegister(w http.ResponseWriter, r *http.Request) {
	register(w, r, models.RoleUser)
}

// AdminRegister handles admin registration
func AdminRegister(w http.ResponseWriter, r *http.Request) {
	register(w, r, models.RoleAdmin)
}

// register is the single registration routine; user and admin signup differ
// only in the role recorded on the account.
func register(w http.ResponseWriter, r *http.Request, role models.Role) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "First name, last name, a valid email, and a password of at least 8 characters are required")
		return
	}

	user, err := registry.Register(r.Context(), role, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success: true,
		Message: "Account created successfully",
		User:    user,
	})
}

// UserLogin handles user login
func UserLogin(w http.ResponseWriter, r *http.Request) {
	login(w, r, false)
}

// AdminLogin handles admin login; non-admin credentials are rejected with 403.
func AdminLogin(w http.ResponseWriter, r *http.Request) {
	login(w, r, true)
}

func login(w http.ResponseWriter, r *http.Request, adminOnly bool) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	authenticate := registry.Authenticate
	if adminOnly {
		authenticate = registry.AuthenticateAdmin
	}

	token, user, err := authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		Role:    user.Role,
	})
}

// GetProfile returns the authenticated account's profile.
func GetProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile retrieved successfully",
		"user":    user,
	})
}
