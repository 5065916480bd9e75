package handlers

import (
	"net/http"
	"strconv"

	"github.com/daybook-app/daybook-backend/internal/models"
)

// UserListResponse is the paged account listing returned to admins.
type UserListResponse struct {
	Success  bool                   `json:"success"`
	Message  string                 `json:"message,omitempty"`
	Data     []models.User          `json:"data"`
	Metadata map[string]interface{} `json:"metadata"`
}

// GetAllUsers returns a page of accounts in creation order. ADMIN-only.
func GetAllUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireAdmin(w, r); !ok {
		return
	}

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if parsed, err := strconv.Atoi(pageStr); err == nil && parsed > 0 {
			page = parsed
		}
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	users, total, err := registry.ListPaged(r.Context(), page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, UserListResponse{
		Success: true,
		Message: "Users retrieved successfully",
		Data:    users,
		Metadata: map[string]interface{}{
			"page":        page,
			"limit":       limit,
			"total_users": total,
		},
	})
}
