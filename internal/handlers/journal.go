package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/daybook-app/daybook-backend/internal/analysis"
	"github.com/daybook-app/daybook-backend/internal/models"
	"github.com/daybook-app/daybook-backend/internal/store"
)

// JournalRequest is the create/update payload for a journal entry.
type JournalRequest struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content" validate:"required"`
	Category    string `json:"journal_category" validate:"required"`
	DateOfEntry string `json:"date_of_entry" validate:"required"`
}

type JournalResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message,omitempty"`
	Journal *models.JournalEntry `json:"journal,omitempty"`
}

type JournalListResponse struct {
	Success  bool                  `json:"success"`
	Message  string                `json:"message,omitempty"`
	Journals []models.JournalEntry `json:"journals"`
	Total    int                   `json:"total"`
}

// parseJournalRequest decodes and validates the payload, including the
// category enum and the no-future-dates rule.
func parseJournalRequest(r *http.Request) (*JournalRequest, time.Time, string) {
	var req JournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, time.Time{}, "Invalid request body"
	}
	if err := validate.Struct(req); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return nil, time.Time{}, "Title, content, journal_category, and date_of_entry are required"
		}
		return nil, time.Time{}, "Invalid request body"
	}
	if !analysis.ValidCategory(req.Category) {
		return nil, time.Time{}, "Invalid category. Must be one of: Personal, Work, Travel, Health, Social"
	}

	date, err := parseEntryDate(req.DateOfEntry)
	if err != nil {
		return nil, time.Time{}, "Invalid date_of_entry. Use YYYY-MM-DD"
	}
	if date.After(time.Now()) {
		return nil, time.Time{}, "date_of_entry cannot be in the future"
	}
	return &req, date, ""
}

func parseEntryDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateJournal creates a journal entry for the authenticated user. The owner
// always comes from the token, never from the body.
func CreateJournal(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	req, date, problem := parseJournalRequest(r)
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	now := time.Now()
	entry := &models.JournalEntry{
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     user.ID.String(),
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		DateOfEntry: date,
	}

	if err := journals.Insert(r.Context(), entry); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, JournalResponse{
		Success: true,
		Message: "Journal created successfully",
		Journal: entry,
	})
}

// GetJournals returns the authenticated user's entries, optionally filtered
// by ?year=.
func GetJournals(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	var (
		entries []models.JournalEntry
		err     error
	)
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, parseErr := strconv.Atoi(yearStr)
		if parseErr != nil {
			writeError(w, http.StatusBadRequest, "Invalid year")
			return
		}
		entries, err = journals.ListByOwnerYear(r.Context(), user.ID.String(), year)
	} else {
		entries, err = journals.ListByOwner(r.Context(), user.ID.String())
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalListResponse{
		Success:  true,
		Journals: entries,
		Total:    len(entries),
	})
}

// GetJournal returns a single entry. Entries owned by someone else come back
// as 404, same as entries that don't exist.
func GetJournal(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	entry, err := journals.FindByID(r.Context(), user.ID.String(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{Success: true, Journal: entry})
}

// UpdateJournal replaces the mutable fields of one of the user's entries.
func UpdateJournal(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	req, date, problem := parseJournalRequest(r)
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return
	}

	entry, err := journals.Update(r.Context(), user.ID.String(), chi.URLParam(r, "id"), store.JournalUpdate{
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		DateOfEntry: date,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalResponse{
		Success: true,
		Message: "Journal updated successfully",
		Journal: entry,
	})
}

// DeleteJournal removes one of the user's entries.
func DeleteJournal(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	if err := journals.Delete(r.Context(), user.ID.String(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Journal deleted successfully",
	})
}

// GetJournalsByCategory returns the user's entries in one category.
func GetJournalsByCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	category := chi.URLParam(r, "category")
	if !analysis.ValidCategory(category) {
		writeError(w, http.StatusBadRequest, "Invalid category. Must be one of: Personal, Work, Travel, Health, Social")
		return
	}

	entries, err := journals.ListByOwnerCategory(r.Context(), user.ID.String(), category)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalListResponse{
		Success:  true,
		Journals: entries,
		Total:    len(entries),
	})
}

// GetJournalsByDate returns the user's entries for one calendar day.
func GetJournalsByDate(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	day, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date. Use YYYY-MM-DD")
		return
	}

	entries, err := journals.ListByOwnerDate(r.Context(), user.ID.String(), day)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, JournalListResponse{
		Success:  true,
		Journals: entries,
		Total:    len(entries),
	})
}

// GetWordFrequency returns the top words across all of the user's entries.
func GetWordFrequency(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	entries, err := journals.ListByOwner(r.Context(), user.ID.String())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":        true,
		"word_frequency": analysis.WordFrequency(entries),
	})
}

// GetSummaries returns the descriptive summary over the user's entries.
func GetSummaries(w http.ResponseWriter, r *http.Request) {
	user, ok := requireAuth(w, r)
	if !ok {
		return
	}

	entries, err := journals.ListByOwner(r.Context(), user.ID.String())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"summary": analysis.Summarize(entries),
	})
}
