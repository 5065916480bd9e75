package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/daybook-app/daybook-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes (user and admin share the same registration/login logic,
	// parameterized by role)
	r.Post("/api/auth/user/register", handlers.UserRegister)
	r.Post("/api/auth/user/login", handlers.UserLogin)
	r.Post("/api/auth/admin/register", handlers.AdminRegister)
	r.Post("/api/auth/admin/login", handlers.AdminLogin)
	r.Get("/api/auth/profile", handlers.GetProfile)

	// Admin routes
	r.Get("/api/admin/users", handlers.GetAllUsers)

	// Journal routes (all owner-scoped via the bearer token)
	r.Route("/api/journals", func(r chi.Router) {
		r.Post("/", handlers.CreateJournal)
		r.Get("/", handlers.GetJournals)
		r.Get("/word-frequency", handlers.GetWordFrequency)
		r.Get("/summaries", handlers.GetSummaries)
		r.Get("/by-category/{category}", handlers.GetJournalsByCategory)
		r.Get("/by-date/{date}", handlers.GetJournalsByDate)
		r.Get("/{id}", handlers.GetJournal)
		r.Put("/{id}", handlers.UpdateJournal)
		r.Delete("/{id}", handlers.DeleteJournal)
	})
}
