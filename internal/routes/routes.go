package routes

import (
	"github.com/AnshRaj112/wave-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r chi.Router, h *handlers.Handler) {
	// Compose and display screens
	r.Get("/api/journals/defaults", h.JournalDefaults)
	r.Post("/api/journals", h.CreateJournal)
	r.Get("/api/journals/recent", h.GetRecentJournals)
	r.Get("/api/journals/{id}", h.GetJournal)
	r.Get("/api/journals/{id}/media", h.GetJournalMedia)

	// Folders
	r.Get("/api/folders", h.GetFolders)
	r.Post("/api/folders", h.CreateFolder)
	r.Get("/api/folders/{id}/entries", h.GetFolderEntries)

	// Media resolution
	r.Post("/api/media", h.UploadMedia)

	// Profile
	r.Get("/api/profile", h.GetProfile)
	r.Put("/api/profile", h.UpdateProfile)

	// Change notifications for display screens
	r.Get("/ws/journal", h.JournalWebSocket)
}
