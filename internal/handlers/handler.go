package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/AnshRaj112/wave-backend/internal/services"
	"github.com/rs/zerolog"
)

// Deps are the collaborators every handler shares. One EntryStore is owned
// by the process root and passed in here.
type Deps struct {
	Store          *services.EntryStore
	Profiles       *services.ProfileStore
	Media          services.MediaStore
	Hub            *services.Hub
	Log            zerolog.Logger
	LocalMediaDir  string // videos with a local ref are served only from here
	AllowedOrigins []string
	MaxUploadBytes int64
	RecentLimit    int
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	if d.RecentLimit <= 0 {
		d.RecentLimit = models.DefaultRecentLimit
	}
	if d.MaxUploadBytes <= 0 {
		d.MaxUploadBytes = 10 << 20
	}
	return &Handler{Deps: d}
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func (h *Handler) originAllowed(r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}
	for _, a := range h.AllowedOrigins {
		if strings.EqualFold(strings.TrimSpace(a), origin) {
			return true
		}
	}
	return false
}
