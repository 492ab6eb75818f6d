package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnshRaj112/wave-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CreateFolderRequest struct {
	Name string `json:"name"`
}

type FolderResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Folder  *services.FolderSummary `json:"folder,omitempty"`
}

type GetFoldersResponse struct {
	Success bool                     `json:"success"`
	Folders []services.FolderSummary `json:"folders"`
}

type GetFolderEntriesResponse struct {
	Success  bool                    `json:"success"`
	Folder   *services.FolderSummary `json:"folder,omitempty"`
	Journals []journalView           `json:"journals"`
}

// GetFolders lists folders in creation order.
func (h *Handler) GetFolders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GetFoldersResponse{
		Success: true,
		Folders: h.Store.ListFolders(),
	})
}

// CreateFolder adds an empty folder, as the compose screen's "Create New Folder" does.
func (h *Handler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var req CreateFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	folder, err := h.Store.CreateFolder(req.Name)
	if errors.Is(err, services.ErrFolderNameRequired) {
		writeError(w, http.StatusBadRequest, "Folder name is required")
		return
	}

	h.Log.Info().Str("folder_id", folder.ID.String()).Str("folder", folder.Name).Msg("folder created")
	writeJSON(w, http.StatusCreated, FolderResponse{
		Success: true,
		Message: "Folder created successfully",
		Folder:  &folder,
	})
}

// GetFolderEntries returns a folder's entries oldest first.
func (h *Handler) GetFolderEntries(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid folder id")
		return
	}

	folder, entries, err := h.Store.EntriesOf(id)
	if errors.Is(err, services.ErrFolderNotFound) {
		writeError(w, http.StatusNotFound, "Folder not found")
		return
	}

	writeJSON(w, http.StatusOK, GetFolderEntriesResponse{
		Success:  true,
		Folder:   &folder,
		Journals: toJournalViews(entries),
	})
}
