package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/AnshRaj112/wave-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UploadResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Kind    models.MediaKind `json:"kind,omitempty"`
	Ref     string           `json:"ref,omitempty"`
}

// UploadMedia resolves a file into a reference usable as an entry's video_ref.
func (h *Handler) UploadMedia(w http.ResponseWriter, r *http.Request) {
	if h.Media == nil {
		writeError(w, http.StatusServiceUnavailable, "Media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Upload exceeds the size limit")
			return
		}
		writeError(w, http.StatusBadRequest, "Failed to parse form")
		return
	}

	kind, err := models.ParseMediaKind(r.FormValue("kind"))
	if err != nil || kind == models.MediaNone {
		writeError(w, http.StatusBadRequest, "kind must be image or video")
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	ref, err := h.Media.Save(r.Context(), kind, fileHeader.Filename, file)
	if err != nil {
		h.Log.Error().Err(err).Str("kind", string(kind)).Msg("media upload failed")
		if errors.Is(err, services.ErrUnsupportedMedia) {
			writeError(w, http.StatusBadRequest, "Unsupported media kind")
			return
		}
		writeError(w, http.StatusBadGateway, "Failed to upload file")
		return
	}

	writeJSON(w, http.StatusCreated, UploadResponse{
		Success: true,
		Message: "File uploaded successfully",
		Kind:    kind,
		Ref:     ref,
	})
}

// GetJournalMedia serves an entry's attachment: image bytes inline, remote
// videos by redirect, local videos from the media directory.
func (h *Handler) GetJournalMedia(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid journal id")
		return
	}
	entry, err := h.Store.Entry(id)
	if errors.Is(err, services.ErrEntryNotFound) {
		writeError(w, http.StatusNotFound, "Journal not found")
		return
	}

	if data, ok := entry.Media.Image(); ok {
		w.Header().Set("Content-Type", http.DetectContentType(data))
		http.ServeContent(w, r, "", entry.CreatedAt, bytes.NewReader(data))
		return
	}

	ref, ok := entry.Media.VideoRef()
	if !ok {
		writeError(w, http.StatusNotFound, "Journal has no media")
		return
	}
	if u, err := url.Parse(ref); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		http.Redirect(w, r, ref, http.StatusFound)
		return
	}
	path, ok := h.localMediaPath(ref)
	if !ok {
		writeError(w, http.StatusNotFound, "Media not available")
		return
	}
	http.ServeFile(w, r, path)
}

// localMediaPath accepts ref only when it names a file inside LocalMediaDir.
func (h *Handler) localMediaPath(ref string) (string, bool) {
	if h.LocalMediaDir == "" {
		return "", false
	}
	path, err := filepath.Abs(ref)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(h.LocalMediaDir, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}
