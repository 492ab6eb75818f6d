package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/AnshRaj112/wave-backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const multipartMemory = 8 << 20

var errBothMedia = errors.New("attach either an image or a video, not both")

type CreateJournalRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Folder   string `json:"folder"`
	Image    []byte `json:"image,omitempty"` // base64 in JSON
	VideoRef string `json:"video_ref,omitempty"`
}

type CreateJournalResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Journal *journalView            `json:"journal,omitempty"`
	Folder  *services.FolderSummary `json:"folder,omitempty"`
}

type GetJournalsResponse struct {
	Success  bool          `json:"success"`
	Message  string        `json:"message,omitempty"`
	Journals []journalView `json:"journals"`
	Total    int           `json:"total"`
}

type GetJournalResponse struct {
	Success bool         `json:"success"`
	Journal *journalView `json:"journal,omitempty"`
}

type DefaultsResponse struct {
	Success     bool   `json:"success"`
	Title       string `json:"title"`
	Folder      string `json:"folder"`
	RecentLimit int    `json:"recent_limit"`
}

// JournalDefaults returns the values the compose screen starts from.
func (h *Handler) JournalDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DefaultsResponse{
		Success:     true,
		Title:       models.DefaultEntryTitle,
		Folder:      models.DefaultFolderName,
		RecentLimit: h.RecentLimit,
	})
}

// CreateJournal commits a new entry. It accepts JSON with an optional
// base64 image or a video reference, or a multipart form carrying an
// image or video file.
func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)

	var (
		req   CreateJournalRequest
		media models.Media
		err   error
	)
	if isMultipart(r) {
		req, media, err = h.parseMultipartJournal(r)
	} else {
		req, media, err = parseJSONJournal(r)
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		var upErr *uploadError
		switch {
		case errors.As(err, &maxErr):
			writeError(w, http.StatusRequestEntityTooLarge, "Upload exceeds the size limit")
		case errors.Is(err, errBothMedia):
			writeError(w, http.StatusBadRequest, "Attach either an image or a video, not both")
		case errors.As(err, &upErr):
			h.Log.Error().Err(err).Msg("failed to store journal video")
			writeError(w, http.StatusBadGateway, "Failed to store attachment")
		default:
			writeError(w, http.StatusBadRequest, "Invalid request body")
		}
		return
	}

	entry, folder := h.Store.CommitEntry(req.Title, req.Content, media, req.Folder)
	h.Log.Info().
		Str("entry_id", entry.ID.String()).
		Str("folder", folder.Name).
		Str("media", string(entry.Media.Kind())).
		Msg("journal entry committed")

	view := toJournalView(entry)
	writeJSON(w, http.StatusCreated, CreateJournalResponse{
		Success: true,
		Message: "Journal created successfully",
		Journal: &view,
		Folder:  &folder,
	})
}

func parseJSONJournal(r *http.Request) (CreateJournalRequest, models.Media, error) {
	var req CreateJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, models.Media{}, err
	}
	if len(req.Image) > 0 && req.VideoRef != "" {
		return req, models.Media{}, errBothMedia
	}
	if len(req.Image) > 0 {
		return req, models.ImageMedia(req.Image), nil
	}
	return req, models.VideoMedia(req.VideoRef), nil
}

// uploadError marks a media store failure, as opposed to a bad request.
type uploadError struct{ err error }

func (e *uploadError) Error() string { return e.err.Error() }
func (e *uploadError) Unwrap() error { return e.err }

func (h *Handler) parseMultipartJournal(r *http.Request) (CreateJournalRequest, models.Media, error) {
	var req CreateJournalRequest
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return req, models.Media{}, err
	}
	req.Title = r.FormValue("title")
	req.Content = r.FormValue("content")
	req.Folder = r.FormValue("folder")

	image, imageHeader, imgErr := r.FormFile("image")
	video, videoHeader, vidErr := r.FormFile("video")
	for _, f := range []multipart.File{image, video} {
		if f != nil {
			defer f.Close()
		}
	}
	if imgErr != nil && !errors.Is(imgErr, http.ErrMissingFile) {
		return req, models.Media{}, imgErr
	}
	if vidErr != nil && !errors.Is(vidErr, http.ErrMissingFile) {
		return req, models.Media{}, vidErr
	}
	if imageHeader != nil && videoHeader != nil {
		return req, models.Media{}, errBothMedia
	}

	switch {
	case imageHeader != nil:
		data, err := io.ReadAll(image)
		if err != nil {
			return req, models.Media{}, err
		}
		return req, models.ImageMedia(data), nil
	case videoHeader != nil:
		if h.Media == nil {
			return req, models.Media{}, &uploadError{err: errors.New("no media store configured")}
		}
		ref, err := h.Media.Save(r.Context(), models.MediaVideo, videoHeader.Filename, video)
		if err != nil {
			return req, models.Media{}, &uploadError{err: err}
		}
		return req, models.VideoMedia(ref), nil
	}
	return req, models.NoMedia(), nil
}

// GetRecentJournals returns the newest entries first, like the profile screen's recents tab.
func (h *Handler) GetRecentJournals(w http.ResponseWriter, r *http.Request) {
	limit := h.RecentLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	entries := h.Store.MostRecent(limit)
	writeJSON(w, http.StatusOK, GetJournalsResponse{
		Success:  true,
		Journals: toJournalViews(entries),
		Total:    h.Store.Len(),
	})
}

// GetJournal returns a single entry for the detail screen.
func (h *Handler) GetJournal(w http.ResponseWriter, r *http.Request) {
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

	view := toJournalView(entry)
	writeJSON(w, http.StatusOK, GetJournalResponse{Success: true, Journal: &view})
}
