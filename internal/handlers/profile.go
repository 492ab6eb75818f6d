package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/AnshRaj112/wave-backend/internal/services"
)

type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar []byte  `json:"avatar,omitempty"` // base64 in JSON
}

type ProfileResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Profile *models.Profile `json:"profile,omitempty"`
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p := h.Profiles.Get()
	writeJSON(w, http.StatusOK, ProfileResponse{Success: true, Profile: &p})
}

// UpdateProfile changes only the fields present in the body.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes)
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	p := h.Profiles.Update(services.ProfileUpdate{
		Name:   req.Name,
		Bio:    req.Bio,
		Avatar: req.Avatar,
	})
	writeJSON(w, http.StatusOK, ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		Profile: &p,
	})
}
