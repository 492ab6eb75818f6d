package handlers

import (
	"time"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/google/uuid"
)

type journalView struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Label     string       `json:"label"`
	CreatedAt time.Time    `json:"created_at"`
	Media     models.Media `json:"media"`
	MediaURL  string       `json:"media_url,omitempty"`
}

func toJournalView(e models.JournalEntry) journalView {
	v := journalView{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		Label:     e.Label(),
		CreatedAt: e.CreatedAt,
		Media:     e.Media,
	}
	if e.Media.Kind() != models.MediaNone {
		v.MediaURL = "/api/journals/" + e.ID.String() + "/media"
	}
	return v
}

func toJournalViews(entries []models.JournalEntry) []journalView {
	out := make([]journalView, 0, len(entries))
	for _, e := range entries {
		out = append(out, toJournalView(e))
	}
	return out
}
