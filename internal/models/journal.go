package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultFolderName is the bucket entries fall into when no folder is chosen
	DefaultFolderName = "Journal Entry"
	// DefaultEntryTitle is the title the compose screen starts with
	DefaultEntryTitle = "New Journal Entry"
	// DefaultRecentLimit is the size of the profile screen's recents tab
	DefaultRecentLimit = 10

	labelPreviewRunes = 50
)

// JournalEntry is a single dated journal record. Entries are never edited after commit.
type JournalEntry struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Media     Media     `json:"media"`
}

// Label renders the one-line summary shown in entry lists.
func (e JournalEntry) Label() string {
	head := e.Title
	if head == "" {
		runes := []rune(e.Content)
		if len(runes) > labelPreviewRunes {
			runes = runes[:labelPreviewRunes]
		}
		head = string(runes) + "..."
	}
	return e.CreatedAt.Format("Jan 2, 2006") + ", " + e.CreatedAt.Format("3:04 PM") + ": " + head
}

// JournalFolder is a named, append-only bucket of entries. Names need not be unique.
type JournalFolder struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Entries   []JournalEntry `json:"entries"`
}
