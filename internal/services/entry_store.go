package services

import (
	"strings"
	"sync"
	"time"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/google/uuid"
)

// Event types published to display screens.
const (
	EventEntryCommitted = "entry_committed"
	EventFolderCreated  = "folder_created"
	EventProfileUpdated = "profile_updated"
)

// Event describes a state change that display screens should re-render from.
type Event struct {
	Type      string               `json:"type"`
	Entry     *models.JournalEntry `json:"entry,omitempty"`
	Folder    *FolderSummary       `json:"folder,omitempty"`
	Profile   *models.Profile      `json:"profile,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
}

// FolderSummary is a folder without its entries.
type FolderSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	EntryCount int       `json:"entry_count"`
}

// Notifier receives store events. Publish must not call back into the store.
type Notifier interface {
	Publish(Event)
}

// EntryStore holds the in-memory working set of entries and folders.
// A single mutex serializes commits and reads, so callers may share one
// store across request goroutines.
type EntryStore struct {
	mu       sync.Mutex
	entries  []models.JournalEntry
	folders  []*models.JournalFolder
	notifier Notifier

	now   func() time.Time
	newID func() uuid.UUID
}

type StoreOption func(*EntryStore)

// WithNotifier publishes commit and folder events to n.
func WithNotifier(n Notifier) StoreOption {
	return func(s *EntryStore) { s.notifier = n }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) StoreOption {
	return func(s *EntryStore) { s.now = now }
}

func NewEntryStore(opts ...StoreOption) *EntryStore {
	s := &EntryStore{
		now:   time.Now,
		newID: uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CommitEntry files a new entry. It always appends to the chronological
// sequence, then to the folder named folderName, falling back to the
// default folder, and finally to a newly created folder named folderName.
// An empty folderName means the default folder.
func (s *EntryStore) CommitEntry(title, content string, media models.Media, folderName string) (models.JournalEntry, FolderSummary) {
	if folderName == "" {
		folderName = models.DefaultFolderName
	}

	s.mu.Lock()
	entry := models.JournalEntry{
		ID:        s.newID(),
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
		Media:     media,
	}
	s.entries = append(s.entries, entry)

	created := false
	folder := s.findFolderLocked(folderName)
	if folder == nil {
		folder = s.findFolderLocked(models.DefaultFolderName)
	}
	if folder == nil {
		folder = &models.JournalFolder{
			ID:        s.newID(),
			Name:      folderName,
			CreatedAt: entry.CreatedAt,
		}
		s.folders = append(s.folders, folder)
		created = true
	}
	folder.Entries = append(folder.Entries, entry)
	summary := summarize(folder)
	s.mu.Unlock()

	if created {
		s.publish(Event{Type: EventFolderCreated, Folder: &summary, Timestamp: entry.CreatedAt})
	}
	s.publish(Event{Type: EventEntryCommitted, Entry: &entry, Folder: &summary, Timestamp: entry.CreatedAt})
	return entry, summary
}

// CreateFolder appends an empty folder. Duplicate names are allowed.
func (s *EntryStore) CreateFolder(name string) (FolderSummary, error) {
	if strings.TrimSpace(name) == "" {
		return FolderSummary{}, ErrFolderNameRequired
	}

	s.mu.Lock()
	folder := &models.JournalFolder{
		ID:        s.newID(),
		Name:      name,
		CreatedAt: s.now(),
	}
	s.folders = append(s.folders, folder)
	summary := summarize(folder)
	s.mu.Unlock()

	s.publish(Event{Type: EventFolderCreated, Folder: &summary, Timestamp: summary.CreatedAt})
	return summary, nil
}

// MostRecent returns up to n entries, newest first.
func (s *EntryStore) MostRecent(n int) []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.entries) {
		n = len(s.entries)
	}
	if n <= 0 {
		return []models.JournalEntry{}
	}
	out := make([]models.JournalEntry, 0, n)
	for i := len(s.entries) - 1; i >= len(s.entries)-n; i-- {
		out = append(out, s.entries[i])
	}
	return out
}

// ListFolders returns folder snapshots in insertion order.
func (s *EntryStore) ListFolders() []FolderSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]FolderSummary, 0, len(s.folders))
	for _, f := range s.folders {
		out = append(out, summarize(f))
	}
	return out
}

// EntriesOf returns a folder's entries oldest first.
func (s *EntryStore) EntriesOf(folderID uuid.UUID) (FolderSummary, []models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.folders {
		if f.ID == folderID {
			entries := make([]models.JournalEntry, len(f.Entries))
			copy(entries, f.Entries)
			return summarize(f), entries, nil
		}
	}
	return FolderSummary{}, nil, ErrFolderNotFound
}

func (s *EntryStore) Entry(id uuid.UUID) (models.JournalEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, ErrEntryNotFound
}

// Len reports how many entries have been committed.
func (s *EntryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// findFolderLocked returns the oldest folder with exactly this name.
func (s *EntryStore) findFolderLocked(name string) *models.JournalFolder {
	for _, f := range s.folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (s *EntryStore) publish(evt Event) {
	if s.notifier != nil {
		s.notifier.Publish(evt)
	}
}

func summarize(f *models.JournalFolder) FolderSummary {
	return FolderSummary{
		ID:         f.ID,
		Name:       f.Name,
		CreatedAt:  f.CreatedAt,
		EntryCount: len(f.Entries),
	}
}
