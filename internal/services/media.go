package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/google/uuid"
)

// MediaStore resolves an uploaded attachment into a reference that entries
// can carry. References are opaque to the EntryStore.
type MediaStore interface {
	Save(ctx context.Context, kind models.MediaKind, filename string, r io.Reader) (string, error)
}

// LocalMediaStore writes attachments into a directory on disk.
// Images get a fresh <uuid>.jpg name; videos keep their base name and
// replace any existing file with that name.
type LocalMediaStore struct {
	dir string
}

func NewLocalMediaStore(dir string) (*LocalMediaStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve media dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &LocalMediaStore{dir: abs}, nil
}

func (s *LocalMediaStore) Dir() string {
	return s.dir
}

func (s *LocalMediaStore) Save(ctx context.Context, kind models.MediaKind, filename string, r io.Reader) (string, error) {
	var name string
	switch kind {
	case models.MediaImage:
		name = uuid.NewString() + ".jpg"
	case models.MediaVideo:
		name = filepath.Base(filepath.Clean("/" + filename))
		if name == "/" || name == "." {
			name = uuid.NewString() + ".mov"
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMedia, kind)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dest := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("move %s into place: %w", name, err)
	}
	return dest, nil
}
