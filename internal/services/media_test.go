package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalMediaStore_Image(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalMediaStore(dir)
	require.NoError(t, err)

	ref, err := s.Save(context.Background(), models.MediaImage, "photo.png", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(ref))
	assert.Equal(t, s.Dir(), filepath.Dir(ref))

	data, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	other, err := s.Save(context.Background(), models.MediaImage, "photo.png", strings.NewReader("x"))
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
}

func TestLocalMediaStore_VideoReplacesSameName(t *testing.T) {
	s, err := NewLocalMediaStore(t.TempDir())
	require.NoError(t, err)

	first, err := s.Save(context.Background(), models.MediaVideo, "../../clip.mov", strings.NewReader("v1"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.Dir(), "clip.mov"), first)

	second, err := s.Save(context.Background(), models.MediaVideo, "clip.mov", strings.NewReader("v2"))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))
}

func TestLocalMediaStore_Rejects(t *testing.T) {
	s, err := NewLocalMediaStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), models.MediaNone, "x", strings.NewReader(""))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Save(ctx, models.MediaVideo, "x.mov", strings.NewReader(""))
	assert.ErrorIs(t, err, context.Canceled)
}
