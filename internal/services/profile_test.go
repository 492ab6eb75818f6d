package services

import (
	"testing"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileStore(t *testing.T) {
	n := &recordingNotifier{}
	p := NewProfileStore(n)

	assert.Equal(t, models.DefaultProfile(), p.Get())

	name := "Diego"
	got := p.Update(ProfileUpdate{Name: &name, Avatar: []byte{1, 2, 3}})
	assert.Equal(t, "Diego", got.Name)
	assert.Equal(t, models.DefaultProfileBio, got.Bio)
	assert.Equal(t, []byte{1, 2, 3}, got.Avatar)

	got.Avatar[0] = 9
	assert.Equal(t, byte(1), p.Get().Avatar[0])

	require.Len(t, n.events, 1)
	assert.Equal(t, EventProfileUpdated, n.events[0].Type)
	assert.Nil(t, n.events[0].Profile.Avatar)
}
