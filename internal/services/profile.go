package services

import (
	"sync"
	"time"

	"github.com/AnshRaj112/wave-backend/internal/models"
)

// ProfileUpdate carries the fields to change; nil leaves a field as is.
type ProfileUpdate struct {
	Name   *string
	Bio    *string
	Avatar []byte
}

// ProfileStore holds the single in-memory user profile.
type ProfileStore struct {
	mu       sync.RWMutex
	profile  models.Profile
	notifier Notifier
}

func NewProfileStore(n Notifier) *ProfileStore {
	return &ProfileStore{profile: models.DefaultProfile(), notifier: n}
}

func (p *ProfileStore) Get() models.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return cloneProfile(p.profile)
}

func (p *ProfileStore) Update(u ProfileUpdate) models.Profile {
	p.mu.Lock()
	if u.Name != nil {
		p.profile.Name = *u.Name
	}
	if u.Bio != nil {
		p.profile.Bio = *u.Bio
	}
	if u.Avatar != nil {
		p.profile.Avatar = append([]byte(nil), u.Avatar...)
	}
	updated := cloneProfile(p.profile)
	p.mu.Unlock()

	if p.notifier != nil {
		published := cloneProfile(updated)
		published.Avatar = nil
		p.notifier.Publish(Event{Type: EventProfileUpdated, Profile: &published, Timestamp: time.Now().UTC()})
	}
	return updated
}

func cloneProfile(p models.Profile) models.Profile {
	if p.Avatar != nil {
		p.Avatar = append([]byte(nil), p.Avatar...)
	}
	return p
}
