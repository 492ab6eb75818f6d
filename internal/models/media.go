package models

import (
	"encoding/json"
	"fmt"
)

// MediaKind tags which attachment, if any, an entry carries.
type MediaKind string

const (
	MediaNone  MediaKind = "none"
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind accepts the wire names used by upload forms.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(s) {
	case MediaImage, MediaVideo:
		return MediaKind(s), nil
	case MediaNone, "":
		return MediaNone, nil
	}
	return "", fmt.Errorf("unknown media kind %q", s)
}

// Media holds at most one attachment: raw image bytes or a reference to a
// video resolved by the media store. The zero value is no media.
type Media struct {
	kind     MediaKind
	image    []byte
	videoRef string
}

func NoMedia() Media {
	return Media{kind: MediaNone}
}

// ImageMedia copies data. An empty payload is no media.
func ImageMedia(data []byte) Media {
	if len(data) == 0 {
		return NoMedia()
	}
	buf := make([]byte, len(data))
	copy(buf, data)
	return Media{kind: MediaImage, image: buf}
}

// VideoMedia wraps a file path or URL. An empty ref is no media.
func VideoMedia(ref string) Media {
	if ref == "" {
		return NoMedia()
	}
	return Media{kind: MediaVideo, videoRef: ref}
}

func (m Media) Kind() MediaKind {
	if m.kind == "" {
		return MediaNone
	}
	return m.kind
}

// Image returns the image bytes. Callers must not modify them.
func (m Media) Image() ([]byte, bool) {
	if m.kind != MediaImage {
		return nil, false
	}
	return m.image, true
}

func (m Media) VideoRef() (string, bool) {
	if m.kind != MediaVideo {
		return "", false
	}
	return m.videoRef, true
}

type mediaJSON struct {
	Kind      MediaKind `json:"kind"`
	ImageSize int       `json:"image_size,omitempty"`
	VideoRef  string    `json:"video_ref,omitempty"`
}

// MarshalJSON describes the attachment without inlining image bytes; those
// are served separately.
func (m Media) MarshalJSON() ([]byte, error) {
	return json.Marshal(mediaJSON{
		Kind:      m.Kind(),
		ImageSize: len(m.image),
		VideoRef:  m.videoRef,
	})
}
