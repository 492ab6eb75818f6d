package services

import (
	"context"
	"fmt"
	"io"

	"github.com/AnshRaj112/wave-backend/internal/models"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryMediaStore uploads attachments to Cloudinary and returns the secure URL.
type CloudinaryMediaStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryMediaStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryMediaStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}

	return &CloudinaryMediaStore{
		cld:    cld,
		folder: folder,
	}, nil
}

func (s *CloudinaryMediaStore) Save(ctx context.Context, kind models.MediaKind, filename string, r io.Reader) (string, error) {
	var resourceType string
	switch kind {
	case models.MediaImage:
		resourceType = "image"
	case models.MediaVideo:
		resourceType = "video"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMedia, kind)
	}

	result, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: resourceType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to Cloudinary: %w", filename, err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary rejected %s: %s", filename, result.Error.Message)
	}

	return result.SecureURL, nil
}
