package storage

import (
	"context"
	"fmt"
	"io"

	"cleanmaster/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const uploadFolder = "cleanmaster"

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (*CloudinaryStorage, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, cloudName: cloudName}, nil
}

func (s *CloudinaryStorage) UploadImage(ctx context.Context, r io.Reader, name string) (*models.Photo, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder: uploadFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	return &models.Photo{
		URL:       resp.SecureURL,
		ThumbURL:  s.thumbURL(resp.PublicID),
		Title:     name,
		DeleteRef: resp.PublicID,
	}, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, deleteRef string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: deleteRef})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// thumbURL builds a width-capped thumbnail delivery URL for an uploaded asset.
func (s *CloudinaryStorage) thumbURL(publicID string) string {
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/c_thumb,w_200/%s", s.cloudName, publicID)
}
