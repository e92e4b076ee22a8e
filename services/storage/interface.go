package storage

import (
	"context"
	"io"

	"cleanmaster/models"
)

// StorageService stores customer-supplied images (place photos and payment
// proofs) and hands back displayable URLs.
type StorageService interface {
	UploadImage(ctx context.Context, r io.Reader, name string) (*models.Photo, error)
	Delete(ctx context.Context, deleteRef string) error
}
