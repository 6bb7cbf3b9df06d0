package storage

import (
	"context"
	"errors"
	"mime/multipart"
)

var ErrUploadsDisabled = errors.New("uploads are not configured")

// DisabledUploader rejects every upload. Used when no Cloudinary
// credentials are present so the rest of the API still serves.
type DisabledUploader struct{}

func (DisabledUploader) Upload(ctx context.Context, file multipart.File, folder string) (string, error) {
	return "", ErrUploadsDisabled
}
