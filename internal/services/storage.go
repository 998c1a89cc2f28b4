package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService uploads images to Cloudinary. It stands in for the
// original platform's blob storage bucket.
type StorageService struct {
	cld *cloudinary.Cloudinary
}

// NewStorageServiceFromEnv builds the service from CLOUDINARY_CLOUD_NAME,
// CLOUDINARY_API_KEY and CLOUDINARY_API_SECRET.
func NewStorageServiceFromEnv() (*StorageService, error) {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not configured")
	}

	cld, err := cloudinary.NewFromURL(fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &StorageService{cld: cld}, nil
}

// UploadDriverPhoto stores a driver profile image and returns its
// public URL.
func (s *StorageService) UploadDriverPhoto(ctx context.Context, file io.Reader, driverID string) (string, error) {
	overwrite := true
	unique := true

	up, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         "drivers/photos/" + driverID,
		Overwrite:      &overwrite,
		UniqueFilename: &unique,
		ResourceType:   "image",
	})
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return up.SecureURL, nil
}
