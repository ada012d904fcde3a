package application

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/pkg/utils"
)

const ticketImagePrefix = "tickets/"

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ImageUpload is a ticket cover picture received from a multipart form.
type ImageUpload struct {
	Filename string
	Size     int64
	Reader   io.Reader
}

// ImageService keeps ticket images in the object store.
type ImageService struct{}

func NewImageService() *ImageService {
	return &ImageService{}
}

// Save validates and stores the upload, returning its object key.
func (s *ImageService) Save(ctx context.Context, upload ImageUpload) (string, error) {
	ext := strings.ToLower(filepath.Ext(upload.Filename))
	contentType, ok := allowedImageTypes[ext]
	if !ok {
		return "", invalid("image", "unsupported image type %q", ext)
	}
	if upload.Size <= 0 {
		return "", invalid("image", "image is empty")
	}
	if upload.Size > config.MaxImageSize {
		return "", invalid("image", "image exceeds %d bytes", config.MaxImageSize)
	}

	key := ticketImagePrefix + uuid.NewString() + ext
	if err := utils.UploadObject(ctx, key, contentType, upload.Reader, upload.Size); err != nil {
		return "", err
	}
	return key, nil
}

// Remove deletes an object; failures are logged, the ticket change stands.
func (s *ImageService) Remove(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := utils.DeleteObject(ctx, key); err != nil {
		log.Printf("failed to remove image %s: %v", key, err)
	}
}

// Open streams a stored ticket image.
func (s *ImageService) Open(ctx context.Context, key string) (io.ReadCloser, utils.ObjectInfo, error) {
	if !strings.HasPrefix(key, ticketImagePrefix) || strings.Contains(key, "..") {
		return nil, utils.ObjectInfo{}, ErrImageNotFound
	}
	rc, info, err := utils.OpenObject(ctx, key)
	if errors.Is(err, utils.ErrObjectNotFound) {
		return nil, utils.ObjectInfo{}, ErrImageNotFound
	}
	return rc, info, err
}
