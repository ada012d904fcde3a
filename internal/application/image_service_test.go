package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/linskybing/litreview-go/internal/config"
	"github.com/linskybing/litreview-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageService_Save(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()

	var uploaded []string
	oldUpload := utils.UploadObject
	utils.UploadObject = func(ctx context.Context, objectName, contentType string, r io.Reader, size int64) error {
		uploaded = append(uploaded, objectName+"|"+contentType)
		return nil
	}
	defer func() { utils.UploadObject = oldUpload }()

	key, err := svc.Save(ctx, ImageUpload{Filename: "a.JPG", Size: 10, Reader: strings.NewReader("0123456789")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, ticketImagePrefix))
	assert.Equal(t, []string{key + "|image/jpeg"}, uploaded)

	_, err = svc.Save(ctx, ImageUpload{Filename: "a.svg", Size: 10})
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Save(ctx, ImageUpload{Filename: "a.png", Size: 0})
	assert.ErrorAs(t, err, &ve)

	_, err = svc.Save(ctx, ImageUpload{Filename: "a.png", Size: config.MaxImageSize + 1})
	assert.ErrorAs(t, err, &ve)
	assert.Len(t, uploaded, 1)
}

func TestImageService_Open(t *testing.T) {
	svc := NewImageService()
	ctx := context.Background()

	oldOpen := utils.OpenObject
	utils.OpenObject = func(ctx context.Context, objectName string) (io.ReadCloser, utils.ObjectInfo, error) {
		if objectName == "tickets/missing.png" {
			return nil, utils.ObjectInfo{}, utils.ErrObjectNotFound
		}
		if objectName == "tickets/broken.png" {
			return nil, utils.ObjectInfo{}, errors.New("store offline")
		}
		return io.NopCloser(strings.NewReader("img")), utils.ObjectInfo{ContentType: "image/png", Size: 3}, nil
	}
	defer func() { utils.OpenObject = oldOpen }()

	rc, info, err := svc.Open(ctx, "tickets/ok.png")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "image/png", info.ContentType)

	_, _, err = svc.Open(ctx, "tickets/missing.png")
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, _, err = svc.Open(ctx, "other/secret.png")
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, _, err = svc.Open(ctx, "tickets/../secret.png")
	assert.ErrorIs(t, err, ErrImageNotFound)

	_, _, err = svc.Open(ctx, "tickets/broken.png")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrImageNotFound)
}
