package utils

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/linskybing/litreview-go/pkg/minio"
	minioSDK "github.com/minio/minio-go/v7"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored image for streaming back to clients.
type ObjectInfo struct {
	ContentType string
	Size        int64
}

// UploadObject stores content under objectName with the given content type.
var UploadObject = func(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// OpenObject returns a reader over objectName; the caller closes it.
var OpenObject = func(ctx context.Context, objectName string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if minioSDK.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}
	return obj, ObjectInfo{ContentType: stat.ContentType, Size: stat.Size}, nil
}

// DeleteObject removes objectName from the bucket.
var DeleteObject = func(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
