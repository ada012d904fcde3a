package minio

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"

	"github.com/linskybing/litreview-go/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var Client *minioSDK.Client
var BucketName string

// InitMinio connects to the ticket image bucket, creating it on first start.
func InitMinio() {
	BucketName = config.MinioBucket

	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: !config.IsProduction,
		},
	}

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:     credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure:    config.MinioUseSSL,
		Transport: transport,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}

	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Printf("Connected to MinIO at %s (bucket %s)", config.MinioEndpoint, BucketName)
}
