package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"turboscribe/internal/api/v1/dto"
)

// MinioStorageService implements StorageService using MinIO. Retention of
// original uploads is optional: NewMinioStorageFromEnv returns nil when
// MINIO_ENDPOINT is not configured and ingestion proceeds without it.
type MinioStorageService struct {
	client *minio.Client
	bucket string
}

// NewMinioStorageFromEnv builds the storage service from MINIO_* variables.
func NewMinioStorageFromEnv() (*MinioStorageService, error) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	if accessKey == "" {
		accessKey = "minioadmin"
	}

	secretKey := os.Getenv("MINIO_SECRET_KEY")
	if secretKey == "" {
		secretKey = "minioadmin"
	}

	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "turboscribe-uploads"
	}

	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	svc := &MinioStorageService{client: client, bucket: bucket}
	if err := svc.ensureBucket(context.Background()); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *MinioStorageService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Upload stores the original media under uploads/<userID>/<uuid>-<name> and
// returns the object key.
func (s *MinioStorageService) Upload(ctx context.Context, userID string, file *dto.UploadedFile) (string, error) {
	key := path.Join("uploads", userID, uuid.New().String()+"-"+path.Base(file.Name))

	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(file.Data), int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.ContentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return key, nil
}
