package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"gkbc-backend/internal/logger"
)

// CloudStorage stores objects in the Firebase project's Cloud Storage bucket.
// Objects are addressed by their public storage.googleapis.com URL, which the
// mobile client renders directly.
type CloudStorage struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewCloudStorage(ctx context.Context, credentialsFile, bucketName string) (*CloudStorage, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	storageClient, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage client: %w", err)
	}
	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve default bucket: %w", err)
	}
	return &CloudStorage{bucket: bucket, bucketName: bucketName}, nil
}

func (s *CloudStorage) Upload(ctx context.Context, bucket, key, contentType string, r io.Reader) (string, error) {
	name := objectName(bucket, key)
	logger.ExternalServiceCall("gcs", "Upload", "object", name)

	w := s.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=3600"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		logger.ExternalServiceResult("gcs", "Upload", err, "object", name)
		return "", err
	}
	if err := w.Close(); err != nil {
		logger.ExternalServiceResult("gcs", "Upload", err, "object", name)
		return "", err
	}

	logger.ExternalServiceResult("gcs", "Upload", nil, "object", name)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, name), nil
}

func (s *CloudStorage) Delete(ctx context.Context, bucket, key string) error {
	name := objectName(bucket, key)
	err := s.bucket.Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", name, err)
	}
	return nil
}

func (s *CloudStorage) Open(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return s.bucket.Object(objectName(bucket, key)).NewReader(ctx)
}

// objectName prefixes the logical bucket as a folder inside the real bucket.
func objectName(bucket, key string) string {
	return bucket + "/" + key
}
