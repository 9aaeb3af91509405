package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/techfolio/portfolio-api/internal/config"
	"github.com/techfolio/portfolio-api/internal/store"
)

// MinIOStorage is a thin wrapper around the minio client. The API uses it to
// keep a copy of every accepted contact message outside the database.
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

// NewMinIOStorage creates a new MinIO storage client and ensures the bucket exists.
func NewMinIOStorage(ctx context.Context, cfg config.MinIOConfig) (*MinIOStorage, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("minio bucket missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOStorage{client: mc, bucket: cfg.Bucket}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		// ignore "already exists" style errors
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// UploadFile uploads data from reader to the configured bucket using the provided key.
func (s *MinIOStorage) UploadFile(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// ArchiveMessage stores a stored contact message as a JSON object.
func (s *MinIOStorage) ArchiveMessage(ctx context.Context, doc store.Document) error {
	key, body, err := MessageObject(doc)
	if err != nil {
		return err
	}
	if err := s.UploadFile(ctx, key, bytes.NewReader(body), int64(len(body)), "application/json"); err != nil {
		return fmt.Errorf("archive message %s: %w", doc.ID(), err)
	}
	return nil
}

// MessageObject returns the object key and JSON body for a stored message.
// Keys are grouped by UTC day: messages/2006-01-02/<id>.json.
func MessageObject(doc store.Document) (string, []byte, error) {
	id := doc.ID()
	if id == "" {
		return "", nil, fmt.Errorf("message has no id")
	}
	day := time.Now().UTC()
	if ts, ok := doc[store.CreatedAtField].(time.Time); ok {
		day = ts.UTC()
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return "", nil, fmt.Errorf("encode message %s: %w", id, err)
	}
	return fmt.Sprintf("messages/%s/%s.json", day.Format("2006-01-02"), id), body, nil
}
