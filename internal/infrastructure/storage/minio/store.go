// Package minio stores raw document text in object storage so that
// re-analysis never depends on the uploader keeping the original file.
package minio

import (
	"bytes"
	"context"
	"io"
	"strings"

	miniogo "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/config"
	"github.com/Ayushi4206/Legal-AI-Analyzer/internal/infrastructure/monitoring/logging"
	"github.com/Ayushi4206/Legal-AI-Analyzer/pkg/errors"
)

// DocumentStore reads and writes document text blobs.
type DocumentStore struct {
	client *miniogo.Client
	bucket string
	logger logging.Logger
}

// NewDocumentStore connects to the object store and ensures the
// configured bucket exists.
func NewDocumentStore(ctx context.Context, cfg config.MinIOConfig, log logging.Logger) (*DocumentStore, error) {
	client, err := miniogo.New(cfg.Endpoint, &miniogo.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "failed to create object storage client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageError, "failed to check bucket")
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, miniogo.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeStorageError, "failed to create bucket")
		}
		log.Info("created document bucket", logging.String("bucket", cfg.Bucket))
	}

	return &DocumentStore{client: client, bucket: cfg.Bucket, logger: log.Named("document_store")}, nil
}

func objectName(id string) string { return id + ".txt" }

// Put stores the text of one document under its id.
func (s *DocumentStore) Put(ctx context.Context, id, text string) error {
	reader := strings.NewReader(text)
	_, err := s.client.PutObject(ctx, s.bucket, objectName(id), reader, int64(reader.Len()),
		miniogo.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "failed to store document text").
			WithDetail("id: " + id)
	}
	return nil
}

// Get loads the text of one document.
func (s *DocumentStore) Get(ctx context.Context, id string) (string, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectName(id), miniogo.GetObjectOptions{})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "failed to open document text").
			WithDetail("id: " + id)
	}
	defer obj.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, obj); err != nil {
		resp := miniogo.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return "", errors.New(errors.ErrCodeDocumentNotFound, "document text not found").
				WithDetail("id: " + id)
		}
		return "", errors.Wrap(err, errors.ErrCodeStorageError, "failed to read document text").
			WithDetail("id: " + id)
	}
	return buf.String(), nil
}

// Remove deletes the stored text of one document.
func (s *DocumentStore) Remove(ctx context.Context, id string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName(id), miniogo.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageError, "failed to remove document text").
			WithDetail("id: " + id)
	}
	return nil
}
