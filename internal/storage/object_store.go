package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
)

// ObjectStore hosts product imagery in an S3-compatible bucket.
type ObjectStore struct {
	client *minio.Client
	cfg    config.StorageConfig
}

func NewObjectStore(cfg config.StorageConfig) (*ObjectStore, error) {
	endpoint := cfg.Endpoint
	useSSL := cfg.UseSSL

	if strings.HasPrefix(endpoint, "http") {
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("parse endpoint: %w", err)
		}
		endpoint = u.Host
		useSSL = u.Scheme == "https"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: useSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return &ObjectStore{
		client: client,
		cfg:    cfg,
	}, nil
}

func (s *ObjectStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.ProductBucket)
	if err != nil {
		return fmt.Errorf("bucket exists %s: %w", s.cfg.ProductBucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.cfg.ProductBucket, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
			return fmt.Errorf("create bucket %s: %w", s.cfg.ProductBucket, err)
		}
	}
	return nil
}

// PutProductImage stores the object and returns the public URL callers
// persist on the product row.
func (s *ObjectStore) PutProductImage(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.cfg.ProductBucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return s.PublicURL(objectKey), nil
}

func (s *ObjectStore) PublicURL(objectKey string) string {
	base := strings.TrimSuffix(s.cfg.PublicBaseURL, "/")
	if base == "" {
		scheme := "http"
		if s.cfg.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, s.client.EndpointURL().Host)
	}
	return fmt.Sprintf("%s/%s/%s", base, s.cfg.ProductBucket, objectKey)
}

// RemoveByURL deletes the object an image URL points at. URLs that do not
// reference the product bucket are ignored.
func (s *ObjectStore) RemoveByURL(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse image url: %w", err)
	}

	marker := "/" + s.cfg.ProductBucket + "/"
	idx := strings.Index(u.Path, marker)
	if idx < 0 {
		return nil
	}
	objectKey := u.Path[idx+len(marker):]
	if objectKey == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.cfg.ProductBucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %s: %w", objectKey, err)
	}
	return nil
}
