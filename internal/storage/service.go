// Package storage uploads project images to an S3-compatible bucket.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Config holds the S3 connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL is the base URL the bucket is served from. When empty,
	// object URLs are built from the endpoint and bucket name.
	PublicURL string
}

// Service stores uploaded files in a bucket.
type Service struct {
	client *minio.Client
	config Config
}

// NewService connects to the S3 endpoint and ensures the bucket exists.
func NewService(ctx context.Context, config Config) (*Service, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect storage: %w", err)
	}

	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &Service{client: client, config: config}, nil
}

// Upload stores the file under folder and returns its public URL. Object
// names carry a timestamp and a random suffix so repeated uploads of the
// same filename never collide.
func (s *Service) Upload(ctx context.Context, folder, filename, contentType string, size int64, r io.Reader) (string, error) {
	objectName := fmt.Sprintf("%s/%d-%s%s", folder, time.Now().UnixMilli(), randomSuffix(), strings.ToLower(path.Ext(filename)))

	_, err := s.client.PutObject(ctx, s.config.Bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return s.objectURL(objectName), nil
}

func (s *Service) objectURL(objectName string) string {
	if s.config.PublicURL != "" {
		return strings.TrimSuffix(s.config.PublicURL, "/") + "/" + objectName
	}
	scheme := "http"
	if s.config.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.config.Endpoint, s.config.Bucket, objectName)
}

func randomSuffix() string {
	b := make([]byte, 4)
	rand.Read(b)
	return hex.EncodeToString(b)
}
