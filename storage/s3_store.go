package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/petcare-hub/api-go/config"
)

// S3Store keeps images in an S3-compatible bucket (Cloudflare R2).
type S3Store struct {
	client *s3.Client
	cfg    *config.StorageConfig
}

func NewS3Store(cfg *config.StorageConfig) *S3Store {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &S3Store{client: client, cfg: cfg}
}

func (s *S3Store) Store(ctx context.Context, upload Upload, bucket string) (string, error) {
	if err := validateUpload(upload); err != nil {
		return "", err
	}

	key := generateKey(bucket, upload.FileName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.BucketName),
		Key:           aws.String(key),
		Body:          upload.Body,
		ContentType:   aws.String(upload.ContentType),
		ContentLength: aws.Int64(upload.Size),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return fmt.Sprintf("%s/%s", s.cfg.PublicURL, key), nil
}

func (s *S3Store) Remove(ctx context.Context, ref string) error {
	key := s.keyFromRef(ref)
	if key == "" {
		return fmt.Errorf("unrecognized asset reference: %s", ref)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}
	return nil
}

// generateKey builds a collision-resistant object key, preserving the
// original extension: {bucket}/{unix}_{uuid}{ext}
func generateKey(bucket, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s/%d_%s%s", bucket, time.Now().Unix(), uuid.New().String(), ext)
}

func (s *S3Store) keyFromRef(ref string) string {
	return strings.TrimPrefix(strings.TrimPrefix(ref, s.cfg.PublicURL), "/")
}
