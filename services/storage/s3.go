package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3StorageService implements StorageService on top of an S3 bucket. Objects
// are private; reads go through presigned GET URLs.
type S3StorageService struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3StorageService creates a new S3StorageService.
func NewS3StorageService(region, bucket string) (*S3StorageService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3StorageService{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
	}, nil
}

// Upload writes the object under destFolder with a random key. The original
// file name only survives as the key's extension.
func (s *S3StorageService) Upload(ctx context.Context, destFolder, fileName, contentType string, body io.Reader) (string, error) {
	key := path.Join(destFolder, uuid.New().String()+path.Ext(fileName))
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return key, nil
}

// Delete removes an object from the bucket.
func (s *S3StorageService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// GetDownloadURL returns a presigned GET URL valid for the given duration.
func (s *S3StorageService) GetDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign object URL: %w", err)
	}
	return req.URL, nil
}
