package config

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds the S3 client and bucket used for meal photo storage.
// The bucket is expected to allow public reads; uploaded photos are
// referenced by plain URLs in eating logs.
type S3Config struct {
	Client     *s3.Client
	BucketName string
	baseURL    string
}

// NewS3Config initializes the S3 client from the environment. S3_ENDPOINT
// points uploads at a MinIO instance in local development.
func NewS3Config(ctx context.Context) (*S3Config, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		bucket = "tinybites-meal-photos"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(os.Getenv("AWS_REGION")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = &endpoint
			o.UsePathStyle = true
		}
	})

	baseURL := fmt.Sprintf("https://%s.s3.amazonaws.com", bucket)
	if endpoint != "" {
		baseURL = fmt.Sprintf("%s/%s", endpoint, bucket)
	}

	return &S3Config{
		Client:     client,
		BucketName: bucket,
		baseURL:    baseURL,
	}, nil
}

// ObjectURL returns the public URL for an object key in the photo bucket
func (s *S3Config) ObjectURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}
