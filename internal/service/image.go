package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/tinybites/backend/config"
)

// PhotoService stores meal photos for diary entries in S3, replacing the
// inline base64 bitmaps earlier clients kept in local storage.
type PhotoService struct {
	s3Config *config.S3Config
}

// NewPhotoService creates a PhotoService. s3Config may be nil when S3 is
// not configured; uploads then report no URL and clients keep their local
// copy.
func NewPhotoService(s3Config *config.S3Config) *PhotoService {
	return &PhotoService{s3Config: s3Config}
}

// Enabled reports whether photo storage is configured
func (s *PhotoService) Enabled() bool {
	return s.s3Config != nil
}

// contentTypes maps accepted photo extensions to their MIME type
var contentTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// UploadMealPhoto uploads photo bytes and returns the public URL. The
// object key is randomized; the original filename only contributes its
// extension.
func (s *PhotoService) UploadMealPhoto(ctx context.Context, data []byte, filename string) (string, error) {
	if s.s3Config == nil {
		return "", fmt.Errorf("photo storage not configured")
	}

	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := contentTypes[ext]
	if !ok {
		return "", fmt.Errorf("unsupported photo type %q", ext)
	}

	key := fmt.Sprintf("meal-photos/%s%s", uuid.New().String(), ext)

	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := s.s3Config.ObjectURL(key)
	log.Printf("[PhotoService] uploaded meal photo: %s", publicURL)

	return publicURL, nil
}
