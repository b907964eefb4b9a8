package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/nutriflow/backend/config"
)

const photoURLExpiry = 15 * time.Minute

// PhotoService stores meal photos from the camera logging flow in S3 and
// hands out presigned URLs for display.
type PhotoService struct {
	s3cfg *config.S3Config
}

// Ensure PhotoService implements IPhotoService
var _ IPhotoService = (*PhotoService)(nil)

func NewPhotoService(s3cfg *config.S3Config) *PhotoService {
	return &PhotoService{s3cfg: s3cfg}
}

// Upload stores a photo under a per-user key and returns the object key for
// attaching to a food log entry.
func (s *PhotoService) Upload(ctx context.Context, userID uuid.UUID, body io.Reader, contentType string) (string, error) {
	key := fmt.Sprintf("meals/%s/%s.jpg", userID, uuid.New())

	_, err := s.s3cfg.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3cfg.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return key, nil
}

// URL returns a short-lived presigned GET URL for a stored photo.
func (s *PhotoService) URL(ctx context.Context, key string) (string, error) {
	return s.s3cfg.GeneratePresignedURL(ctx, key, photoURLExpiry)
}
