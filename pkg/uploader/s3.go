// Package uploader stores company logos in an object store and hands
// back a public URL for embedding in rendered invoices.
package uploader

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// Uploader accepts an image stream and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// S3 uploads logos to a bucket via the s3manager upload helper.
type S3 struct {
	uploader *s3manager.Uploader
	bucket   string
	region   string
}

// NewS3 builds an S3 uploader for the given region and bucket.
func NewS3(region, bucket string) (*S3, error) {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	return &S3{uploader: s3manager.NewUploader(sess), bucket: bucket, region: region}, nil
}

// Upload stores the logo under a fresh key derived from the original
// filename and returns the object's public URL.
func (s *S3) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	key := "logos/" + uuid.NewString() + ext

	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload logo: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
