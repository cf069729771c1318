package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// MaxFileSize caps course thumbnails and lesson materials.
const MaxFileSize = 50 << 20

var ErrTooLarge = errors.New("upload: file is too large")

// S3Store keeps uploaded course assets in an S3 bucket. The dashboard saves
// the returned URL on the course record afterwards.
type S3Store struct {
	client *s3.Client
	bucket string
	region string
	prefix string
}

func NewS3Store(client *s3.Client, bucket, region, prefix string) *S3Store {
	return &S3Store{
		client: client,
		bucket: bucket,
		region: region,
		prefix: prefix,
	}
}

// Save streams the file to the bucket under a fresh key and returns that key.
func (s *S3Store) Save(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	if size > MaxFileSize {
		return ``, ErrTooLarge
	}

	key := s.prefix + uuid.NewString() + filepath.Ext(filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return ``, fmt.Errorf("upload: can't put object `%s`, %w", key, err)
	}
	return key, nil
}

// URL returns the public address of a stored object.
func (s *S3Store) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
