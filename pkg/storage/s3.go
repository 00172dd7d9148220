package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/df07/go-smallpt/pkg/config"
	"github.com/df07/go-smallpt/pkg/log"
)

// UploadTimeout bounds a single upload
const UploadTimeout = 30 * time.Second

var logger = log.New("storage")

// ErrNoBucket is returned when uploading is requested without a configured bucket
var ErrNoBucket = errors.New("storage: no S3 bucket configured")

// Uploader stores a rendered frame under key
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
}

// putObjectAPI is the subset of the S3 client used for uploads
type putObjectAPI interface {
	PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error)
}

// S3Uploader uploads frames to an S3-compatible bucket
type S3Uploader struct {
	client putObjectAPI
	bucket string
}

// NewS3Uploader creates an uploader from the S3 settings. A custom endpoint switches to
// path-style addressing for S3-compatible stores.
func NewS3Uploader(cfg config.S3) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("storage: creating S3 session: %w", err)
	}

	return newS3Uploader(s3.New(sess), cfg.Bucket), nil
}

func newS3Uploader(client putObjectAPI, bucket string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket}
}

// Bucket returns the target bucket
func (u *S3Uploader) Bucket() string {
	return u.bucket
}

// Upload puts data under key in the bucket
func (u *S3Uploader) Upload(ctx context.Context, key, contentType string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("storage: failed to upload %s: %w", key, err)
	}

	logger.Infof("uploaded s3://%s/%s (%d bytes)", u.bucket, key, size)
	return nil
}

// ObjectKey builds the key for a rendered frame: prefix/scene/file
func ObjectKey(prefix, sceneID, fileName string) string {
	return strings.TrimPrefix(path.Join(prefix, sceneID, path.Base(fileName)), "/")
}

// ContentType returns the MIME type for an output format
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case "png":
		return "image/png"
	case "ppm":
		return "image/x-portable-pixmap"
	default:
		return "application/octet-stream"
	}
}
