package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/boardhive/jobboard/internal/config"
	"github.com/boardhive/jobboard/internal/logger"
)

// s3Store is the S3-backed implementation of [ObjectStore]. It works against
// AWS as well as S3-compatible services (e.g. MinIO) via a custom base
// endpoint.
type s3Store struct {
	client   *s3.Client
	bucket   string
	endpoint string
	timeout  time.Duration
	logger   *logger.Logger
}

// NewS3Store builds an [ObjectStore] from cfg. Static credentials are used
// when both keys are present; otherwise the SDK's default provider chain
// applies.
func NewS3Store(ctx context.Context, cfg config.ObjectStore, log *logger.Logger) (ObjectStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading object storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", cfg.Bucket).Msg("object storage client created")

	return &s3Store{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		timeout:  cfg.RequestTimeout,
		logger:   log,
	}, nil
}

// Upload stores data under key and returns the object's location reference.
func (s *s3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("key", key).Msg("object upload failed")
		return "", fmt.Errorf("%w: upload %q: %w", ErrObjectStoreFault, key, err)
	}

	return s.location(key), nil
}

// Download fetches the object stored under key and returns its content and
// content type.
func (s *s3Store) Download(ctx context.Context, key string) ([]byte, string, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, "", ErrObjectNotFound
		}
		log.Err(err).Str("key", key).Msg("object download failed")
		return nil, "", fmt.Errorf("%w: download %q: %w", ErrObjectStoreFault, key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: download %q: %w", ErrObjectStoreFault, key, err)
	}

	return data, aws.ToString(out.ContentType), nil
}

// Delete removes the object stored under key. S3 delete is idempotent, so a
// missing key is not an error.
func (s *s3Store) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Err(err).Str("key", key).Msg("object delete failed")
		return fmt.Errorf("%w: delete %q: %w", ErrObjectStoreFault, key, err)
	}

	return nil
}

// location builds the public reference for an uploaded object. With a custom
// endpoint the path-style form is used; otherwise the AWS virtual-hosted
// form.
func (s *s3Store) location(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
}
