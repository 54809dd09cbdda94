// utils/r2.go
package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofiber/fiber/v2"
)

// S3Config points portrait storage at an S3-compatible bucket (AWS, R2, MinIO).
type S3Config struct {
	Bucket          string
	Endpoint        string // empty for AWS
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	KeyPrefix       string // defaults to "images"
}

// S3ImageStore keeps portraits in a bucket and proxies reads through the
// server so image URLs stay "/images/<name>".
type S3ImageStore struct {
	client *s3.Client
	bucket string
	prefix string
}

func NewS3ImageStore(ctx context.Context, cfg S3Config) (*S3ImageStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("image bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "images"
	}
	return &S3ImageStore{client: client, bucket: cfg.Bucket, prefix: prefix}, nil
}

func (s *S3ImageStore) key(name string) string {
	return path.Join(s.prefix, path.Base(name))
}

func (s *S3ImageStore) Save(ctx context.Context, name string, r io.Reader, contentType string) error {
	// PutObject needs a seekable body to sign the payload
	body, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload image to bucket: %w", err)
	}
	return nil
}

func (s *S3ImageStore) Mount(router fiber.Router, prefix string) {
	router.Get(prefix+"/*", func(c *fiber.Ctx) error {
		out, err := s.client.GetObject(c.UserContext(), &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.key(c.Params("*"))),
		})
		if err != nil {
			var noSuchKey *types.NoSuchKey
			if errors.As(err, &noSuchKey) {
				return fiber.ErrNotFound
			}
			return fmt.Errorf("failed to fetch image: %w", err)
		}

		if out.ContentType != nil {
			c.Set(fiber.HeaderContentType, *out.ContentType)
		}
		size := -1
		if out.ContentLength != nil {
			size = int(*out.ContentLength)
		}
		// fasthttp closes the body once the stream is written
		return c.SendStream(out.Body, size)
	})
}
