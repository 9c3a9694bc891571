package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/templui/momentum/internal/config"
)

var ErrStorageDisabled = errors.New("media storage is not configured")

// Storage holds share media (photos and voice notes).
type Storage interface {
	// Save stores an object under key with the given content type.
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	// URL returns a time-limited link to the object.
	URL(ctx context.Context, key string) (string, error)
}

// S3Storage works with AWS S3 and S3-compatible services (MinIO, R2, Spaces).
type S3Storage struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	baseURL       string
	urlTTL        time.Duration
}

type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	Endpoint  string // Optional: for S3-compatible services
	URLTTL    time.Duration
}

// New returns the configured media storage, or a Disabled storage when no
// bucket is set so the rest of the API keeps working.
func New(ctx context.Context, c *cfg.Config) (Storage, error) {
	if !c.MediaEnabled() {
		slog.Info("media storage disabled", "hint", "set S3_BUCKET to enable share uploads")
		return Disabled{}, nil
	}
	slog.Info("initializing S3 storage",
		"bucket", c.S3Bucket,
		"region", c.S3Region,
		"endpoint", c.S3Endpoint,
	)
	return NewS3Storage(ctx, S3Config{
		Region:    c.S3Region,
		Bucket:    c.S3Bucket,
		AccessKey: c.S3AccessKey,
		SecretKey: c.S3SecretKey,
		Endpoint:  c.S3Endpoint,
		URLTTL:    c.MediaURLTTL,
	})
}

func NewS3Storage(ctx context.Context, c S3Config) (*S3Storage, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" && c.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
			o.UsePathStyle = true // Required for MinIO and some S3-compatible services
		}
	})

	st := &S3Storage{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        c.Bucket,
		baseURL:       objectBaseURL(c),
		urlTTL:        c.URLTTL,
	}

	if err := st.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}
	return st, nil
}

func objectBaseURL(c S3Config) string {
	if c.Endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", c.Bucket, c.Region)
	}
	return strings.TrimSuffix(c.Endpoint, "/") + "/" + c.Bucket
}

func (s *S3Storage) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err == nil {
		return nil
	}

	_, err = s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("bucket %q does not exist and could not be created: %w", s.bucket, err)
	}

	slog.Info("created S3 bucket", "bucket", s.bucket)
	return nil
}

func (s *S3Storage) Save(ctx context.Context, key, contentType string, body io.Reader) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}
	return nil
}

// URL presigns a GET for the object. A zero TTL returns the plain object URL.
func (s *S3Storage) URL(ctx context.Context, key string) (string, error) {
	if s.urlTTL <= 0 {
		return s.baseURL + "/" + key, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := s.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.urlTTL
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign URL: %w", err)
	}
	return req.URL, nil
}

// Disabled rejects every operation with ErrStorageDisabled.
type Disabled struct{}

func (Disabled) Save(context.Context, string, string, io.Reader) error { return ErrStorageDisabled }
func (Disabled) Delete(context.Context, string) error                 { return ErrStorageDisabled }
func (Disabled) URL(context.Context, string) (string, error)          { return "", ErrStorageDisabled }
