package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/capnote/capnote/internal/client/models"
	"github.com/capnote/capnote/internal/filex"
	"github.com/capnote/capnote/internal/logging"
)

// Receipt uploads are capped at 5 MB and limited to common document and
// image formats.
const maxReceiptMB = 5

var allowedReceiptTypes = []string{"jpg", "jpeg", "png", "webp", "pdf"}

// StorageConfig points the receipt store at an S3-compatible bucket.
type StorageConfig struct {
	Endpoint      string
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// ReceiptStore keeps payment receipts in object storage. A payment has at
// most one receipt: uploading again under the same payment id overwrites it.
type ReceiptStore struct {
	api    s3API
	cfg    StorageConfig
	logger logging.Logger
}

// NewReceiptStore builds the S3 client for the configured bucket.
func NewReceiptStore(ctx context.Context, cfg StorageConfig, logger logging.Logger) (*ReceiptStore, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey, cfg.SecretKey, "")))
	if err != nil {
		return nil, fmt.Errorf("configuring storage: %w", err)
	}
	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
	return &ReceiptStore{api: api, cfg: cfg, logger: logger}, nil
}

// Upload stores a receipt for the payment and returns its path and public
// URL. The file type and size are checked before any bytes move.
func (r *ReceiptStore) Upload(ctx context.Context, paymentID, filename string, body io.Reader, size int64) (models.Receipt, error) {
	if paymentID == "" {
		return models.Receipt{}, fmt.Errorf("invalid receipt: missing payment id")
	}
	if !filex.AllowedType(filename, allowedReceiptTypes) {
		return models.Receipt{}, fmt.Errorf("invalid receipt: file type %q not allowed", filex.Ext(filename))
	}
	if !filex.WithinSize(size, maxReceiptMB) {
		return models.Receipt{}, fmt.Errorf("invalid receipt: %s exceeds %d MB",
			filex.FormatSize(size), maxReceiptMB)
	}

	key := fmt.Sprintf("receipts/%s.%s", paymentID, filex.Ext(filename))
	_, err := r.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.cfg.Bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return models.Receipt{}, fmt.Errorf("uploading receipt: %w", err)
	}
	r.logger.Debug(ctx, "receipt uploaded", "key", key, "size", size)
	return models.Receipt{Path: key, URL: r.PublicURL(key)}, nil
}

// Delete removes a stored receipt by its path.
func (r *ReceiptStore) Delete(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("invalid receipt: missing path")
	}
	_, err := r.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.cfg.Bucket),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("deleting receipt: %w", err)
	}
	return nil
}

// PublicURL renders the browser-reachable address of a stored object.
func (r *ReceiptStore) PublicURL(path string) string {
	base := strings.TrimSuffix(r.cfg.PublicBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s", base, r.cfg.Bucket, path)
}
