package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/devlogkr/blog_backend/internal/apperrors"
	portssvc "github.com/devlogkr/blog_backend/internal/core/ports/services"
	"github.com/devlogkr/blog_backend/internal/platform/config"
	"github.com/devlogkr/blog_backend/internal/utils"
)

// allowedImageTypes is the mime allow-list for uploaded images.
var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// blobStore persists a single admitted file and returns its public URL.
type blobStore interface {
	Store(ctx context.Context, name string, contentType string, data []byte) (string, error)
}

type uploaderService struct {
	store       blobStore
	maxFiles    int
	maxFileSize int64
}

// NewUploaderService creates the upload relay with the storage backend
// selected by config.
func NewUploaderService(cfg *config.Config) (portssvc.UploaderSvcFacade, error) {
	var store blobStore
	switch cfg.UploadStorage {
	case "s3":
		s3Store, err := newS3Store(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		store = s3Store
	default:
		store = &localDiskStore{dir: cfg.UploadDir}
	}

	return &uploaderService{
		store:       store,
		maxFiles:    cfg.UploadMaxFiles,
		maxFileSize: cfg.UploadMaxFileSize,
	}, nil
}

var _ portssvc.UploaderSvcFacade = (*uploaderService)(nil)

func (s *uploaderService) StoreAll(ctx context.Context, files []portssvc.UploadFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}
	if len(files) > s.maxFiles {
		return nil, apperrors.NewValidationError(fmt.Sprintf("at most %d files per upload", s.maxFiles))
	}

	// Admit every file before storing any; a single bad file rejects the
	// whole batch.
	for _, f := range files {
		contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
		if _, ok := allowedImageTypes[contentType]; !ok {
			return nil, apperrors.NewUnsupportedMediaError(fmt.Sprintf("unsupported file type %q", f.ContentType))
		}
		if f.Size > s.maxFileSize {
			return nil, apperrors.NewPayloadTooLargeError(fmt.Sprintf("file %q exceeds the %d byte limit", f.Name, s.maxFileSize))
		}
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		name, err := utils.UploadFileName(f.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to build upload file name: %w", err)
		}
		url, err := s.store.Store(ctx, name, f.ContentType, f.Data)
		if err != nil {
			slog.ErrorContext(ctx, "upload relay failed", "file", f.Name, "error", err)
			return nil, apperrors.NewUploadFailedError("failed to store uploaded file", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}

// localDiskStore writes files under the configured directory, served by
// the static /uploads route.
type localDiskStore struct {
	dir string
}

func (l *localDiskStore) Store(_ context.Context, name string, _ string, data []byte) (string, error) {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	path := filepath.Join(l.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}
	return "/uploads/" + name, nil
}

// s3Store relays files to an S3-compatible bucket.
type s3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	timeout       time.Duration
}

func newS3Store(cfg *config.Config) (*s3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = &cfg.S3BaseEndpoint
		}
		o.UsePathStyle = cfg.S3BaseEndpoint != ""
	})

	publicBase := strings.TrimRight(cfg.S3PublicBaseURL, "/")
	if publicBase == "" {
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &s3Store{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: publicBase,
		timeout:       cfg.UploadTimeout,
	}, nil
}

func (s *s3Store) Store(ctx context.Context, name string, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &name,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %q: %w", name, err)
	}
	return s.publicBaseURL + "/" + name, nil
}
