package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/nishantsir0hi/streamify/internal/config"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

// partSize bounds the memory buffered per upload when the object size is unknown
const partSize = 16 << 20

// Adapter is an adapter for minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

var _ port.BlobStore = (*Adapter)(nil)

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Save uploads r as a new object. The size is unknown up front, so the ceiling is
// enforced by reading at most maxSize+1 bytes and removing the object when it is exceeded.
func (a *Adapter) Save(ctx context.Context, name string, r io.Reader, contentType string, maxSize int64) (int64, error) {
	if _, err := a.client.StatObject(ctx, a.config.BucketName, name, minio.StatObjectOptions{}); err == nil {
		return 0, fmt.Errorf("blob %s: %w", name, domain.ErrAlreadyExists)
	}

	src := &sourceReader{r: r}
	info, err := a.client.PutObject(ctx, a.config.BucketName, name, io.LimitReader(src, maxSize+1), -1, minio.PutObjectOptions{
		ContentType: contentType,
		PartSize:    partSize,
	})
	if err != nil {
		if src.err != nil {
			return 0, src.err
		}
		return 0, fmt.Errorf("%w: failed to put object: %w", domain.ErrStorage, err)
	}

	if info.Size > maxSize {
		a.discard(name)
		return 0, fmt.Errorf("%w: more than %d bytes", domain.ErrFileTooLarge, maxSize)
	}

	return info.Size, nil
}

// Open retrieves an obj, seeking is served by ranged GETs
func (a *Adapter) Open(ctx context.Context, name string) (port.Blob, error) {
	object, err := a.client.GetObject(ctx, a.config.BucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, a.translate(name, "failed to get object", err)
	}

	info, err := object.Stat()
	if err != nil {
		object.Close()
		return nil, a.translate(name, "failed to get object info", err)
	}

	return &objectBlob{Object: object, size: info.Size, modTime: info.LastModified}, nil
}

// Delete deletes an object from storage
func (a *Adapter) Delete(ctx context.Context, name string) error {
	if _, err := a.client.StatObject(ctx, a.config.BucketName, name, minio.StatObjectOptions{}); err != nil {
		return a.translate(name, "failed to get object info", err)
	}

	err := a.client.RemoveObject(ctx, a.config.BucketName, name, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("%w: failed to delete object: %w", domain.ErrStorage, err)
	}

	a.logger.Info("object deleted",
		slog.String("fileKey", name),
		slog.String("bucket", a.config.BucketName))

	return nil
}

// List lists every object in the bucket
func (a *Adapter) List(ctx context.Context) ([]domain.BlobInfo, error) {
	var blobs []domain.BlobInfo
	for object := range a.client.ListObjects(ctx, a.config.BucketName, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, fmt.Errorf("%w: failed to list objects: %w", domain.ErrStorage, object.Err)
		}
		blobs = append(blobs, domain.BlobInfo{
			Name:    object.Key,
			Size:    object.Size,
			ModTime: object.LastModified,
		})
	}
	return blobs, nil
}

func (a *Adapter) translate(name, msg string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" {
		return fmt.Errorf("%s: %w", name, domain.ErrBlobNotFound)
	}
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, msg, err)
}

func (a *Adapter) discard(name string) {
	// the caller's context may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.client.RemoveObject(ctx, a.config.BucketName, name, minio.RemoveObjectOptions{}); err != nil {
		a.logger.Error("failed to remove oversized object", "fileKey", name, "error", err)
	}
}

type objectBlob struct {
	*minio.Object
	size    int64
	modTime time.Time
}

func (b *objectBlob) Size() int64 {
	return b.size
}

func (b *objectBlob) ModTime() time.Time {
	return b.modTime
}

// sourceReader remembers the upstream read error so it is not reported as a storage failure
type sourceReader struct {
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	n, err := s.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
	return n, err
}
