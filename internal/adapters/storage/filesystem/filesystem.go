package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

// Adapter stores blobs as flat files inside a single directory
type Adapter struct {
	dir    string
	logger *slog.Logger
}

var _ port.BlobStore = (*Adapter)(nil)

// NewAdapter returns Adapter, creating dir when missing
func NewAdapter(dir string, logger *slog.Logger) (*Adapter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Adapter{dir: dir, logger: logger}, nil
}

// Dir returns the directory blobs are stored in
func (a *Adapter) Dir() string {
	return a.dir
}

// Save streams r into a new file. Existing files are never overwritten.
func (a *Adapter) Save(ctx context.Context, name string, r io.Reader, _ string, maxSize int64) (int64, error) {
	path, err := a.path(name)
	if err != nil {
		return 0, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, fmt.Errorf("blob %s: %w", name, domain.ErrAlreadyExists)
		}
		return 0, fmt.Errorf("%w: failed to create blob: %w", domain.ErrStorage, err)
	}

	n, copyErr := io.Copy(&storageWriter{w: f}, io.LimitReader(&contextReader{ctx: ctx, r: r}, maxSize+1))
	closeErr := f.Close()

	switch {
	case copyErr != nil:
		a.discard(path)
		return 0, copyErr
	case n > maxSize:
		a.discard(path)
		return 0, fmt.Errorf("%w: more than %d bytes", domain.ErrFileTooLarge, maxSize)
	case closeErr != nil:
		a.discard(path)
		return 0, fmt.Errorf("%w: failed to close blob: %w", domain.ErrStorage, closeErr)
	}

	return n, nil
}

// Open opens a blob for reading
func (a *Adapter) Open(_ context.Context, name string) (port.Blob, error) {
	path, err := a.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, domain.ErrBlobNotFound)
		}
		return nil, fmt.Errorf("%w: failed to open blob: %w", domain.ErrStorage, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: failed to stat blob: %w", domain.ErrStorage, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%s: %w", name, domain.ErrBlobNotFound)
	}

	return &fileBlob{File: f, size: info.Size(), modTime: info.ModTime()}, nil
}

// Delete removes a blob
func (a *Adapter) Delete(_ context.Context, name string) error {
	path, err := a.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", name, domain.ErrBlobNotFound)
		}
		return fmt.Errorf("%w: failed to delete blob: %w", domain.ErrStorage, err)
	}

	a.logger.Info("blob deleted", slog.String("name", name))
	return nil
}

// List returns every regular file in the directory
func (a *Adapter) List(_ context.Context) ([]domain.BlobInfo, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list blobs: %w", domain.ErrStorage, err)
	}

	blobs := make([]domain.BlobInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		blobs = append(blobs, domain.BlobInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return blobs, nil
}

// path resolves a blob name, refusing anything that is not a plain file name
func (a *Adapter) path(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%q: %w", name, domain.ErrBlobNotFound)
	}
	return filepath.Join(a.dir, name), nil
}

func (a *Adapter) discard(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.logger.Error("failed to remove partial blob", "path", path, "error", err)
	}
}

type fileBlob struct {
	*os.File
	size    int64
	modTime time.Time
}

func (b *fileBlob) Size() int64 {
	return b.size
}

func (b *fileBlob) ModTime() time.Time {
	return b.modTime
}

// storageWriter tags write failures so they are not mistaken for read failures of the source
type storageWriter struct {
	w io.Writer
}

func (s *storageWriter) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if err != nil {
		return n, fmt.Errorf("%w: failed to write blob: %w", domain.ErrStorage, err)
	}
	return n, nil
}

type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
