package movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/nishantsir0hi/streamify/internal/config"
	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

type movieService struct {
	repo      port.MovieRepository
	blobs     port.BlobStore
	publisher port.EventPublisher
	uploadCfg config.UploadConfig
	logger    *slog.Logger
	now       func() time.Time
}

// NewMovieService creates a new movie service
func NewMovieService(
	repo port.MovieRepository,
	blobs port.BlobStore,
	publisher port.EventPublisher,
	cfg config.UploadConfig,
	logger *slog.Logger,
) port.MovieService {
	return &movieService{
		repo:      repo,
		blobs:     blobs,
		publisher: publisher,
		uploadCfg: cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// AllowedVideoExtensions is the whitelist of video container extensions
var AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv"}

// AllowedThumbnailExtensions is the whitelist of thumbnail image extensions
var AllowedThumbnailExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

// AllowedThumbnailMimeTypes is the whitelist of thumbnail image MIME types
var AllowedThumbnailMimeTypes = []string{"image/jpeg", "image/png", "image/webp"}

func validateVideo(filename string, contentType string) (string, string, error) {
	ext, err := validateExtension("file", filename, AllowedVideoExtensions)
	if err != nil {
		return "", "", err
	}

	mimeType := extractMimeType(contentType)
	if !strings.HasPrefix(mimeType, "video/") {
		return "", "", fmt.Errorf("%w: file: MIME type must be video/*, got %q", domain.ErrValidation, contentType)
	}
	return ext, mimeType, nil
}

func validateThumbnail(filename string, contentType string) (string, error) {
	ext, err := validateExtension("thumbnail", filename, AllowedThumbnailExtensions)
	if err != nil {
		return "", err
	}

	mimeType := extractMimeType(contentType)
	for _, allowed := range AllowedThumbnailMimeTypes {
		if mimeType == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf(
		"%w: thumbnail: MIME type %q is not allowed (expected one of: %s)",
		domain.ErrValidation, contentType, strings.Join(AllowedThumbnailMimeTypes, ", "),
	)
}

func validateExtension(field string, filename string, allowedExts []string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", fmt.Errorf(
			"%w: %s: no file extension found (expected one of: %s)",
			domain.ErrValidation, field, strings.Join(allowedExts, ", "),
		)
	}

	for _, allowed := range allowedExts {
		if ext == allowed {
			return ext, nil
		}
	}

	return "", fmt.Errorf(
		"%w: %s: extension %s is not allowed (expected one of: %s)",
		domain.ErrValidation, field, ext, strings.Join(allowedExts, ", "),
	)
}

func extractMimeType(contentType string) string {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return strings.ToLower(mimeType)
}

// blobName generates {unixMillis}-{random}{ext} prefixed with prefix
func (s *movieService) blobName(prefix string, ext string) string {
	return fmt.Sprintf("%s%d-%d%s", prefix, s.now().UnixMilli(), rand.Int63n(1_000_000_000), ext)
}

// discard removes blobs written by a failed operation. It runs even when ctx is cancelled.
func (s *movieService) discard(ctx context.Context, names []string) {
	ctx = context.WithoutCancel(ctx)
	for _, name := range names {
		if err := s.blobs.Delete(ctx, name); err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
			s.logger.Error("failed to clean up blob", "filename", name, "error", err)
			continue
		}
		s.logger.Info("cleaned up blob", "filename", name)
	}
}

func (s *movieService) publish(ctx context.Context, eventType domain.MovieEventType, movie domain.Movie) {
	event := domain.NewMovieEvent(eventType, movie, s.now().UTC())
	if err := s.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Warn("failed to publish movie event", "type", eventType, "movie_id", movie.ID, "error", err)
	}
}
