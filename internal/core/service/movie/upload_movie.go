package movie

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

const maxTitleBytes = 512

type storedPart struct {
	filename     string
	originalName string
	mimeType     string
	size         int64
}

type uploadForm struct {
	title     *string
	video     *storedPart
	thumbnail *storedPart
	written   []string
}

func (s *movieService) UploadMovie(ctx context.Context, form *multipart.Reader) (*domain.Movie, error) {
	var upload uploadForm

	movie, err := s.uploadMovie(ctx, form, &upload)
	if err != nil {
		s.discard(ctx, upload.written)
		return nil, err
	}

	s.logger.Info("movie uploaded", "movie_id", movie.ID, "filename", movie.VideoFilename, "size", movie.Size)
	s.publish(ctx, domain.MovieEventCreated, *movie)

	movie.Decorate(s.uploadCfg.BaseURL)
	return movie, nil
}

func (s *movieService) uploadMovie(ctx context.Context, form *multipart.Reader, upload *uploadForm) (*domain.Movie, error) {
	for {
		part, err := form.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrUploadInterrupted, err)
		}

		err = s.receivePart(ctx, part, upload)
		part.Close()
		if err != nil {
			return nil, err
		}
	}

	switch {
	case upload.title == nil:
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	case upload.video == nil:
		return nil, fmt.Errorf("%w: file is required", domain.ErrValidation)
	case upload.thumbnail == nil && s.uploadCfg.RequireThumbnail:
		return nil, fmt.Errorf("%w: thumbnail is required", domain.ErrValidation)
	}

	movie := &domain.Movie{
		Title:         *upload.title,
		VideoFilename: upload.video.filename,
		OriginalName:  upload.video.originalName,
		Size:          upload.video.size,
		MimeType:      upload.video.mimeType,
	}
	if upload.thumbnail != nil {
		movie.ThumbnailFilename = upload.thumbnail.filename
	}

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("%w: could not save movie: %w", domain.ErrPersistence, err)
	}
	return movie, nil
}

func (s *movieService) receivePart(ctx context.Context, part *multipart.Part, upload *uploadForm) error {
	switch part.FormName() {
	case "title":
		if upload.title != nil {
			return fmt.Errorf("%w: title: sent more than once", domain.ErrValidation)
		}
		title, err := readTitle(part)
		if err != nil {
			return err
		}
		upload.title = &title
		return nil

	case "file":
		if upload.video != nil {
			return fmt.Errorf("%w: file: sent more than once", domain.ErrValidation)
		}
		ext, mimeType, err := validateVideo(part.FileName(), part.Header.Get("Content-Type"))
		if err != nil {
			return err
		}
		stored, err := s.store(ctx, part, s.blobName("", ext), mimeType, s.uploadCfg.MaxVideoSize, upload)
		if err != nil {
			return fmt.Errorf("file: %w", err)
		}
		upload.video = stored
		return nil

	case "thumbnail":
		if upload.thumbnail != nil {
			return fmt.Errorf("%w: thumbnail: sent more than once", domain.ErrValidation)
		}
		ext, err := validateThumbnail(part.FileName(), part.Header.Get("Content-Type"))
		if err != nil {
			return err
		}
		stored, err := s.store(ctx, part, s.blobName("thumb-", ext), extractMimeType(part.Header.Get("Content-Type")), s.uploadCfg.MaxThumbnailSize, upload)
		if err != nil {
			return fmt.Errorf("thumbnail: %w", err)
		}
		upload.thumbnail = stored
		return nil

	default:
		if _, err := io.Copy(io.Discard, part); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrUploadInterrupted, err)
		}
		return nil
	}
}

func readTitle(part *multipart.Part) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(part, maxTitleBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUploadInterrupted, err)
	}
	if len(raw) > maxTitleBytes {
		return "", fmt.Errorf("%w: title: longer than %d bytes", domain.ErrValidation, maxTitleBytes)
	}

	title := strings.TrimSpace(string(raw))
	if title == "" {
		return "", fmt.Errorf("%w: title: must not be empty", domain.ErrValidation)
	}
	return title, nil
}

func (s *movieService) store(ctx context.Context, part *multipart.Part, name string, mimeType string, maxSize int64, upload *uploadForm) (*storedPart, error) {
	size, err := s.blobs.Save(ctx, name, part, mimeType, maxSize)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFileTooLarge), errors.Is(err, domain.ErrStorage):
			return nil, err
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
		default:
			// the store only returns untagged errors when reading the body failed
			return nil, fmt.Errorf("%w: %w", domain.ErrUploadInterrupted, err)
		}
	}
	upload.written = append(upload.written, name)

	return &storedPart{
		filename:     name,
		originalName: part.FileName(),
		mimeType:     mimeType,
		size:         size,
	}, nil
}
