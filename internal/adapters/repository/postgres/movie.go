package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

// SQLQuerier is satisfied by both *sql.DB and *sql.Tx
type SQLQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlMovieRepository struct {
	db SQLQuerier
}

// NewSqlMovieRepository creates sqlMovieRepository that implements port.MovieRepository
func NewSqlMovieRepository(db SQLQuerier) port.MovieRepository {
	return &sqlMovieRepository{
		db: db,
	}
}

// Create creates new movie entry
func (s *sqlMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now().UTC()
	}
	id := uuid.New()

	query := `INSERT INTO movies (id, title, video_filename, thumbnail_filename, original_name, size_bytes, mime_type, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.db.ExecContext(ctx, query,
		id,
		movie.Title,
		movie.VideoFilename,
		nullString(movie.ThumbnailFilename),
		nullString(movie.OriginalName),
		movie.Size,
		nullString(movie.MimeType),
		movie.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("movie %s : %w", movie.VideoFilename, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting movie: %w", err)
	}

	movie.ID = id.String()
	return nil
}

// FindByID finds by id
func (s *sqlMovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	query := `SELECT id, title, video_filename, thumbnail_filename, original_name, size_bytes, mime_type, created_at
              FROM movies
              WHERE id = $1`

	var dbMovie dbMovie
	err = s.db.QueryRowContext(ctx, query, movieID).Scan(dbMovie.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("error finding movie: %w", err)
	}

	return dbMovie.ToDomain(), nil
}

// List lists all movies, newest first
func (s *sqlMovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	query := `SELECT id, title, video_filename, thumbnail_filename, original_name, size_bytes, mime_type, created_at
              FROM movies
              ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying movies: %w", err)
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)
	for rows.Next() {
		var dbMovie dbMovie
		if err := rows.Scan(dbMovie.fields()...); err != nil {
			return nil, fmt.Errorf("error scanning movie: %w", err)
		}
		movies = append(movies, *dbMovie.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}

	return movies, nil
}

// Delete deletes the movie row
func (s *sqlMovieRepository) Delete(ctx context.Context, id string) error {
	movieID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, movieID)
	if err != nil {
		return fmt.Errorf("error deleting movie: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// dbMovie represents a movie in DB
type dbMovie struct {
	ID                uuid.UUID      `db:"id"`
	Title             string         `db:"title"`
	VideoFilename     string         `db:"video_filename"`
	ThumbnailFilename sql.NullString `db:"thumbnail_filename"`
	OriginalName      sql.NullString `db:"original_name"`
	Size              int64          `db:"size_bytes"`
	MimeType          sql.NullString `db:"mime_type"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (m *dbMovie) fields() []any {
	return []any{
		&m.ID,
		&m.Title,
		&m.VideoFilename,
		&m.ThumbnailFilename,
		&m.OriginalName,
		&m.Size,
		&m.MimeType,
		&m.CreatedAt,
	}
}

// ToDomain converts to domain.Movie
func (m *dbMovie) ToDomain() *domain.Movie {
	return &domain.Movie{
		ID:                m.ID.String(),
		Title:             m.Title,
		VideoFilename:     m.VideoFilename,
		ThumbnailFilename: m.ThumbnailFilename.String,
		OriginalName:      m.OriginalName.String,
		Size:              m.Size,
		MimeType:          m.MimeType.String,
		CreatedAt:         m.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
