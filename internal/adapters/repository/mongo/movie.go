package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/port"
)

type movieRepository struct {
	collection *mongo.Collection
}

// NewMovieRepository creates movieRepository that implements port.MovieRepository
// and makes sure the collection indexes exist
func NewMovieRepository(ctx context.Context, collection *mongo.Collection) (port.MovieRepository, error) {
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "videoFilename", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("videoFilename_unique"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("createdAt_desc"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error creating movie indexes: %w", err)
	}
	return &movieRepository{collection: collection}, nil
}

// Create inserts a new movie document
func (r *movieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	if movie.CreatedAt.IsZero() {
		movie.CreatedAt = time.Now().UTC()
	}

	doc := fromDomain(movie)
	doc.ID = primitive.NewObjectID()

	_, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("movie %s : %w", movie.VideoFilename, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("error inserting movie: %w", err)
	}

	movie.ID = doc.ID.Hex()
	return nil
}

// FindByID finds by id, ids that are not object ids are never found
func (r *movieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMovieNotFound
	}

	var doc movieDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, fmt.Errorf("error finding movie: %w", err)
	}

	return doc.ToDomain(), nil
}

// List returns all movies, newest first
func (r *movieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying movies: %w", err)
	}
	defer cursor.Close(ctx)

	movies := make([]domain.Movie, 0)
	for cursor.Next(ctx) {
		var doc movieDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding movie: %w", err)
		}
		movies = append(movies, *doc.ToDomain())
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}

	return movies, nil
}

// Delete removes the movie document
func (r *movieRepository) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrMovieNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("error deleting movie: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// movieDocument represents a movie in the collection
type movieDocument struct {
	ID                primitive.ObjectID `bson:"_id"`
	Title             string             `bson:"title"`
	VideoFilename     string             `bson:"videoFilename"`
	ThumbnailFilename string             `bson:"thumbnailFilename,omitempty"`
	OriginalName      string             `bson:"originalName,omitempty"`
	Size              int64              `bson:"size,omitempty"`
	MimeType          string             `bson:"mimeType,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"`
}

func fromDomain(m *domain.Movie) movieDocument {
	return movieDocument{
		Title:             m.Title,
		VideoFilename:     m.VideoFilename,
		ThumbnailFilename: m.ThumbnailFilename,
		OriginalName:      m.OriginalName,
		Size:              m.Size,
		MimeType:          m.MimeType,
		CreatedAt:         m.CreatedAt,
	}
}

// ToDomain converts to domain.Movie
func (d *movieDocument) ToDomain() *domain.Movie {
	return &domain.Movie{
		ID:                d.ID.Hex(),
		Title:             d.Title,
		VideoFilename:     d.VideoFilename,
		ThumbnailFilename: d.ThumbnailFilename,
		OriginalName:      d.OriginalName,
		Size:              d.Size,
		MimeType:          d.MimeType,
		CreatedAt:         d.CreatedAt,
	}
}
