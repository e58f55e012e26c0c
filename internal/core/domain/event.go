package domain

import "time"

// MovieEventType is a type that represents the type of a movie lifecycle event
type MovieEventType string

const (
	MovieEventCreated MovieEventType = "created"
	MovieEventDeleted MovieEventType = "deleted"
)

// MovieEvent is published after a movie record is created or deleted
type MovieEvent struct {
	Type              MovieEventType `json:"type"`
	MovieID           string         `json:"movieId"`
	Title             string         `json:"title"`
	VideoFilename     string         `json:"videoFilename"`
	ThumbnailFilename string         `json:"thumbnailFilename,omitempty"`
	OccurredAt        time.Time      `json:"occurredAt"`
}

// NewMovieEvent builds an event for the given movie
func NewMovieEvent(eventType MovieEventType, movie Movie, at time.Time) MovieEvent {
	return MovieEvent{
		Type:              eventType,
		MovieID:           movie.ID,
		Title:             movie.Title,
		VideoFilename:     movie.VideoFilename,
		ThumbnailFilename: movie.ThumbnailFilename,
		OccurredAt:        at,
	}
}
