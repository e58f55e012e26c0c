package movie

import (
	"time"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// V1MovieResponse is a movie record as returned to clients
type V1MovieResponse struct {
	ID                string    `json:"_id"`
	Title             string    `json:"title"`
	VideoFilename     string    `json:"videoFilename"`
	ThumbnailFilename string    `json:"thumbnailFilename,omitempty"`
	OriginalName      string    `json:"originalName,omitempty"`
	Size              int64     `json:"size"`
	MimeType          string    `json:"mimeType,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	URL               string    `json:"url"`
	ThumbnailURL      string    `json:"thumbnailUrl,omitempty"`
}

func toResponse(m domain.Movie) V1MovieResponse {
	return V1MovieResponse{
		ID:                m.ID,
		Title:             m.Title,
		VideoFilename:     m.VideoFilename,
		ThumbnailFilename: m.ThumbnailFilename,
		OriginalName:      m.OriginalName,
		Size:              m.Size,
		MimeType:          m.MimeType,
		CreatedAt:         m.CreatedAt,
		URL:               m.URL,
		ThumbnailURL:      m.ThumbnailURL,
	}
}
