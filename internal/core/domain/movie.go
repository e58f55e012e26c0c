package domain

import (
	"strings"
	"time"
)

// Movie represents a movie record and the blobs it points to
type Movie struct {
	ID                string
	Title             string
	VideoFilename     string
	ThumbnailFilename string
	OriginalName      string
	Size              int64
	MimeType          string
	CreatedAt         time.Time

	// URL and ThumbnailURL are derived from the public base url, never persisted
	URL          string
	ThumbnailURL string
}

// Filenames returns the blob names referenced by the movie
func (m Movie) Filenames() []string {
	names := []string{m.VideoFilename}
	if m.ThumbnailFilename != "" {
		names = append(names, m.ThumbnailFilename)
	}
	return names
}

// Decorate fills URL and ThumbnailURL from baseURL
func (m *Movie) Decorate(baseURL string) {
	m.URL = BlobURL(baseURL, m.VideoFilename)
	m.ThumbnailURL = ""
	if m.ThumbnailFilename != "" {
		m.ThumbnailURL = BlobURL(baseURL, m.ThumbnailFilename)
	}
}

// BlobURL returns the public url a blob is delivered from
func BlobURL(baseURL, filename string) string {
	return strings.TrimRight(baseURL, "/") + "/uploads/" + filename
}
