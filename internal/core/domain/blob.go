package domain

import (
	"io"
	"time"
)

// BlobInfo describes a stored blob
type BlobInfo struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// BlobRange is an inclusive byte window of a blob
type BlobRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes in the window
func (r BlobRange) Length() int64 {
	return r.End - r.Start + 1
}

// BlobStream is an opened blob ready to be delivered.
// Range is nil when the whole blob is served.
type BlobStream struct {
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
	Range       *BlobRange
	Body        io.ReadCloser
}

// ContentLength returns the number of bytes Body yields
func (s *BlobStream) ContentLength() int64 {
	if s.Range != nil {
		return s.Range.Length()
	}
	return s.Size
}

// RangeError reports an unsatisfiable Range header together with the blob size,
// which the caller needs to answer with "Content-Range: bytes */size"
type RangeError struct {
	Size   int64
	Reason string
}

func (e *RangeError) Error() string {
	return ErrRangeNotSatisfiable.Error() + ": " + e.Reason
}

func (e *RangeError) Unwrap() error {
	return ErrRangeNotSatisfiable
}
