package stream_test

import (
	"testing"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
	"github.com/nishantsir0hi/streamify/internal/core/service/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange_Valid(t *testing.T) {
	tests := []struct {
		header string
		size   int64
		want   domain.BlobRange
	}{
		{header: "bytes=100-199", size: 1000, want: domain.BlobRange{Start: 100, End: 199}},
		{header: "bytes=0-", size: 1000, want: domain.BlobRange{Start: 0, End: 999}},
		{header: "bytes=999-", size: 1000, want: domain.BlobRange{Start: 999, End: 999}},
		{header: "bytes=500-5000", size: 1000, want: domain.BlobRange{Start: 500, End: 999}},
		{header: "bytes=-100", size: 1000, want: domain.BlobRange{Start: 900, End: 999}},
		{header: "bytes=-5000", size: 1000, want: domain.BlobRange{Start: 0, End: 999}},
		{header: "bytes=0-0", size: 1, want: domain.BlobRange{Start: 0, End: 0}},
		{header: " bytes= 10 - 20 ", size: 1000, want: domain.BlobRange{Start: 10, End: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := stream.ParseRange(tt.header, tt.size)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange_NotSatisfiable(t *testing.T) {
	tests := []struct {
		name   string
		header string
		size   int64
	}{
		{name: "start past end", header: "bytes=1000-", size: 1000},
		{name: "start after end", header: "bytes=200-100", size: 1000},
		{name: "empty blob", header: "bytes=0-", size: 0},
		{name: "zero suffix", header: "bytes=-0", size: 1000},
		{name: "other unit", header: "items=0-1", size: 1000},
		{name: "multiple ranges", header: "bytes=0-1,5-6", size: 1000},
		{name: "no dash", header: "bytes=100", size: 1000},
		{name: "negative", header: "bytes=--5", size: 1000},
		{name: "signed start", header: "bytes=+1-5", size: 1000},
		{name: "garbage", header: "bytes=abc-def", size: 1000},
		{name: "only dash", header: "bytes=-", size: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stream.ParseRange(tt.header, tt.size)

			require.ErrorIs(t, err, domain.ErrRangeNotSatisfiable)
			var rangeErr *domain.RangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, tt.size, rangeErr.Size)
		})
	}
}
