package stream

import (
	"strconv"
	"strings"

	"github.com/nishantsir0hi/streamify/internal/core/domain"
)

// ParseRange parses a single "bytes=" range against a blob of size bytes.
// It accepts "start-", "start-end" and "-suffix", clamps end to the last byte
// and rejects everything else with a *domain.RangeError.
func ParseRange(header string, size int64) (domain.BlobRange, error) {
	fail := func(reason string) (domain.BlobRange, error) {
		return domain.BlobRange{}, &domain.RangeError{Size: size, Reason: reason}
	}

	byteRanges, ok := strings.CutPrefix(strings.TrimSpace(header), "bytes=")
	if !ok {
		return fail("unsupported range unit")
	}
	if strings.Contains(byteRanges, ",") {
		return fail("multiple ranges are not supported")
	}

	startStr, endStr, ok := strings.Cut(strings.TrimSpace(byteRanges), "-")
	if !ok {
		return fail("malformed range")
	}
	startStr, endStr = strings.TrimSpace(startStr), strings.TrimSpace(endStr)

	if size <= 0 {
		return fail("empty blob")
	}

	if startStr == "" {
		suffix, ok := parseOffset(endStr)
		if !ok || suffix == 0 {
			return fail("malformed suffix range")
		}
		if suffix > size {
			suffix = size
		}
		return domain.BlobRange{Start: size - suffix, End: size - 1}, nil
	}

	start, ok := parseOffset(startStr)
	if !ok {
		return fail("malformed range start")
	}
	if start >= size {
		return fail("range starts past the end of the blob")
	}

	end := size - 1
	if endStr != "" {
		end, ok = parseOffset(endStr)
		if !ok {
			return fail("malformed range end")
		}
		if end < start {
			return fail("range end before start")
		}
		if end > size-1 {
			end = size - 1
		}
	}

	return domain.BlobRange{Start: start, End: end}, nil
}

func parseOffset(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
