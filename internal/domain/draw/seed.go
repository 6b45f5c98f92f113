package draw

import (
	"fmt"
	"strings"
	"time"

	"github.com/okian/fairdraw/internal/domain/model"
)

// closedAtLayout renders an instant as ISO-8601 UTC with millisecond
// precision, e.g. 2025-07-01T12:00:00.000Z. Stripping non-digits always
// yields 17 digits (yyyyMMddHHmmssSSS).
const closedAtLayout = "2006-01-02T15:04:05.000Z"

// BuildSeed derives the canonical seed string from an already-normalized
// participant sequence, the closing instant, and the draw slug:
//
//	fingerprint = join("|", username + ":" + uuid)
//	seed        = fingerprint + "_" + digits(ISO-8601 UTC ms of closedAt) + "_" + slug
//
// The separators, field order, and millisecond precision are the
// compatibility contract; any deviation selects a different winner.
func BuildSeed(normalized []model.Participant, closedAt time.Time, slug string) (string, error) {
	if closedAt.IsZero() {
		return "", fmt.Errorf("%w: closedAt is not a valid instant", ErrInvalidInput)
	}

	parts := make([]string, len(normalized))
	for i, p := range normalized {
		parts[i] = p.Username + ":" + p.UUID
	}
	fingerprint := strings.Join(parts, "|")

	return fingerprint + "_" + timestampDigits(closedAt) + "_" + slug, nil
}

// timestampDigits formats closedAt in UTC with millisecond precision and
// strips everything that is not a decimal digit.
func timestampDigits(closedAt time.Time) string {
	iso := closedAt.UTC().Format(closedAtLayout)
	var b strings.Builder
	b.Grow(len(iso))
	for _, r := range iso {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatClosedAt returns the ISO-8601 UTC millisecond rendering of
// closedAt, the form carried in DrawResult.Timestamp.
func FormatClosedAt(closedAt time.Time) string {
	return closedAt.UTC().Format(closedAtLayout)
}
