package utils

import (
	"errors"
	"strings"
	"time"
)

var ErrUnparsableDate = errors.New("unparsable date")

// Accepted input formats, tried in order. The desktop frontend historically
// sent DD/MM/YYYY, the web one YYYY-MM-DD or full RFC3339.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseDate parses a caller-supplied date string and normalizes it: timezone
// stripped, bare dates treated as midnight.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrUnparsableDate
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, ErrUnparsableDate
}

// Normalize strips the timezone, keeping the wall-clock reading in UTC.
// Mixing zoned and bare values without this is a known failure mode of
// range comparison.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// DateOnly truncates to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Nights is the whole-day difference between the check-out and check-in
// dates. Zero or negative means the range is not bookable.
func Nights(checkIn, checkOut time.Time) int {
	return int(DateOnly(checkOut).Sub(DateOnly(checkIn)).Hours() / 24)
}

// RangesOverlap reports whether the half-open ranges [inA, outA) and
// [inB, outB) overlap. Adjacent ranges sharing a boundary do not.
func RangesOverlap(inA, outA, inB, outB time.Time) bool {
	inA, outA = Normalize(inA), Normalize(outA)
	inB, outB = Normalize(inB), Normalize(outB)
	return inA.Before(outB) && inB.Before(outA)
}
