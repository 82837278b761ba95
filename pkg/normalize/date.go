package normalize

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format, expected a parsable date string")

// dateLayouts lists the accepted input formats. Only unambiguous layouts are
// included: numeric MM/DD vs DD/MM inputs are rejected rather than guessed.
var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// Date canonicalizes a date string to YYYY-MM-DD using the UTC calendar
// fields of the parsed instant.
func Date(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return parsed.UTC().Format("2006-01-02"), nil
	}

	return "", ErrInvalidDate
}
