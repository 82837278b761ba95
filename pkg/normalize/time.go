package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM (24-hour)")
	ErrInvalidTimeRange  = errors.New("invalid time value, hours must be 0-23 and minutes 0-59")
)

var reClockTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Time canonicalizes a 24-hour clock time to zero-padded HH:MM. The hour may
// be a single digit on input, the minute must always be two digits.
func Time(input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	match := reClockTime.FindStringSubmatch(trimmed)
	if match == nil {
		return "", ErrInvalidTimeFormat
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return "", ErrInvalidTimeRange
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
