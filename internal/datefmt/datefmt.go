// Package datefmt renders and parses the canonical display date used for
// exercise records ("Mon Jan 02 2006").
package datefmt

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// Layout is the canonical display form stored on every exercise.
const Layout = "Mon Jan 02 2006"

// Invalid is what Normalize returns when the input cannot form a date.
const Invalid = "Invalid Date"

// ErrUnparseable is returned when a string matches none of the accepted layouts.
var ErrUnparseable = errors.New("unparseable date")

// boundaryLayouts are tried in order when parsing log filter bounds.
var boundaryLayouts = []string{
	"2006-1-2", // also matches zero-padded input
	Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Normalize converts an optional "YYYY-MM-DD" string into the display form.
// An empty input renders now. Components are not range checked: month 13 or
// day 32 roll over into the following year or month. Inputs with fewer than
// three components, or with non-integer components, render as Invalid.
func Normalize(input string, now time.Time) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return now.Format(Layout)
	}

	parts := strings.Split(input, "-")
	if len(parts) < 3 {
		return Invalid
	}

	var nums [3]int
	for i := 0; i < 3; i++ {
		n, ok := component(parts[i])
		if !ok {
			return Invalid
		}
		nums[i] = n
	}

	d := time.Date(nums[0], time.Month(nums[1]), nums[2], 0, 0, 0, 0, now.Location())
	return d.Format(Layout)
}

// component parses one date component; an empty component counts as zero.
func component(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseDisplay parses a stored display date at midnight in loc.
func ParseDisplay(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, ErrUnparseable
	}
	return t, nil
}

// ParseBoundary parses a from/to filter value. Date-only forms resolve to
// midnight in loc.
func ParseBoundary(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range boundaryLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseable
}
