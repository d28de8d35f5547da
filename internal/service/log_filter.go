package service

import (
	"alcyxob/exercise-tracker/internal/datefmt"
	"alcyxob/exercise-tracker/internal/domain"
	"time"
)

// FilterLog applies a LogQuery to entries, keeping their order.
//
// When either bound is set, an entry survives iff its date falls in
// [From, To] at millisecond resolution. A missing From is the Unix epoch, a
// missing To is now. A bound or entry date that does not parse matches
// nothing. Limit then keeps the first Limit entries.
func FilterLog(entries []domain.Exercise, q LogQuery, now time.Time) []domain.Exercise {
	out := entries

	if q.From != "" || q.To != "" {
		out = filterByDate(entries, q.From, q.To, now)
	}

	if q.Limit != nil {
		n := *q.Limit
		if n < 0 {
			n = 0
		}
		if n < len(out) {
			out = out[:n]
		}
	}

	if out == nil {
		return []domain.Exercise{}
	}
	return out
}

func filterByDate(entries []domain.Exercise, fromStr, toStr string, now time.Time) []domain.Exercise {
	loc := now.Location()
	filtered := make([]domain.Exercise, 0, len(entries))

	from := time.UnixMilli(0)
	if fromStr != "" {
		t, err := datefmt.ParseBoundary(fromStr, loc)
		if err != nil {
			return filtered
		}
		from = t
	}

	to := now
	if toStr != "" {
		t, err := datefmt.ParseBoundary(toStr, loc)
		if err != nil {
			return filtered
		}
		to = t
	}

	fromMs, toMs := from.UnixMilli(), to.UnixMilli()
	for _, e := range entries {
		t, err := datefmt.ParseDisplay(e.Date, loc)
		if err != nil {
			continue
		}
		if ms := t.UnixMilli(); ms >= fromMs && ms <= toMs {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
