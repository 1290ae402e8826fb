// Package period turns reporting periods into local calendar date ranges.
package period

import (
	"fmt"
	"strings"
	"time"

	"pos_terminal/internal/models"
)

type Period string

const (
	Today Period = "today"
	Week  Period = "week"
	Month Period = "month"
	All   Period = "all"
)

// Parse accepts today, week, month or all, case-insensitively. An empty
// string yields fallback.
func Parse(s string, fallback Period) (Period, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return fallback, nil
	}
	switch p := Period(s); p {
	case Today, Week, Month, All:
		return p, nil
	}
	return "", fmt.Errorf("unknown period %q: want today, week, month or all", s)
}

// days is how many calendar days the period spans, today included.
func (p Period) days() int {
	switch p {
	case Today:
		return 1
	case Week:
		return 7
	case Month:
		return 30
	}
	return 0
}

// Range covers whole local calendar days ending with the day of now.
// All returns an open range.
func (p Period) Range(now time.Time) models.DateRange {
	n := p.days()
	if n == 0 {
		return models.DateRange{}
	}

	tomorrow := StartOfDay(now).AddDate(0, 0, 1)
	return models.DateRange{
		From: tomorrow.AddDate(0, 0, -n),
		To:   tomorrow,
	}
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
