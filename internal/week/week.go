// Package week maps calendar dates onto the (month, week number)
// coordinate system used by weekly plans. Weeks start on Monday; week
// numbers are 1-based within a month, with any partial leading week
// counted as week 1. All functions are pure and operate on the date's
// own local calendar components.
package week

import (
	"fmt"
	"time"

	"github.com/enesk/study-planner/internal/model"
)

// dateKeyLayout is the canonical YYYY-MM-DD bucket key format.
const dateKeyLayout = "2006-01-02"

// truncate strips the clock from t, keeping its location.
func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b. Both inputs are
// normalized to UTC midnights first so daylight-saving shifts cannot
// skew the division.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

// Start returns the Monday at or before t, at midnight in t's
// location.
func Start(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, fmt.Errorf("computing week start: %w", model.ErrInvalidDate)
	}

	d := truncate(t)
	offset := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		offset = 6
	}
	return d.AddDate(0, 0, -offset), nil
}

// NumberInMonth returns the 1-based week number of t within its own
// calendar month. A partial week before the month's first Monday
// counts as week 1; from the first Monday on, the number advances
// every seven days.
func NumberInMonth(t time.Time) (int, error) {
	if t.IsZero() {
		return 0, fmt.Errorf("computing week number: %w", model.ErrInvalidDate)
	}

	monday, err := Start(t)
	if err != nil {
		return 0, err
	}

	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	firstMonday := firstOfMonth
	for i := 0; i < 7; i++ {
		candidate := firstOfMonth.AddDate(0, 0, i)
		if candidate.Weekday() == time.Monday {
			firstMonday = candidate
			break
		}
	}

	if monday.Before(firstMonday) {
		return 1, nil
	}
	// A leading partial week occupies slot 1, pushing the first full
	// week to 2.
	base := 1
	if !firstMonday.Equal(firstOfMonth) {
		base = 2
	}
	return daysBetween(firstMonday, monday)/7 + base, nil
}

// Dates returns the Monday-to-Sunday span containing t, in order.
func Dates(t time.Time) ([]time.Time, error) {
	monday, err := Start(t)
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days, nil
}

// Key formats t as the canonical zero-padded YYYY-MM-DD bucket key,
// using the date's own calendar components rather than a UTC
// conversion.
func Key(t time.Time) (string, error) {
	if t.IsZero() {
		return "", fmt.Errorf("formatting date key: %w", model.ErrInvalidDate)
	}
	return t.Format(dateKeyLayout), nil
}

// ParseKey parses a canonical date key back into a local midnight.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date key %q: %w", key, model.ErrInvalidDate)
	}
	return t, nil
}
