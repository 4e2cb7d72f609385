package models_test

import (
	"testing"
	"time"

	"fittrack/models"
)

func TestRangeStartWeek(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
	got := models.RangeStart(models.RangeWeek, now)
	want := time.Date(2024, 5, 8, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("week: expected %v, got %v", want, got)
	}
}

func TestRangeStartMonthClampsDay(t *testing.T) {
	t.Parallel()

	// One month before Mar 31 must stay in February, not normalize forward.
	now := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	got := models.RangeStart(models.RangeMonth, now)
	want := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("month from Mar 31: expected %v, got %v", want, got)
	}

	// Non-leap year clamps to Feb 28.
	now = time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC)
	got = models.RangeStart(models.RangeMonth, now)
	want = time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("month from Mar 31 2023: expected %v, got %v", want, got)
	}

	// A plain date subtracts cleanly.
	now = time.Date(2024, 5, 15, 8, 0, 0, 0, time.UTC)
	got = models.RangeStart(models.RangeMonth, now)
	want = time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("month from May 15: expected %v, got %v", want, got)
	}
}

func TestRangeStartYear(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got := models.RangeStart(models.RangeYear, now)
	want := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("year: expected %v, got %v", want, got)
	}

	// Leap day clamps to Feb 28 the year before.
	now = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	got = models.RangeStart(models.RangeYear, now)
	want = time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("year from leap day: expected %v, got %v", want, got)
	}
}

func TestRangeStartUnknownSymbolDefaultsToWeek(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	got := models.RangeStart("fortnight", now)
	want := now.AddDate(0, 0, -7)
	if !got.Equal(want) {
		t.Fatalf("unknown symbol: expected week fallback %v, got %v", want, got)
	}
}
