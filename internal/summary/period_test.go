package summary

import (
	"errors"
	"testing"
	"time"
)

func TestResolvePeriodExplicitBounds(t *testing.T) {
	now := time.Date(2023, time.June, 15, 12, 0, 0, 0, time.UTC)

	p, err := resolvePeriodAt("2023-01-01", "2023-01-31", now)
	if err != nil {
		t.Fatalf("resolvePeriodAt: %v", err)
	}

	if !p.Start.Equal(day(2023, time.January, 1)) || !p.End.Equal(day(2023, time.January, 31)) {
		t.Fatalf("window = [%v, %v]", p.Start, p.End)
	}
	if p.Days() != 31 {
		t.Fatalf("Days() = %d, want 31", p.Days())
	}
	// 31-day window: the previous block is 2022-12-01..2022-12-31.
	if !p.PreviousStart.Equal(day(2022, time.December, 1)) || !p.PreviousEnd.Equal(day(2022, time.December, 31)) {
		t.Fatalf("previous window = [%v, %v]", p.PreviousStart, p.PreviousEnd)
	}
}

func TestResolvePeriodDefaultsToThirtyDaysEndingToday(t *testing.T) {
	now := time.Date(2023, time.June, 15, 23, 59, 0, 0, time.UTC)

	p, err := resolvePeriodAt("", "", now)
	if err != nil {
		t.Fatalf("resolvePeriodAt: %v", err)
	}

	if !p.End.Equal(day(2023, time.June, 15)) {
		t.Fatalf("End = %v, want today", p.End)
	}
	if !p.Start.Equal(day(2023, time.May, 16)) {
		t.Fatalf("Start = %v, want 30 days before today", p.Start)
	}
}

func TestResolvePeriodPreviousSameLength(t *testing.T) {
	now := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct{ from, to string }{
		{"2023-01-01", "2023-01-01"},
		{"2023-01-01", "2023-01-31"},
		{"2023-02-15", "2023-03-14"}, // crosses a month boundary
		{"2023-03-20", "2023-04-02"}, // crosses a DST change in many zones
		{"2022-12-25", "2023-01-05"}, // crosses a year boundary
		{"", ""},
	}

	for _, tc := range cases {
		p, err := resolvePeriodAt(tc.from, tc.to, now)
		if err != nil {
			t.Fatalf("resolvePeriodAt(%q, %q): %v", tc.from, tc.to, err)
		}
		current := p.End.Sub(p.Start)
		previous := p.PreviousEnd.Sub(p.PreviousStart)
		if current != previous {
			t.Fatalf("window lengths differ for (%q, %q): current %v, previous %v", tc.from, tc.to, current, previous)
		}
		if !p.PreviousEnd.Before(p.Start) {
			t.Fatalf("previous window [%v, %v] overlaps current start %v", p.PreviousStart, p.PreviousEnd, p.Start)
		}
	}
}

func TestResolvePeriodRejectsMalformedDates(t *testing.T) {
	now := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct{ from, to string }{
		{"2023-1-1", "2023-01-31"},
		{"01/01/2023", "2023-01-31"},
		{"2023-01-01", "not-a-date"},
		{"2023-02-30", "2023-03-01"},
	}

	for _, tc := range cases {
		_, err := resolvePeriodAt(tc.from, tc.to, now)
		if !errors.Is(err, ErrInvalidPeriod) {
			t.Fatalf("resolvePeriodAt(%q, %q) err = %v, want ErrInvalidPeriod", tc.from, tc.to, err)
		}
	}
}

func TestResolvePeriodRejectsInvertedBounds(t *testing.T) {
	now := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	_, err := resolvePeriodAt("2023-02-01", "2023-01-01", now)
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}
