package summary

import (
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Default window when the caller sends no bounds: the 30 days ending today.
// Shared with the transaction listing so the two defaults cannot drift.
const defaultWindowDays = 30

// ErrInvalidPeriod marks caller errors: unparseable bounds or from after to.
var ErrInvalidPeriod = errors.New("invalid period")

// Period is an inclusive aggregation window plus the window of equal length
// immediately before it. All four bounds are midnight UTC.
type Period struct {
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// Days returns the inclusive day count of the window.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours()/24) + 1
}

// ResolvePeriod turns optional from/to bounds (yyyy-mm-dd) into a concrete
// window. Absent bounds default to the 30 days ending today.
func ResolvePeriod(from, to string) (Period, error) {
	return resolvePeriodAt(from, to, time.Now())
}

func resolvePeriodAt(from, to string, now time.Time) (Period, error) {
	end := midnightUTC(now)
	start := end.AddDate(0, 0, -defaultWindowDays)

	var err error
	if from != "" {
		if start, err = parseDate(from); err != nil {
			return Period{}, err
		}
	}
	if to != "" {
		if end, err = parseDate(to); err != nil {
			return Period{}, err
		}
	}
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: from %s after to %s", ErrInvalidPeriod, from, to)
	}

	// The previous window is derived by shifting each bound back by the
	// window's inclusive day count. With midnight-UTC bounds the subtraction
	// is exact, so both windows always have the same length.
	length := int(end.Sub(start).Hours()/24) + 1
	return Period{
		Start:         start,
		End:           end,
		PreviousStart: start.AddDate(0, 0, -length),
		PreviousEnd:   end.AddDate(0, 0, -length),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a yyyy-mm-dd date", ErrInvalidPeriod, s)
	}
	return t, nil
}

func midnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
