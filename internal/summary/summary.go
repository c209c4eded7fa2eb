package summary

import (
	"time"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/models"
)

// topCategoryCount is how many categories survive ranking before the rest
// collapse into the synthetic "Other" bucket.
const topCategoryCount = 3

// Queries are the upstream aggregation queries the summary depends on.
// Implemented by database.Repository.
type Queries interface {
	FetchFinancialData(userID, accountID, from, to string) (*models.PeriodTotals, error)
	GetCategoriesSummary(userID, accountID, from, to string) ([]models.CategorySpend, error)
	GetSummaryActiveDays(userID, accountID, from, to string) ([]models.DayActivity, error)
}

type Service struct {
	queries Queries
}

func NewService(queries Queries) *Service {
	return &Service{queries: queries}
}

// GetSummary computes the period summary for one user: totals for the window,
// percentage changes against the equal-length window before it, the ranked
// category spending, and a dense per-day series. The four upstream queries
// are independent and run concurrently; any failure fails the whole request.
func (s *Service) GetSummary(userID, accountID, from, to string) (*models.SummaryResult, error) {
	period, err := ResolvePeriod(from, to)
	if err != nil {
		return nil, err
	}

	curFrom := period.Start.Format(dateLayout)
	curTo := period.End.Format(dateLayout)
	prevFrom := period.PreviousStart.Format(dateLayout)
	prevTo := period.PreviousEnd.Format(dateLayout)

	var (
		current    *models.PeriodTotals
		previous   *models.PeriodTotals
		categories []models.CategorySpend
		activeDays []models.DayActivity
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		current, err = s.queries.FetchFinancialData(userID, accountID, curFrom, curTo)
		return err
	})
	g.Go(func() error {
		var err error
		previous, err = s.queries.FetchFinancialData(userID, accountID, prevFrom, prevTo)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.queries.GetCategoriesSummary(userID, accountID, curFrom, curTo)
		return err
	})
	g.Go(func() error {
		var err error
		activeDays, err = s.queries.GetSummaryActiveDays(userID, accountID, curFrom, curTo)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.SummaryResult{
		RemainingAmount: current.Remaining,
		RemainingChange: PercentChange(current.Remaining, previous.Remaining),
		IncomeAmount:    current.Income,
		IncomeChange:    PercentChange(current.Income, previous.Income),
		ExpensesAmount:  current.ExpensesNet,
		ExpensesChange:  PercentChange(current.ExpensesNet, previous.ExpensesNet),
		Categories:      RankCategories(categories),
		Days:            FillMissingDays(activeDays, period.Start, period.End),
	}, nil
}

// PercentChange is the relative change from previous to current, in percent.
// A zero baseline cannot be divided by: the change is reported as 0 when both
// values are zero and as a flat 100 otherwise, whatever the magnitude.
func PercentChange(current, previous int64) float64 {
	if previous == 0 {
		if current == previous {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// RankCategories keeps the three largest entries of a descending-sorted
// category list and collapses the remainder into one "Other" entry, appended
// only when its sum is strictly positive. The input is not re-sorted and not
// mutated.
func RankCategories(categories []models.CategorySpend) []models.CategorySpend {
	split := topCategoryCount
	if len(categories) < split {
		split = len(categories)
	}

	ranked := make([]models.CategorySpend, 0, split+1)
	ranked = append(ranked, categories[:split]...)

	var otherSum int64
	for _, c := range categories[split:] {
		otherSum += c.Value
	}
	if otherSum > 0 {
		ranked = append(ranked, models.CategorySpend{Name: "Other", Value: otherSum})
	}
	return ranked
}

// FillMissingDays expands a sparse day series into one entry per calendar day
// of [start, end], ascending. Days present in activeDays are carried over
// verbatim; the rest are synthesized with zero amounts.
//
// A window with no activity at all yields an empty series, not an all-zero
// one. Consumers rely on the asymmetry, so it is kept even though it breaks
// the "always dense" shape of the non-empty case.
func FillMissingDays(activeDays []models.DayActivity, start, end time.Time) []models.DayActivity {
	if len(activeDays) == 0 {
		return []models.DayActivity{}
	}

	byDay := make(map[time.Time]models.DayActivity, len(activeDays))
	for _, d := range activeDays {
		byDay[midnightUTC(d.Date)] = d
	}

	var days []models.DayActivity
	for day := midnightUTC(start); !day.After(midnightUTC(end)); day = day.AddDate(0, 0, 1) {
		if found, ok := byDay[day]; ok {
			days = append(days, found)
		} else {
			days = append(days, models.DayActivity{Date: day})
		}
	}
	return days
}
