// Package aggregate turns the flattened injury rows into the dense daily
// time series. Dense means one row for every calendar day of the requested
// span, zero-filled, so downstream time-series tooling never sees gaps.
package aggregate

import (
	"time"

	"iltracker/internal/dateutils"
	"iltracker/internal/logging"
	"iltracker/internal/models"
)

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// YearSpan builds the range covering January 1 of startYear through
// December 31 of endYear.
func YearSpan(startYear, endYear int) DateRange {
	return DateRange{
		Start: time.Date(startYear, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(endYear, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Days returns the number of calendar days in the range.
func (r DateRange) Days() int {
	days := int(r.End.Sub(r.Start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// DailyAggregator accumulates injury rows into per-day counters.
type DailyAggregator struct {
	logger logging.Logger
}

// NewDailyAggregator creates a DailyAggregator. A nil logger falls back to
// the default logger.
func NewDailyAggregator(logger logging.Logger) *DailyAggregator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &DailyAggregator{logger: logger}
}

type dayCounters struct {
	registrations int
	transactions  int
	activations   int
	transfers     int
	rehabs        int
}

// BuildSeries groups the injury rows by event date and emits one row per
// calendar day of the span in ascending order. Days without events keep all
// counters at zero. Rows without an event date cannot be bucketed and are
// counted nowhere.
func (a *DailyAggregator) BuildSeries(injuryRows []models.TransactionRow, span DateRange) []models.DailyCount {
	byDay := make(map[string]*dayCounters)
	dropped := 0
	for _, row := range injuryRows {
		if row.EventDate == "" {
			dropped++
			continue
		}
		counters := byDay[row.EventDate]
		if counters == nil {
			counters = &dayCounters{}
			byDay[row.EventDate] = counters
		}
		counters.transactions++
		counters.registrations += row.CountAsNewInjuryRegistration
		counters.activations += row.IsILActivation
		counters.transfers += row.IsILTransfer
		counters.rehabs += row.IsRehabAssignment
	}
	if dropped > 0 {
		a.logger.Warn("Dropped rows without event date from daily series",
			logging.Field{Key: logging.FieldCount, Value: dropped})
	}

	series := make([]models.DailyCount, 0, span.Days())
	for day := span.Start; !day.After(span.End); day = day.AddDate(0, 0, 1) {
		key := dateutils.ToISODate(day)
		row := models.DailyCount{
			Date: key,
			Year: day.Year(),
		}
		if counters, ok := byDay[key]; ok {
			row.InjuryRegistrations = counters.registrations
			row.InjuryRelatedTransactions = counters.transactions
			row.ILActivations = counters.activations
			row.ILTransfers = counters.transfers
			row.RehabAssignments = counters.rehabs
		}
		series = append(series, row)
	}

	a.logger.Debug("Built daily series",
		logging.Field{Key: logging.FieldCount, Value: len(series)})
	return series
}
