// Package dataset orchestrates the full pipeline: fetch transactions year by
// year, classify and flatten them, sort, filter the injury subset, build the
// daily series and write the three CSV tables.
package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"iltracker/internal/aggregate"
	"iltracker/internal/classifier"
	"iltracker/internal/common"
	"iltracker/internal/dateutils"
	"iltracker/internal/fileutils"
	"iltracker/internal/flatten"
	"iltracker/internal/logging"
	"iltracker/internal/models"
	"iltracker/internal/statsapi"
)

// TransactionFetcher is the slice of the stats API client the builder
// depends on. Tests substitute a fake.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context, startDate, endDate string) ([]statsapi.Transaction, error)
}

// Params control one dataset build.
type Params struct {
	StartYear int
	EndYear   int
	OutDir    string
	// Sleep is the politeness pause in seconds between year fetches.
	Sleep float64
}

// Validate checks the year range. It runs before any network activity.
func (p Params) Validate() error {
	if p.StartYear > p.EndYear {
		return fmt.Errorf("start-year must be <= end-year, got %d > %d", p.StartYear, p.EndYear)
	}
	return nil
}

// Summary reports what a build produced.
type Summary struct {
	FlatPath               string
	InjuryPath             string
	DailyPath              string
	TotalTransactions      int
	InjuryTransactions     int
	NewInjuryRegistrations int
}

// OutputPaths derives the three table paths for a year range.
func OutputPaths(outdir string, startYear, endYear int) (flatPath, injuryPath, dailyPath string) {
	flatPath = filepath.Join(outdir, fmt.Sprintf("mlb_transactions_flat_%d_%d.csv", startYear, endYear))
	injuryPath = filepath.Join(outdir, fmt.Sprintf("mlb_injury_transactions_%d_%d.csv", startYear, endYear))
	dailyPath = filepath.Join(outdir, fmt.Sprintf("mlb_injuries_daily_%d_%d.csv", startYear, endYear))
	return flatPath, injuryPath, dailyPath
}

// Builder drives the pipeline.
type Builder struct {
	fetcher    TransactionFetcher
	classifier *classifier.Classifier
	aggregator *aggregate.DailyAggregator
	logger     logging.Logger
}

// NewBuilder creates a Builder. A nil classifier gets the built-in keyword
// list; a nil logger falls back to the default logger.
func NewBuilder(fetcher TransactionFetcher, cls *classifier.Classifier, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if cls == nil {
		cls = classifier.NewClassifier(logger)
	}
	return &Builder{
		fetcher:    fetcher,
		classifier: cls,
		aggregator: aggregate.NewDailyAggregator(logger),
		logger:     logger,
	}
}

// Build runs the whole pipeline and writes the three tables. Nothing is
// written until every year has been fetched, so a fetch failure leaves no
// partial output behind.
func (b *Builder) Build(ctx context.Context, params Params) (*Summary, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	outdir := params.OutDir
	if outdir == "" {
		outdir = "data"
	}
	if err := fileutils.EnsureDirectoryExists(outdir); err != nil {
		return nil, err
	}

	allRows := make([]models.TransactionRow, 0)
	for year := params.StartYear; year <= params.EndYear; year++ {
		startDate := dateutils.YearStart(year)
		endDate := dateutils.YearEnd(year)

		b.logger.Info("Fetching transactions",
			logging.Field{Key: logging.FieldYear, Value: year})
		transactions, err := b.fetcher.FetchTransactions(ctx, startDate, endDate)
		if err != nil {
			return nil, fmt.Errorf("fetching year %d: %w", year, err)
		}
		b.logger.Info("Fetched transactions",
			logging.Field{Key: logging.FieldYear, Value: year},
			logging.Field{Key: logging.FieldCount, Value: len(transactions)})

		for _, tx := range transactions {
			cls := b.classifier.Classify(tx.Description)
			allRows = append(allRows, flatten.Flatten(tx, cls))
		}

		if year < params.EndYear && params.Sleep > 0 {
			select {
			case <-time.After(time.Duration(params.Sleep * float64(time.Second))):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	sortRows(allRows)

	injuryRows := make([]models.TransactionRow, 0)
	registrations := 0
	for _, row := range allRows {
		if row.IsInjuryRelated == 1 {
			injuryRows = append(injuryRows, row)
			registrations += row.CountAsNewInjuryRegistration
		}
	}

	dailyRows := b.aggregator.BuildSeries(injuryRows, aggregate.YearSpan(params.StartYear, params.EndYear))

	flatPath, injuryPath, dailyPath := OutputPaths(outdir, params.StartYear, params.EndYear)

	if err := common.WriteToCSV(allRows, flatPath); err != nil {
		return nil, fmt.Errorf("writing flat table: %w", err)
	}
	if err := common.WriteToCSV(injuryRows, injuryPath); err != nil {
		return nil, fmt.Errorf("writing injury table: %w", err)
	}
	if err := common.WriteToCSV(dailyRows, dailyPath); err != nil {
		return nil, fmt.Errorf("writing daily table: %w", err)
	}

	return &Summary{
		FlatPath:               flatPath,
		InjuryPath:             injuryPath,
		DailyPath:              dailyPath,
		TotalTransactions:      len(allRows),
		InjuryTransactions:     len(injuryRows),
		NewInjuryRegistrations: registrations,
	}, nil
}

// sortRows orders rows by event date, then transaction id, matching the
// traceability ordering of the output tables. Rows without an event date
// sort first; rows without an id sort as id zero. The sort is stable so
// equal keys keep their fetch order.
func sortRows(rows []models.TransactionRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].EventDate != rows[j].EventDate {
			return rows[i].EventDate < rows[j].EventDate
		}
		return idOrZero(rows[i].TransactionID) < idOrZero(rows[j].TransactionID)
	})
}

func idOrZero(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
