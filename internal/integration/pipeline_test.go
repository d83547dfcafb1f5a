// Package integration exercises the whole pipeline against a stub HTTP
// server: fetching, classification, flattening, aggregation and CSV output
// wired together through the container.
package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iltracker/internal/config"
	"iltracker/internal/container"
	"iltracker/internal/dataset"
	"iltracker/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	flatHeader  = "transaction_id,api_date,effective_date,resolution_date,event_date,year,type_code,type_desc,description,person_id,person_name,from_team_id,from_team_name,to_team_id,to_team_name,is_injury_related,injury_event_type,is_il_placement,is_il_activation,is_il_transfer,is_rehab_assignment,is_covid_il,il_days_bucket,count_as_new_injury_registration"
	dailyHeader = "date,year,injury_registrations,injury_related_transactions,il_activations,il_transfers,rehab_assignments"
)

const payload2021 = `{
	"transactions": [
		{
			"id": 662646,
			"date": "2021-07-08",
			"effectiveDate": "2021-07-08",
			"typeCode": "SC",
			"typeDesc": "Status Change",
			"description": "Los Angeles Dodgers placed RHP Player X on the 10-day injured list. Right forearm inflammation.",
			"person": {"id": 605483, "fullName": "Player X"},
			"toTeam": {"id": 119, "name": "Los Angeles Dodgers"}
		},
		{
			"id": 662700,
			"date": "2021-07-19",
			"typeCode": "SC",
			"typeDesc": "Status Change",
			"description": "Los Angeles Dodgers activated RHP Player X from the 10-day injured list.",
			"person": {"id": 605483, "fullName": "Player X"},
			"toTeam": {"id": 119, "name": "Los Angeles Dodgers"}
		},
		{
			"id": 662800,
			"date": "2021-07-20",
			"typeCode": "CLW",
			"typeDesc": "Claimed Off Waivers",
			"description": "New York Yankees claimed 1B Player Y off waivers from the Boston Red Sox.",
			"person": {"id": 543333, "fullName": "Player Y"},
			"fromTeam": {"id": 111, "name": "Boston Red Sox"},
			"toTeam": {"id": 147, "name": "New York Yankees"}
		}
	]
}`

// transactionsServer serves a canned payload per year, keyed on the first
// four characters of the startDate query parameter. Requests for years
// without a fixture get a 500, which the client surfaces as a fetch error.
func transactionsServer(t *testing.T, byYear map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startDate := r.URL.Query().Get("startDate")
		if len(startDate) < 4 {
			http.Error(w, "missing startDate", http.StatusInternalServerError)
			return
		}
		payload, ok := byYear[startDate[:4]]
		if !ok {
			http.Error(w, "no fixture for "+startDate, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
}

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Log.Format = "text"
	cfg.API.BaseURL = baseURL
	cfg.API.SportID = 1
	cfg.API.TimeoutSeconds = 5
	cfg.API.MaxAttempts = 1
	cfg.API.RetryPauseSeconds = 0.001
	cfg.CSV.Delimiter = ","
	cfg.Output.Directory = "data"
	return cfg
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(content), "\n"), "\n")
}

func TestPipeline_EndToEnd(t *testing.T) {
	server := transactionsServer(t, map[string]string{"2021": payload2021})
	defer server.Close()

	deps, err := container.NewContainer(testConfig(server.URL), &logging.MockLogger{}, "")
	require.NoError(t, err)

	outdir := t.TempDir()
	summary, err := deps.GetBuilder().Build(context.Background(), dataset.Params{
		StartYear: 2021,
		EndYear:   2021,
		OutDir:    outdir,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalTransactions)
	assert.Equal(t, 2, summary.InjuryTransactions)
	assert.Equal(t, 1, summary.NewInjuryRegistrations)
	assert.Equal(t, filepath.Join(outdir, "mlb_transactions_flat_2021_2021.csv"), summary.FlatPath)
	assert.Equal(t, filepath.Join(outdir, "mlb_injury_transactions_2021_2021.csv"), summary.InjuryPath)
	assert.Equal(t, filepath.Join(outdir, "mlb_injuries_daily_2021_2021.csv"), summary.DailyPath)

	flatLines := readLines(t, summary.FlatPath)
	require.Len(t, flatLines, 4)
	assert.Equal(t, flatHeader, flatLines[0])
	assert.Equal(t,
		"662646,2021-07-08,2021-07-08,,2021-07-08,2021,SC,Status Change,"+
			"Los Angeles Dodgers placed RHP Player X on the 10-day injured list. Right forearm inflammation.,"+
			"605483,Player X,,,119,Los Angeles Dodgers,1,il_placement,1,0,0,0,0,10-day,1",
		flatLines[1])

	injuryLines := readLines(t, summary.InjuryPath)
	require.Len(t, injuryLines, 3)
	assert.Equal(t, flatHeader, injuryLines[0], "both transaction tables share one schema")
	for _, line := range injuryLines[1:] {
		assert.NotContains(t, line, "Player Y", "non-injury rows must not reach the injury table")
	}

	dailyLines := readLines(t, summary.DailyPath)
	require.Len(t, dailyLines, 366, "header plus one row per 2021 calendar day")
	assert.Equal(t, dailyHeader, dailyLines[0])
	assert.Equal(t, "2021-01-01,2021,0,0,0,0,0", dailyLines[1])
	assert.Contains(t, dailyLines, "2021-07-08,2021,1,1,0,0,0")
	assert.Contains(t, dailyLines, "2021-07-19,2021,0,1,1,0,0")
	assert.Equal(t, "2021-12-31,2021,0,0,0,0,0", dailyLines[365])
}

func TestPipeline_KeywordFileWidensClassification(t *testing.T) {
	payload := `{
		"transactions": [
			{
				"id": 700001,
				"date": "2022-05-02",
				"typeCode": "SC",
				"typeDesc": "Status Change",
				"description": "Player Z is listed as day-to-day with a bruised hand."
			}
		]
	}`
	server := transactionsServer(t, map[string]string{"2022": payload})
	defer server.Close()

	keywordsFile := filepath.Join(t.TempDir(), "keywords.yaml")
	require.NoError(t, os.WriteFile(keywordsFile, []byte("injury_keywords:\n  - day-to-day\n"), 0o600))

	deps, err := container.NewContainer(testConfig(server.URL), &logging.MockLogger{}, keywordsFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"day-to-day"}, deps.GetClassifier().Keywords())

	outdir := t.TempDir()
	summary, err := deps.GetBuilder().Build(context.Background(), dataset.Params{
		StartYear: 2022,
		EndYear:   2022,
		OutDir:    outdir,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, 1, summary.InjuryTransactions)
	assert.Equal(t, 0, summary.NewInjuryRegistrations, "keyword mentions are not IL placements")

	injuryLines := readLines(t, summary.InjuryPath)
	require.Len(t, injuryLines, 2)
	assert.Contains(t, injuryLines[1], "injury_other")
}

func TestPipeline_UpstreamFailureLeavesNoFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	deps, err := container.NewContainer(testConfig(server.URL), &logging.MockLogger{}, "")
	require.NoError(t, err)

	outdir := t.TempDir()
	_, err = deps.GetBuilder().Build(context.Background(), dataset.Params{
		StartYear: 2021,
		EndYear:   2021,
		OutDir:    outdir,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetching year 2021")

	entries, err := os.ReadDir(outdir)
	require.NoError(t, err)
	assert.Empty(t, entries, "a failed build must not leave partial tables")
}
