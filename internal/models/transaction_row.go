// Package models defines the data structures shared across the application:
// the flattened transaction row, the daily time-series row and the
// classification constants.
package models

// TransactionRow is one transaction flattened to the shape of the output CSV
// files. Column order follows field order. Pointer fields render as empty
// cells when the source value is absent; boolean flags serialize as 0/1.
type TransactionRow struct {
	TransactionID                *int64 `csv:"transaction_id"`
	APIDate                      string `csv:"api_date"`
	EffectiveDate                string `csv:"effective_date"`
	ResolutionDate               string `csv:"resolution_date"`
	EventDate                    string `csv:"event_date"`
	Year                         *int   `csv:"year"`
	TypeCode                     string `csv:"type_code"`
	TypeDesc                     string `csv:"type_desc"`
	Description                  string `csv:"description"`
	PersonID                     *int64 `csv:"person_id"`
	PersonName                   string `csv:"person_name"`
	FromTeamID                   *int64 `csv:"from_team_id"`
	FromTeamName                 string `csv:"from_team_name"`
	ToTeamID                     *int64 `csv:"to_team_id"`
	ToTeamName                   string `csv:"to_team_name"`
	IsInjuryRelated              int    `csv:"is_injury_related"`
	InjuryEventType              string `csv:"injury_event_type"`
	IsILPlacement                int    `csv:"is_il_placement"`
	IsILActivation               int    `csv:"is_il_activation"`
	IsILTransfer                 int    `csv:"is_il_transfer"`
	IsRehabAssignment            int    `csv:"is_rehab_assignment"`
	IsCovidIL                    int    `csv:"is_covid_il"`
	ILDaysBucket                 string `csv:"il_days_bucket"`
	CountAsNewInjuryRegistration int    `csv:"count_as_new_injury_registration"`
}
