package models

// DailyCount is one day of the dense injury time series. Every calendar day
// in the requested range gets a row, zero-valued when nothing happened.
type DailyCount struct {
	Date                      string `csv:"date"`
	Year                      int    `csv:"year"`
	InjuryRegistrations       int    `csv:"injury_registrations"`
	InjuryRelatedTransactions int    `csv:"injury_related_transactions"`
	ILActivations             int    `csv:"il_activations"`
	ILTransfers               int    `csv:"il_transfers"`
	RehabAssignments          int    `csv:"rehab_assignments"`
}
