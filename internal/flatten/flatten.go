// Package flatten maps raw stats API transactions onto the flat CSV row
// shape, combining the record fields with their injury classification.
package flatten

import (
	"iltracker/internal/classifier"
	"iltracker/internal/dateutils"
	"iltracker/internal/models"
	"iltracker/internal/statsapi"
)

// EventDate picks the canonical date of a transaction: the API date when
// present, otherwise the effective date, otherwise the resolution date.
// A record can carry none of the three, in which case it is empty.
func EventDate(tx statsapi.Transaction) string {
	if tx.Date != "" {
		return tx.Date
	}
	if tx.EffectiveDate != "" {
		return tx.EffectiveDate
	}
	return tx.ResolutionDate
}

// Flatten builds the output row for one transaction and its classification.
func Flatten(tx statsapi.Transaction, cls classifier.Classification) models.TransactionRow {
	eventDate := EventDate(tx)

	row := models.TransactionRow{
		TransactionID:                tx.ID,
		APIDate:                      tx.Date,
		EffectiveDate:                tx.EffectiveDate,
		ResolutionDate:               tx.ResolutionDate,
		EventDate:                    eventDate,
		Year:                         dateutils.YearOf(eventDate),
		TypeCode:                     tx.TypeCode,
		TypeDesc:                     tx.TypeDesc,
		Description:                  tx.Description,
		IsInjuryRelated:              boolToInt(cls.IsInjuryRelated),
		InjuryEventType:              cls.EventType,
		IsILPlacement:                boolToInt(cls.IsILPlacement),
		IsILActivation:               boolToInt(cls.IsILActivation),
		IsILTransfer:                 boolToInt(cls.IsILTransfer),
		IsRehabAssignment:            boolToInt(cls.IsRehabAssignment),
		IsCovidIL:                    boolToInt(cls.IsCovidIL),
		ILDaysBucket:                 cls.ILDaysBucket,
		CountAsNewInjuryRegistration: boolToInt(cls.CountAsNewInjuryRegistration),
	}

	if tx.Person != nil {
		row.PersonID = tx.Person.ID
		row.PersonName = tx.Person.FullName
	}
	if tx.FromTeam != nil {
		row.FromTeamID = tx.FromTeam.ID
		row.FromTeamName = tx.FromTeam.Name
	}
	if tx.ToTeam != nil {
		row.ToTeamID = tx.ToTeam.ID
		row.ToTeamName = tx.ToTeam.Name
	}

	return row
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
