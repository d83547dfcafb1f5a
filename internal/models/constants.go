package models

// Injury event types, from most to least specific. The classifier assigns
// exactly one per transaction.
const (
	EventTypeILTransfer   = "il_transfer"
	EventTypeILPlacement  = "il_placement"
	EventTypeILActivation = "il_activation"
	EventTypeRehab        = "rehab_assignment"
	EventTypeInjuryOther  = "injury_other"
	EventTypeNonInjury    = "non_injury"
)

// Injured list day buckets derived from the transaction description.
const (
	BucketSevenDay   = "7-day"
	BucketTenDay     = "10-day"
	BucketFifteenDay = "15-day"
	BucketSixtyDay   = "60-day"
	BucketCovid      = "covid-19"
	BucketConcussion = "concussion"
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionOutputFile = 0644
)
