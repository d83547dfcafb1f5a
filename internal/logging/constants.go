package logging

// Standardized field names for structured logging. Keeping them in one place
// makes the log output consistent and easy to filter.
const (
	FieldFile          = "file_path"
	FieldURL           = "url"
	FieldYear          = "year"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldAttempt       = "attempt"
	FieldTransactionID = "transaction_id"
	FieldEventType     = "event_type"
	FieldStatus        = "status"
	FieldError         = "error"
	FieldCount         = "count"
	FieldDelimiter     = "delimiter"
	FieldOutputFile    = "output_file"
)
