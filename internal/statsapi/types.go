package statsapi

// TransactionsResponse is the top-level payload of the transactions endpoint.
type TransactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
}

// Transaction is one raw transaction record as returned by the stats API.
// The endpoint omits fields freely, so identifiers are pointers and nested
// objects may be nil.
type Transaction struct {
	ID             *int64  `json:"id"`
	Date           string  `json:"date"`
	EffectiveDate  string  `json:"effectiveDate"`
	ResolutionDate string  `json:"resolutionDate"`
	TypeCode       string  `json:"typeCode"`
	TypeDesc       string  `json:"typeDesc"`
	Description    string  `json:"description"`
	Person         *Person `json:"person"`
	FromTeam       *Team   `json:"fromTeam"`
	ToTeam         *Team   `json:"toTeam"`
}

// Person identifies the player involved in a transaction.
type Person struct {
	ID       *int64 `json:"id"`
	FullName string `json:"fullName"`
}

// Team identifies a club on either side of a transaction.
type Team struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}
