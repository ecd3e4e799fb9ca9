package db

// User is a row of app_user. Roles holds the role names granted to the account
// ("admin", "user", "manager", "validator").
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Roles     []string
}

// Exchange is a row of shift_exchange
type Exchange struct {
	ID              string
	UserID          string
	Date            string // 2006-01-02
	Period          string
	ShiftType       string
	Status          string
	InterestedUsers []string
	Comment         string
}

// History is a row of exchange_history
type History struct {
	ID                 string
	OriginalUserID     string
	NewUserID          string
	Date               string // 2006-01-02
	Period             string
	ShiftType          string
	IsPermutation      bool
	Status             string
	InterestedUsers    []string
	OriginalExchangeID string // empty when the entry did not come from the bag
}

// DistributionProposal is one assignment of a saved distribution run.
// All proposals of a run share a SessionID.
type DistributionProposal struct {
	ID         string
	SessionID  string
	ExchangeID string
	UserID     string
	Score      int
	Strategy   string
	CreatedAt  string // RFC3339
}
