package model

// Period is one of the three fixed slots of a day
type Period string

const (
	PeriodMorning   Period = "M"
	PeriodAfternoon Period = "AM"
	PeriodEvening   Period = "S"
)

// Periods lists the fixed slots in display order
var Periods = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

func (p Period) IsValid() bool {
	return p == PeriodMorning || p == PeriodAfternoon || p == PeriodEvening
}

// ExchangeStatus is the lifecycle status of a shift offered on the bag
type ExchangeStatus string

const (
	ExchangePending     ExchangeStatus = "pending"
	ExchangeValidated   ExchangeStatus = "validated"
	ExchangeCancelled   ExchangeStatus = "cancelled"
	ExchangeUnavailable ExchangeStatus = "unavailable"
)

// HistoryCompleted is the only history status counted in statistics
const HistoryCompleted = "completed"

// Roles holds the role flags of a practitioner account
type Roles struct {
	IsAdmin     bool
	IsUser      bool
	IsManager   bool
	IsValidator bool
}

// User represents a practitioner account
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Roles     Roles
}

// IsParticipant returns true if the user takes part in exchanges.
// Pure administrators do not.
func (u User) IsParticipant() bool {
	return u.Roles.IsUser || u.Roles.IsManager || u.Roles.IsValidator
}

// ShiftExchange is a shift offered by its owner for another practitioner to take over
type ShiftExchange struct {
	ID              string
	UserID          string // owner
	Date            string // 2006-01-02
	Period          Period
	ShiftType       string
	Status          ExchangeStatus
	InterestedUsers []string
	Comment         string
}

// IsInterested returns true if userID has expressed interest in the exchange
func (e ShiftExchange) IsInterested(userID string) bool {
	for _, id := range e.InterestedUsers {
		if id == userID {
			return true
		}
	}
	return false
}

// ExchangeHistory is a finalized exchange
type ExchangeHistory struct {
	ID             string
	OriginalUserID string // gave the shift up
	NewUserID      string // received the shift
	Date           string
	Period         Period
	ShiftType      string
	IsPermutation  bool
	Status         string
	// InterestedUsers captured when the exchange was completed
	InterestedUsers []string
	// OriginalExchangeID is empty when the entry did not come from the bag
	OriginalExchangeID string
}

// IsCompleted returns true if the entry counts towards statistics
func (h ExchangeHistory) IsCompleted() bool {
	return h.Status == HistoryCompleted
}

// WasInterested returns true if userID was interested when the exchange completed
func (h ExchangeHistory) WasInterested(userID string) bool {
	for _, id := range h.InterestedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
