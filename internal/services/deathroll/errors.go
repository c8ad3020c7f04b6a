package deathroll

// MatchError is a custom error type for match-related errors
type MatchError string

// Error implements the error interface
func (e MatchError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyQueued    MatchError = "connection is already in the queue"
	ErrAlreadyMatched   MatchError = "connection is already in a match"
	ErrNotInMatch       MatchError = "connection is not in a match"
	ErrNotYourTurn      MatchError = "it is not this connection's turn"
	ErrInvalidRollRange MatchError = "requested roll range does not match the ceiling"
	ErrNilConfig        MatchError = "config cannot be nil"
	ErrNilSessionRepo   MatchError = "session repository cannot be nil"
	ErrNilDiceRoller    MatchError = "dice roller cannot be nil"
	ErrNilClock         MatchError = "clock cannot be nil"
	ErrNilUUIDGenerator MatchError = "UUID generator cannot be nil"
	ErrNilMessaging     MatchError = "messaging service cannot be nil"
	ErrNilGateway       MatchError = "gateway cannot be nil"
)
