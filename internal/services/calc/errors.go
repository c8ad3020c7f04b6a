package calc

// CalcError represents a calculator validation error
type CalcError string

// Error implements the error interface
func (e CalcError) Error() string {
	return string(e)
}

const (
	// ErrUnknownUnit is returned when a time or capacity unit is not recognized
	ErrUnknownUnit = CalcError("unknown unit")

	// ErrInvalidDimensions is returned when a resolution has a non-positive side
	ErrInvalidDimensions = CalcError("width and height must be positive")

	// ErrNoScales is returned when a resolution request lists no scale factors
	ErrNoScales = CalcError("at least one scale factor is required")

	// ErrNoDrives is returned when a drive comparison lists no drives
	ErrNoDrives = CalcError("at least one drive is required")

	// ErrInvalidDrive is returned for a drive with non-positive capacity or negative price
	ErrInvalidDrive = CalcError("drive capacity must be positive and price non-negative")

	// ErrInvalidCapacity is returned for a non-positive capacity or negative overhead/reserve
	ErrInvalidCapacity = CalcError("capacity must be positive, overhead and reserve non-negative")

	// ErrInvalidCardCount is returned when a darkmoon draw requests fewer than one card
	ErrInvalidCardCount = CalcError("at least one card must be drawn")

	// ErrUnknownDeck is returned for an unrecognized darkmoon deck name
	ErrUnknownDeck = CalcError("unknown deck")

	// ErrUnknownDifficulty is returned for an unrecognized darkmoon difficulty
	ErrUnknownDifficulty = CalcError("unknown difficulty")
)
