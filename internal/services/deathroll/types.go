package deathroll

import (
	"github.com/KirkDiggler/deathroll/internal/common/clock"
	"github.com/KirkDiggler/deathroll/internal/common/uuid"
	"github.com/KirkDiggler/deathroll/internal/dice"
	"github.com/KirkDiggler/deathroll/internal/models"
	sessionRepo "github.com/KirkDiggler/deathroll/internal/repositories/session"
	"github.com/KirkDiggler/deathroll/internal/services/messaging"
)

// Config holds configuration for the deathroll service
type Config struct {
	// DefaultCeiling is the opening roll range; models.DefaultCeiling when 0
	DefaultCeiling int

	// Repository dependencies
	SessionRepo sessionRepo.Repository

	// Service dependencies
	DiceRoller    dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Messaging     messaging.Service
	Gateway       Gateway
}

// EnqueueInput contains parameters for queueing a connection
type EnqueueInput struct {
	// ConnID identifies the connection entering matchmaking
	ConnID string
}

// EnqueueOutput contains the result of queueing a connection
type EnqueueOutput struct {
	// Matched indicates a pairing happened on this call
	Matched bool

	// RoomID is the created room when Matched is true
	RoomID string
}

// PlaceBetInput contains parameters for a wager proposal
type PlaceBetInput struct {
	// ConnID identifies the proposing connection
	ConnID string

	// Amount is the proposed wager. Equality with the opponent's proposal is
	// the sole agreement gate; the value itself is not validated here.
	Amount int
}

// PlaceBetOutput contains the result of a wager proposal
type PlaceBetOutput struct {
	// Locked indicates this proposal completed the agreement
	Locked bool
}

// RollInput contains parameters for a roll attempt
type RollInput struct {
	// ConnID identifies the rolling connection
	ConnID string

	// RequestedMax must equal the match's current ceiling
	RequestedMax int
}

// RollOutput contains the result of a roll attempt
type RollOutput struct {
	// RollValue is the drawn roll
	RollValue int

	// Ceiling is the range the roll was drawn against
	Ceiling int

	// MatchEnded indicates the roll was a 1
	MatchEnded bool

	// Result is the settled outcome when MatchEnded is true
	Result *models.Result
}

// ChatInput contains parameters for a chat relay
type ChatInput struct {
	ConnID string

	// Text is the raw chat line; whitespace-only text is dropped
	Text string
}

// ChatOutput contains the result of a chat relay
type ChatOutput struct {
	// Dropped indicates the line was empty after trimming
	Dropped bool
}

// DisconnectInput contains parameters for releasing a connection
type DisconnectInput struct {
	ConnID string
}

// DisconnectOutput contains the result of releasing a connection
type DisconnectOutput struct {
	// Forfeited indicates the connection was in a live match that the
	// opponent now wins
	Forfeited bool

	// Result is the settled outcome when Forfeited is true
	Result *models.Result
}
