package session

import (
	"github.com/KirkDiggler/deathroll/internal/models"
	"github.com/redis/go-redis/v9"
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// AppendWaitingInput contains parameters for queueing a connection
type AppendWaitingInput struct {
	// ConnID is the connection to append
	ConnID string
}

// AppendWaitingOutput contains the result of queueing a connection
type AppendWaitingOutput struct {
	// Waiting is the queue length after the append
	Waiting int64
}

// PopWaitingPairInput contains parameters for popping the two oldest entries
type PopWaitingPairInput struct{}

// PopWaitingPairOutput contains the two popped connections in arrival order
type PopWaitingPairOutput struct {
	// First is the oldest queued connection
	First string

	// Second is the next oldest queued connection
	Second string
}

// RemoveWaitingInput contains parameters for removing a queued connection
type RemoveWaitingInput struct {
	ConnID string
}

// IsWaitingInput contains parameters for a queue membership check
type IsWaitingInput struct {
	ConnID string
}

// IsWaitingOutput contains the result of a queue membership check
type IsWaitingOutput struct {
	Waiting bool
}

// SaveMatchInput contains parameters for persisting a match
type SaveMatchInput struct {
	Match *models.Match
}

// GetMatchInput contains parameters for retrieving a match by room ID
type GetMatchInput struct {
	RoomID string
}

// GetMatchByConnInput contains parameters for a registry lookup
type GetMatchByConnInput struct {
	ConnID string
}

// DeleteMatchInput contains parameters for removing a match
type DeleteMatchInput struct {
	RoomID string
}
