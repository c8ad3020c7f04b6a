package session

import (
	"context"

	"github.com/KirkDiggler/deathroll/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/deathroll/internal/repositories/session Repository

// Repository persists matchmaking and live-session state
type Repository interface {
	// AppendWaiting adds a connection to the back of the matchmaking queue
	AppendWaiting(ctx context.Context, input *AppendWaitingInput) (*AppendWaitingOutput, error)

	// PopWaitingPair removes and returns the two oldest queued connections
	PopWaitingPair(ctx context.Context, input *PopWaitingPairInput) (*PopWaitingPairOutput, error)

	// RemoveWaiting deletes a connection from the queue wherever it sits
	RemoveWaiting(ctx context.Context, input *RemoveWaitingInput) error

	// IsWaiting reports whether a connection is currently queued
	IsWaiting(ctx context.Context, input *IsWaitingInput) (*IsWaitingOutput, error)

	// SaveMatch persists a match and registers both players to its room
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by room ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error)

	// GetMatchByConn resolves a connection's registered room to its match
	GetMatchByConn(ctx context.Context, input *GetMatchByConnInput) (*models.Match, error)

	// DeleteMatch removes a match together with both registry entries
	DeleteMatch(ctx context.Context, input *DeleteMatchInput) error
}
