package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/deathroll/internal/services/messaging Service

// Service provides the system notice text for deathroll events
type Service interface {
	// GetQueuedMessage returns an acknowledgement for a newly queued connection
	GetQueuedMessage(ctx context.Context, input *GetQueuedMessageInput) (*GetQueuedMessageOutput, error)

	// GetMatchFoundMessage returns the room notice sent when two players pair up
	GetMatchFoundMessage(ctx context.Context, input *GetMatchFoundMessageInput) (*GetMatchFoundMessageOutput, error)

	// GetBetPlacedMessage returns the room notice for a new bet proposal
	GetBetPlacedMessage(ctx context.Context, input *GetBetPlacedMessageInput) (*GetBetPlacedMessageOutput, error)

	// GetBetsLockedMessage returns the room notice sent once both bets agree
	GetBetsLockedMessage(ctx context.Context, input *GetBetsLockedMessageInput) (*GetBetsLockedMessageOutput, error)

	// GetLossMessage returns the room notice sent when a player rolls a 1
	GetLossMessage(ctx context.Context, input *GetLossMessageInput) (*GetLossMessageOutput, error)

	// GetDisconnectMessage returns the room notice sent when a player drops mid-match
	GetDisconnectMessage(ctx context.Context, input *GetDisconnectMessageInput) (*GetDisconnectMessageOutput, error)
}
