package deathroll

import "context"

// Service defines the interface for deathroll match operations
type Service interface {
	// Enqueue adds a connection to the matchmaking queue, pairing the two
	// oldest entries into a match once at least two are waiting
	Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error)

	// PlaceBet records a wager proposal for a matched connection
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// Roll resolves a roll attempt for the turn-holding connection
	Roll(ctx context.Context, input *RollInput) (*RollOutput, error)

	// Chat relays a chat line to the connection's room
	Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error)

	// Disconnect releases a connection's matchmaking and match state
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)
}
