package messaging

// MessageTone represents the personality of a generated message
type MessageTone string

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for deterministic message selection in tests
	Seed int64
}

// GetQueuedMessageInput contains parameters for a queue acknowledgement
type GetQueuedMessageInput struct {
	// PreferredTone is the desired message tone (optional)
	PreferredTone MessageTone
}

// GetQueuedMessageOutput contains the selected acknowledgement
type GetQueuedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetMatchFoundMessageInput contains parameters for the pairing notice
type GetMatchFoundMessageInput struct {
	PreferredTone MessageTone
}

// GetMatchFoundMessageOutput contains the selected pairing notice
type GetMatchFoundMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetBetPlacedMessageInput contains parameters for a bet announcement
type GetBetPlacedMessageInput struct {
	// Amount is the proposed wager
	Amount int

	PreferredTone MessageTone
}

// GetBetPlacedMessageOutput contains the selected bet announcement
type GetBetPlacedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetBetsLockedMessageInput contains parameters for the lock notice
type GetBetsLockedMessageInput struct {
	// Amount is the agreed wager
	Amount int

	// Ceiling is the opening roll range
	Ceiling int

	PreferredTone MessageTone
}

// GetBetsLockedMessageOutput contains the selected lock notice
type GetBetsLockedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetLossMessageInput contains parameters for the loss notice
type GetLossMessageInput struct {
	// LoserRole is the role label of the player who rolled the 1
	LoserRole string

	PreferredTone MessageTone
}

// GetLossMessageOutput contains the selected loss notice
type GetLossMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetDisconnectMessageInput contains parameters for the disconnect notice
type GetDisconnectMessageInput struct {
	// LeaverRole is the role label of the player who dropped
	LeaverRole string

	PreferredTone MessageTone
}

// GetDisconnectMessageOutput contains the selected disconnect notice
type GetDisconnectMessageOutput struct {
	Message string
	Tone    MessageTone
}
