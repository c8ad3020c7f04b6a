package models

// Event names carried on the websocket envelope
const (
	// Inbound events
	EventQueue = "queue"
	EventBet   = "bet"
	EventRoll  = "roll"
	EventChat  = "chat"

	// Outbound events (EventChat is used in both directions)
	EventSystem = "system"
	EventRole   = "role"
	EventResult = "result"
)

// Result is the room broadcast payload emitted when a match ends
type Result struct {
	// Winner is the role label of the winning player
	Winner string `json:"winner"`

	// Loser is the role label of the losing player
	Loser string `json:"loser"`

	// Bet is the settled wager, 0 when the players never agreed
	Bet int `json:"bet"`
}
