package deathroll

//go:generate mockgen -package=mocks -destination=mocks/mock_gateway.go github.com/KirkDiggler/deathroll/internal/services/deathroll Gateway

// Gateway delivers events to live connections. Sends are fire-and-forget:
// delivery never blocks a state transition.
type Gateway interface {
	// Unicast sends an event to a single connection
	Unicast(connID string, event string, data any)

	// Broadcast sends an event to every connection in a room
	Broadcast(roomID string, event string, data any)

	// JoinRoom subscribes a connection to a room's broadcast scope
	JoinRoom(roomID string, connID string)

	// CloseRoom tears down a room's broadcast scope
	CloseRoom(roomID string)
}
