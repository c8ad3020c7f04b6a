package models

import "time"

// Role labels assigned by pairing order. The earliest queued player is PlayerA.
const (
	RolePlayerA = "PlayerA"
	RolePlayerB = "PlayerB"
)

// DefaultCeiling is the starting upper bound for the first roll of a match
const DefaultCeiling = 1000

// Match represents one live deathroll duel between two connections
type Match struct {
	// ID is the room identifier, unique across live matches
	ID string `json:"id"`

	// PlayerA is the connection ID of the first queued player
	PlayerA string `json:"player_a"`

	// PlayerB is the connection ID of the second queued player
	PlayerB string `json:"player_b"`

	// Bets maps a connection ID to its proposed wager
	Bets map[string]int `json:"bets"`

	// BetsLocked is set once both proposals exist and agree
	BetsLocked bool `json:"bets_locked"`

	// Ceiling is the upper bound of the next permissible roll
	Ceiling int `json:"ceiling"`

	// Turn is the connection whose roll is currently valid
	Turn string `json:"turn"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPlayer reports whether the connection is one of the two players
func (m *Match) HasPlayer(connID string) bool {
	return connID == m.PlayerA || connID == m.PlayerB
}

// RoleOf returns the role label for a player connection
func (m *Match) RoleOf(connID string) string {
	if connID == m.PlayerA {
		return RolePlayerA
	}
	return RolePlayerB
}

// Opponent returns the other player's connection ID
func (m *Match) Opponent(connID string) string {
	if connID == m.PlayerA {
		return m.PlayerB
	}
	return m.PlayerA
}

// SettledBet returns the agreed wager, or 0 when the two proposals
// were never both present and equal
func (m *Match) SettledBet() int {
	a, okA := m.Bets[m.PlayerA]
	b, okB := m.Bets[m.PlayerB]
	if okA && okB && a == b {
		return a
	}
	return 0
}
