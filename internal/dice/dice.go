package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/deathroll/internal/dice Roller

// Roller provides uniformly distributed dice rolls
type Roller interface {
	// Roll returns a value between 1 and max, inclusive of both bounds
	Roll(max int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller implements the Roller interface using math/rand
type DefaultRoller struct {
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &DefaultRoller{
		random: random,
	}
}

// Roll generates a random roll with the specified upper bound
func (r *DefaultRoller) Roll(max int) int {
	if max < 1 {
		max = 1
	}
	return r.random.Intn(max) + 1
}
