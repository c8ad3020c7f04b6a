package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/deathroll/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	queueKey       = "deathroll:queue"
	connKeyPrefix  = "deathroll:conn:"
	matchKeyPrefix = "deathroll:match:"
)

// ErrMatchNotFound is returned when no match exists for a room or connection
var ErrMatchNotFound = errors.New("match not found")

// ErrNotEnoughWaiting is returned when the queue holds fewer than two connections
var ErrNotEnoughWaiting = errors.New("fewer than two connections waiting")

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AppendWaiting pushes a connection onto the back of the matchmaking queue
func (r *redisRepository) AppendWaiting(ctx context.Context, input *AppendWaitingInput) (*AppendWaitingOutput, error) {
	if input == nil || input.ConnID == "" {
		return nil, errors.New("input and connection ID cannot be empty")
	}

	waiting, err := r.client.RPush(ctx, queueKey, input.ConnID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to append to queue: %w", err)
	}

	return &AppendWaitingOutput{
		Waiting: waiting,
	}, nil
}

// PopWaitingPair pops the two oldest queued connections in FIFO order
func (r *redisRepository) PopWaitingPair(ctx context.Context, input *PopWaitingPairInput) (*PopWaitingPairOutput, error) {
	connIDs, err := r.client.LPopCount(ctx, queueKey, 2).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotEnoughWaiting
		}
		return nil, fmt.Errorf("failed to pop waiting pair: %w", err)
	}

	if len(connIDs) < 2 {
		// Put the lone entry back at the front so arrival order holds
		if len(connIDs) == 1 {
			if err := r.client.LPush(ctx, queueKey, connIDs[0]).Err(); err != nil {
				return nil, fmt.Errorf("failed to restore queue entry: %w", err)
			}
		}
		return nil, ErrNotEnoughWaiting
	}

	return &PopWaitingPairOutput{
		First:  connIDs[0],
		Second: connIDs[1],
	}, nil
}

// RemoveWaiting deletes every queue occurrence of the connection
func (r *redisRepository) RemoveWaiting(ctx context.Context, input *RemoveWaitingInput) error {
	if input == nil || input.ConnID == "" {
		return errors.New("input and connection ID cannot be empty")
	}

	if err := r.client.LRem(ctx, queueKey, 0, input.ConnID).Err(); err != nil {
		return fmt.Errorf("failed to remove from queue: %w", err)
	}

	return nil
}

// IsWaiting reports whether the connection is present in the queue
func (r *redisRepository) IsWaiting(ctx context.Context, input *IsWaitingInput) (*IsWaitingOutput, error) {
	if input == nil || input.ConnID == "" {
		return nil, errors.New("input and connection ID cannot be empty")
	}

	connIDs, err := r.client.LRange(ctx, queueKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read queue: %w", err)
	}

	for _, connID := range connIDs {
		if connID == input.ConnID {
			return &IsWaitingOutput{Waiting: true}, nil
		}
	}

	return &IsWaitingOutput{Waiting: false}, nil
}

// SaveMatch persists a match and both registry entries in one transaction
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	// Marshal the match to JSON
	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	// Save the match
	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Match.ID)
	pipe.Set(ctx, matchKey, matchJSON, 0)

	// Register both players to the room
	pipe.Set(ctx, fmt.Sprintf("%s%s", connKeyPrefix, input.Match.PlayerA), input.Match.ID, 0)
	pipe.Set(ctx, fmt.Sprintf("%s%s", connKeyPrefix, input.Match.PlayerB), input.Match.ID, 0)

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by room ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.Match, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.RoomID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	// Unmarshal the match from JSON
	var match models.Match
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}

// GetMatchByConn resolves the connection's registry entry to its match
func (r *redisRepository) GetMatchByConn(ctx context.Context, input *GetMatchByConnInput) (*models.Match, error) {
	if input == nil || input.ConnID == "" {
		return nil, errors.New("input and connection ID cannot be empty")
	}

	connKey := fmt.Sprintf("%s%s", connKeyPrefix, input.ConnID)
	roomID, err := r.client.Get(ctx, connKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get room for connection: %w", err)
	}

	return r.GetMatch(ctx, &GetMatchInput{
		RoomID: roomID,
	})
}

// DeleteMatch removes a match and unregisters both players
func (r *redisRepository) DeleteMatch(ctx context.Context, input *DeleteMatchInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	// Get the match first to find its players
	match, err := r.GetMatch(ctx, &GetMatchInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.RoomID)
	pipe.Del(ctx, matchKey)
	pipe.Del(ctx, fmt.Sprintf("%s%s", connKeyPrefix, match.PlayerA))
	pipe.Del(ctx, fmt.Sprintf("%s%s", connKeyPrefix, match.PlayerB))

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}

	return nil
}
