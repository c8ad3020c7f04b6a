package deathroll

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/deathroll/internal/common/clock"
	"github.com/KirkDiggler/deathroll/internal/common/uuid"
	"github.com/KirkDiggler/deathroll/internal/dice"
	"github.com/KirkDiggler/deathroll/internal/models"
	sessionRepo "github.com/KirkDiggler/deathroll/internal/repositories/session"
	"github.com/KirkDiggler/deathroll/internal/services/messaging"
)

// service implements the Service interface. One mutex serializes every
// operation so no two mutations interleave on the queue, the registry, or
// the session table.
type service struct {
	mu sync.Mutex

	defaultCeiling int
	sessionRepo    sessionRepo.Repository
	diceRoller     dice.Roller
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	messaging      messaging.Service
	gateway        Gateway
}

// New creates a new deathroll service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Gateway == nil {
		return nil, ErrNilGateway
	}

	ceiling := cfg.DefaultCeiling
	if ceiling <= 0 {
		ceiling = models.DefaultCeiling
	}

	return &service{
		defaultCeiling: ceiling,
		sessionRepo:    cfg.SessionRepo,
		diceRoller:     cfg.DiceRoller,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		messaging:      cfg.Messaging,
		gateway:        cfg.Gateway,
	}, nil
}

// Enqueue adds a connection to the matchmaking queue and pairs the two
// oldest entries once at least two are waiting
func (s *service) Enqueue(ctx context.Context, input *EnqueueInput) (*EnqueueOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A connection bound to a live match must not queue
	_, err := s.sessionRepo.GetMatchByConn(ctx, &sessionRepo.GetMatchByConnInput{
		ConnID: input.ConnID,
	})
	if err == nil {
		s.gateway.Unicast(input.ConnID, models.EventSystem, "You are already in a match.")
		return nil, ErrAlreadyMatched
	}
	if !errors.Is(err, sessionRepo.ErrMatchNotFound) {
		return nil, err
	}

	waiting, err := s.sessionRepo.IsWaiting(ctx, &sessionRepo.IsWaitingInput{
		ConnID: input.ConnID,
	})
	if err != nil {
		return nil, err
	}
	if waiting.Waiting {
		s.gateway.Unicast(input.ConnID, models.EventSystem, "You are already in the queue.")
		return nil, ErrAlreadyQueued
	}

	appended, err := s.sessionRepo.AppendWaiting(ctx, &sessionRepo.AppendWaitingInput{
		ConnID: input.ConnID,
	})
	if err != nil {
		return nil, err
	}

	s.gateway.Unicast(input.ConnID, models.EventSystem, s.queuedMessage(ctx))

	if appended.Waiting < 2 {
		return &EnqueueOutput{}, nil
	}

	// Pair the two oldest entries; the earliest queued plays PlayerA and
	// holds the opening turn
	pair, err := s.sessionRepo.PopWaitingPair(ctx, &sessionRepo.PopWaitingPairInput{})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	match := &models.Match{
		ID:        s.uuidGenerator.NewUUID(),
		PlayerA:   pair.First,
		PlayerB:   pair.Second,
		Bets:      make(map[string]int),
		Ceiling:   s.defaultCeiling,
		Turn:      pair.First,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessionRepo.SaveMatch(ctx, &sessionRepo.SaveMatchInput{Match: match}); err != nil {
		// Put both players back so a storage failure doesn't strand them
		_, _ = s.sessionRepo.AppendWaiting(ctx, &sessionRepo.AppendWaitingInput{ConnID: pair.First})
		_, _ = s.sessionRepo.AppendWaiting(ctx, &sessionRepo.AppendWaitingInput{ConnID: pair.Second})
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	s.gateway.JoinRoom(match.ID, match.PlayerA)
	s.gateway.JoinRoom(match.ID, match.PlayerB)
	s.gateway.Unicast(match.PlayerA, models.EventRole, models.RolePlayerA)
	s.gateway.Unicast(match.PlayerB, models.EventRole, models.RolePlayerB)
	s.gateway.Broadcast(match.ID, models.EventSystem, s.matchFoundMessage(ctx))

	return &EnqueueOutput{
		Matched: true,
		RoomID:  match.ID,
	}, nil
}

// PlaceBet records a wager proposal, overwriting any prior proposal from the
// same connection. The lock notice fires exactly once per match, the moment
// both proposals exist and agree.
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.lookupMatch(ctx, input.ConnID)
	if err != nil {
		return nil, err
	}

	if match.Bets == nil {
		match.Bets = make(map[string]int)
	}
	match.Bets[input.ConnID] = input.Amount

	locked := false
	if !match.BetsLocked && len(match.Bets) == 2 && match.Bets[match.PlayerA] == match.Bets[match.PlayerB] {
		match.BetsLocked = true
		locked = true
	}
	match.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveMatch(ctx, &sessionRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, fmt.Errorf("failed to save bet: %w", err)
	}

	s.gateway.Broadcast(match.ID, models.EventSystem, s.betPlacedMessage(ctx, input.Amount))
	if locked {
		s.gateway.Broadcast(match.ID, models.EventSystem, s.betsLockedMessage(ctx, input.Amount, match.Ceiling))
	}

	return &PlaceBetOutput{
		Locked: locked,
	}, nil
}

// Roll resolves a roll attempt for the turn-holding connection
func (s *service) Roll(ctx context.Context, input *RollInput) (*RollOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.lookupMatch(ctx, input.ConnID)
	if err != nil {
		return nil, err
	}

	// Turn violations go to the roller only, never the room
	if match.Turn != input.ConnID {
		s.gateway.Unicast(input.ConnID, models.EventSystem, "It's not your turn.")
		return nil, ErrNotYourTurn
	}

	if input.RequestedMax != match.Ceiling {
		s.gateway.Unicast(input.ConnID, models.EventSystem,
			fmt.Sprintf("Invalid roll range. Roll 1–%d.", match.Ceiling))
		return nil, ErrInvalidRollRange
	}

	ceiling := match.Ceiling
	roll := s.diceRoller.Roll(ceiling)
	role := match.RoleOf(input.ConnID)
	rollLine := fmt.Sprintf("%s rolled %d (1–%d)", role, roll, ceiling)

	if roll == 1 {
		result := &models.Result{
			Winner: match.RoleOf(match.Opponent(input.ConnID)),
			Loser:  role,
			Bet:    match.SettledBet(),
		}

		if err := s.sessionRepo.DeleteMatch(ctx, &sessionRepo.DeleteMatchInput{RoomID: match.ID}); err != nil {
			return nil, fmt.Errorf("failed to tear down match: %w", err)
		}

		s.gateway.Broadcast(match.ID, models.EventChat, rollLine)
		s.gateway.Broadcast(match.ID, models.EventResult, result)
		s.gateway.Broadcast(match.ID, models.EventSystem, s.lossMessage(ctx, role))
		s.gateway.CloseRoom(match.ID)

		return &RollOutput{
			RollValue:  roll,
			Ceiling:    ceiling,
			MatchEnded: true,
			Result:     result,
		}, nil
	}

	// The roll becomes the next ceiling and the turn flips
	match.Ceiling = roll
	match.Turn = match.Opponent(input.ConnID)
	match.UpdatedAt = s.clock.Now()

	if err := s.sessionRepo.SaveMatch(ctx, &sessionRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, fmt.Errorf("failed to save roll: %w", err)
	}

	s.gateway.Broadcast(match.ID, models.EventChat, rollLine)

	return &RollOutput{
		RollValue: roll,
		Ceiling:   ceiling,
	}, nil
}

// Chat relays a chat line to the connection's room
func (s *service) Chat(ctx context.Context, input *ChatInput) (*ChatOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.lookupMatch(ctx, input.ConnID)
	if err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return &ChatOutput{Dropped: true}, nil
	}

	s.gateway.Broadcast(match.ID, models.EventChat,
		fmt.Sprintf("%s: %s", match.RoleOf(input.ConnID), text))

	return &ChatOutput{}, nil
}

// Disconnect releases a connection's state. A queued connection is removed
// from the queue; a matched connection forfeits and the opponent wins.
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.sessionRepo.GetMatchByConn(ctx, &sessionRepo.GetMatchByConnInput{
		ConnID: input.ConnID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrMatchNotFound) {
			if err := s.sessionRepo.RemoveWaiting(ctx, &sessionRepo.RemoveWaitingInput{ConnID: input.ConnID}); err != nil {
				return nil, err
			}
			return &DisconnectOutput{}, nil
		}
		return nil, err
	}

	role := match.RoleOf(input.ConnID)
	result := &models.Result{
		Winner: match.RoleOf(match.Opponent(input.ConnID)),
		Loser:  role,
		Bet:    match.SettledBet(),
	}

	if err := s.sessionRepo.DeleteMatch(ctx, &sessionRepo.DeleteMatchInput{RoomID: match.ID}); err != nil {
		return nil, fmt.Errorf("failed to tear down match: %w", err)
	}

	s.gateway.Broadcast(match.ID, models.EventSystem, s.disconnectMessage(ctx, role))
	s.gateway.Broadcast(match.ID, models.EventResult, result)
	s.gateway.CloseRoom(match.ID)

	return &DisconnectOutput{
		Forfeited: true,
		Result:    result,
	}, nil
}

// lookupMatch resolves the caller's live match, reporting NotInMatch to the
// connection when it has none
func (s *service) lookupMatch(ctx context.Context, connID string) (*models.Match, error) {
	match, err := s.sessionRepo.GetMatchByConn(ctx, &sessionRepo.GetMatchByConnInput{
		ConnID: connID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrMatchNotFound) {
			s.gateway.Unicast(connID, models.EventSystem, "You are not in a match.")
			return nil, ErrNotInMatch
		}
		return nil, err
	}
	return match, nil
}

func (s *service) queuedMessage(ctx context.Context) string {
	out, err := s.messaging.GetQueuedMessage(ctx, &messaging.GetQueuedMessageInput{})
	if err != nil {
		return "You're in the queue."
	}
	return out.Message
}

func (s *service) matchFoundMessage(ctx context.Context) string {
	out, err := s.messaging.GetMatchFoundMessage(ctx, &messaging.GetMatchFoundMessageInput{})
	if err != nil {
		return "Match found! Agree on a bet."
	}
	return out.Message
}

func (s *service) betPlacedMessage(ctx context.Context, amount int) string {
	out, err := s.messaging.GetBetPlacedMessage(ctx, &messaging.GetBetPlacedMessageInput{Amount: amount})
	if err != nil {
		return fmt.Sprintf("Bet set: %dg", amount)
	}
	return out.Message
}

func (s *service) betsLockedMessage(ctx context.Context, amount, ceiling int) string {
	out, err := s.messaging.GetBetsLockedMessage(ctx, &messaging.GetBetsLockedMessageInput{
		Amount:  amount,
		Ceiling: ceiling,
	})
	if err != nil {
		return fmt.Sprintf("Bets locked. Type /roll %d to start.", ceiling)
	}
	return out.Message
}

func (s *service) lossMessage(ctx context.Context, loserRole string) string {
	out, err := s.messaging.GetLossMessage(ctx, &messaging.GetLossMessageInput{LoserRole: loserRole})
	if err != nil {
		return fmt.Sprintf("%s loses the deathroll.", loserRole)
	}
	return out.Message
}

func (s *service) disconnectMessage(ctx context.Context, leaverRole string) string {
	out, err := s.messaging.GetDisconnectMessage(ctx, &messaging.GetDisconnectMessageInput{LeaverRole: leaverRole})
	if err != nil {
		return fmt.Sprintf("%s disconnected. Match forfeited.", leaverRole)
	}
	return out.Message
}
