package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// MessageTones
const (
	MessageToneNeutral  MessageTone = "neutral"
	MessageToneFunny    MessageTone = "funny"
	MessageToneOminous  MessageTone = "ominous"
	MessageToneTaunting MessageTone = "taunting"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &service{
		rand: rand.New(source),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}

func toneOrDefault(tone MessageTone) MessageTone {
	if tone == "" {
		return MessageToneFunny
	}
	return tone
}

// GetQueuedMessage returns an acknowledgement for a newly queued connection
func (s *service) GetQueuedMessage(ctx context.Context, input *GetQueuedMessageInput) (*GetQueuedMessageOutput, error) {
	messages := []string{
		"You're in the queue. Sharpening the dice while you wait...",
		"Queued up! An opponent will be along shortly.",
		"Searching for a victim... er, opponent.",
		"In the queue. May the dice be ever in your favor.",
	}

	return &GetQueuedMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOrDefault(input.PreferredTone),
	}, nil
}

// GetMatchFoundMessage returns the room notice sent when two players pair up
func (s *service) GetMatchFoundMessage(ctx context.Context, input *GetMatchFoundMessageInput) (*GetMatchFoundMessageOutput, error) {
	messages := []string{
		"Match found! Agree on a bet.",
		"Match found! Settle on a wager before the dice come out.",
		"An opponent appears! Agree on a bet to get started.",
		"Match found. Negotiate your bet, then roll for your life.",
	}

	return &GetMatchFoundMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOrDefault(input.PreferredTone),
	}, nil
}

// GetBetPlacedMessage returns the room notice for a new bet proposal
func (s *service) GetBetPlacedMessage(ctx context.Context, input *GetBetPlacedMessageInput) (*GetBetPlacedMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("Bet set: %dg", input.Amount),
		fmt.Sprintf("Bet set: %dg. Bold.", input.Amount),
		fmt.Sprintf("Bet set: %dg on the table.", input.Amount),
	}

	return &GetBetPlacedMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOrDefault(input.PreferredTone),
	}, nil
}

// GetBetsLockedMessage returns the room notice sent once both bets agree
func (s *service) GetBetsLockedMessage(ctx context.Context, input *GetBetsLockedMessageInput) (*GetBetsLockedMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("Bets locked. Type /roll %d to start.", input.Ceiling),
		fmt.Sprintf("Bets locked at %dg. Roll %d to begin!", input.Amount, input.Ceiling),
		fmt.Sprintf("Bets locked. The deathroll begins at %d. Good luck.", input.Ceiling),
	}

	return &GetBetsLockedMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOrDefault(input.PreferredTone),
	}, nil
}

// GetLossMessage returns the room notice sent when a player rolls a 1
func (s *service) GetLossMessage(ctx context.Context, input *GetLossMessageInput) (*GetLossMessageOutput, error) {
	// Every variant keeps the canonical loss phrase so clients can key on it
	messages := []string{
		fmt.Sprintf("%s loses the deathroll.", input.LoserRole),
		fmt.Sprintf("%s loses the deathroll. The dice are cruel.", input.LoserRole),
		fmt.Sprintf("%s loses the deathroll. Pay up!", input.LoserRole),
	}

	return &GetLossMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOrDefault(input.PreferredTone),
	}, nil
}

// GetDisconnectMessage returns the room notice sent when a player drops mid-match
func (s *service) GetDisconnectMessage(ctx context.Context, input *GetDisconnectMessageInput) (*GetDisconnectMessageOutput, error) {
	messages := []string{
		fmt.Sprintf("%s disconnected. Match forfeited.", input.LeaverRole),
		fmt.Sprintf("%s disconnected and forfeits the match.", input.LeaverRole),
		fmt.Sprintf("%s fled the deathroll. Forfeit!", input.LeaverRole),
	}

	return &GetDisconnectMessageOutput{
		Message: s.pick(messages),
		Tone:    toneOrDefault(input.PreferredTone),
	}, nil
}
