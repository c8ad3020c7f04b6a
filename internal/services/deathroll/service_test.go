package deathroll

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/deathroll/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/deathroll/internal/common/uuid/mocks"
	diceMocks "github.com/KirkDiggler/deathroll/internal/dice/mocks"
	"github.com/KirkDiggler/deathroll/internal/models"
	sessionRepo "github.com/KirkDiggler/deathroll/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/deathroll/internal/repositories/session/mocks"
	deathrollMocks "github.com/KirkDiggler/deathroll/internal/services/deathroll/mocks"
	"github.com/KirkDiggler/deathroll/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/deathroll/internal/services/messaging/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeathrollServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockSessionRepo *sessionMocks.MockRepository
	mockDiceRoller  *diceMocks.MockRoller
	mockClock       *clockMocks.MockClock
	mockUUID        *uuidMocks.MockUUID
	mockMessaging   *messagingMocks.MockService
	mockGateway     *deathrollMocks.MockGateway
	service         Service
	ctx             context.Context

	// Test data
	testTime   time.Time
	testRoomID string
	testConnA  string
	testConnB  string
}

func (s *DeathrollServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockDiceRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockMessaging = messagingMocks.NewMockService(s.mockCtrl)
	s.mockGateway = deathrollMocks.NewMockGateway(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	s.testRoomID = "test-room-id"
	s.testConnA = "conn-a"
	s.testConnB = "conn-b"

	// Clock and messaging are incidental to most assertions
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockMessaging.EXPECT().GetQueuedMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetQueuedMessageOutput{Message: "queued"}, nil).AnyTimes()
	s.mockMessaging.EXPECT().GetMatchFoundMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetMatchFoundMessageOutput{Message: "match found"}, nil).AnyTimes()
	s.mockMessaging.EXPECT().GetBetPlacedMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetBetPlacedMessageOutput{Message: "bet set"}, nil).AnyTimes()
	s.mockMessaging.EXPECT().GetBetsLockedMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetBetsLockedMessageOutput{Message: "bets locked"}, nil).AnyTimes()
	s.mockMessaging.EXPECT().GetLossMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetLossMessageOutput{Message: "loss"}, nil).AnyTimes()
	s.mockMessaging.EXPECT().GetDisconnectMessage(gomock.Any(), gomock.Any()).
		Return(&messaging.GetDisconnectMessageOutput{Message: "disconnected"}, nil).AnyTimes()

	svc, err := New(&Config{
		SessionRepo:   s.mockSessionRepo,
		DiceRoller:    s.mockDiceRoller,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
		Messaging:     s.mockMessaging,
		Gateway:       s.mockGateway,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *DeathrollServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeathrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeathrollServiceTestSuite))
}

// newMatch returns a live match fixture with conn-a holding the turn
func (s *DeathrollServiceTestSuite) newMatch() *models.Match {
	return &models.Match{
		ID:        s.testRoomID,
		PlayerA:   s.testConnA,
		PlayerB:   s.testConnB,
		Bets:      map[string]int{},
		Ceiling:   models.DefaultCeiling,
		Turn:      s.testConnA,
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}
}

func (s *DeathrollServiceTestSuite) expectNotMatched(connID string) {
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: connID}).
		Return(nil, sessionRepo.ErrMatchNotFound)
}

func (s *DeathrollServiceTestSuite) TestEnqueueFirstPlayerWaits() {
	s.expectNotMatched(s.testConnA)
	s.mockSessionRepo.EXPECT().
		IsWaiting(s.ctx, &sessionRepo.IsWaitingInput{ConnID: s.testConnA}).
		Return(&sessionRepo.IsWaitingOutput{Waiting: false}, nil)
	s.mockSessionRepo.EXPECT().
		AppendWaiting(s.ctx, &sessionRepo.AppendWaitingInput{ConnID: s.testConnA}).
		Return(&sessionRepo.AppendWaitingOutput{Waiting: 1}, nil)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "queued")

	out, err := s.service.Enqueue(s.ctx, &EnqueueInput{ConnID: s.testConnA})
	s.Require().NoError(err)
	s.False(out.Matched)
	s.Empty(out.RoomID)
}

func (s *DeathrollServiceTestSuite) TestEnqueuePairsInArrivalOrder() {
	s.expectNotMatched(s.testConnB)
	s.mockSessionRepo.EXPECT().
		IsWaiting(s.ctx, &sessionRepo.IsWaitingInput{ConnID: s.testConnB}).
		Return(&sessionRepo.IsWaitingOutput{Waiting: false}, nil)
	s.mockSessionRepo.EXPECT().
		AppendWaiting(s.ctx, &sessionRepo.AppendWaitingInput{ConnID: s.testConnB}).
		Return(&sessionRepo.AppendWaitingOutput{Waiting: 2}, nil)
	s.mockSessionRepo.EXPECT().
		PopWaitingPair(s.ctx, &sessionRepo.PopWaitingPairInput{}).
		Return(&sessionRepo.PopWaitingPairOutput{First: s.testConnA, Second: s.testConnB}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testRoomID)

	var saved *models.Match
	s.mockSessionRepo.EXPECT().
		SaveMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveMatchInput) error {
			saved = input.Match
			return nil
		})

	s.mockGateway.EXPECT().Unicast(s.testConnB, models.EventSystem, "queued")
	s.mockGateway.EXPECT().JoinRoom(s.testRoomID, s.testConnA)
	s.mockGateway.EXPECT().JoinRoom(s.testRoomID, s.testConnB)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventRole, models.RolePlayerA)
	s.mockGateway.EXPECT().Unicast(s.testConnB, models.EventRole, models.RolePlayerB)
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "match found")

	out, err := s.service.Enqueue(s.ctx, &EnqueueInput{ConnID: s.testConnB})
	s.Require().NoError(err)
	s.True(out.Matched)
	s.Equal(s.testRoomID, out.RoomID)

	// The earliest queued connection plays PlayerA and opens the match
	s.Require().NotNil(saved)
	s.Equal(s.testConnA, saved.PlayerA)
	s.Equal(s.testConnB, saved.PlayerB)
	s.Equal(s.testConnA, saved.Turn)
	s.Equal(models.DefaultCeiling, saved.Ceiling)
	s.False(saved.BetsLocked)
	s.Empty(saved.Bets)
	s.Equal(s.testTime, saved.CreatedAt)
}

func (s *DeathrollServiceTestSuite) TestEnqueueAlreadyMatched() {
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(s.newMatch(), nil)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "You are already in a match.")

	_, err := s.service.Enqueue(s.ctx, &EnqueueInput{ConnID: s.testConnA})
	s.Require().Error(err)
	s.Equal(ErrAlreadyMatched, err)
}

func (s *DeathrollServiceTestSuite) TestEnqueueAlreadyQueued() {
	s.expectNotMatched(s.testConnA)
	s.mockSessionRepo.EXPECT().
		IsWaiting(s.ctx, &sessionRepo.IsWaitingInput{ConnID: s.testConnA}).
		Return(&sessionRepo.IsWaitingOutput{Waiting: true}, nil)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "You are already in the queue.")

	_, err := s.service.Enqueue(s.ctx, &EnqueueInput{ConnID: s.testConnA})
	s.Require().Error(err)
	s.Equal(ErrAlreadyQueued, err)
}

func (s *DeathrollServiceTestSuite) TestPlaceBetNotInMatch() {
	s.expectNotMatched(s.testConnA)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "You are not in a match.")

	_, err := s.service.PlaceBet(s.ctx, &PlaceBetInput{ConnID: s.testConnA, Amount: 50})
	s.Require().Error(err)
	s.Equal(ErrNotInMatch, err)
}

func (s *DeathrollServiceTestSuite) TestPlaceBetFirstProposalDoesNotLock() {
	match := s.newMatch()
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)

	var saved *models.Match
	s.mockSessionRepo.EXPECT().
		SaveMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveMatchInput) error {
			saved = input.Match
			return nil
		})
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bet set")

	out, err := s.service.PlaceBet(s.ctx, &PlaceBetInput{ConnID: s.testConnA, Amount: 50})
	s.Require().NoError(err)
	s.False(out.Locked)
	s.Equal(50, saved.Bets[s.testConnA])
	s.False(saved.BetsLocked)
}

func (s *DeathrollServiceTestSuite) TestPlaceBetLocksOnEqualAmounts() {
	match := s.newMatch()
	match.Bets[s.testConnA] = 50
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnB}).
		Return(match, nil)

	var saved *models.Match
	s.mockSessionRepo.EXPECT().
		SaveMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveMatchInput) error {
			saved = input.Match
			return nil
		})
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bet set")
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bets locked")

	out, err := s.service.PlaceBet(s.ctx, &PlaceBetInput{ConnID: s.testConnB, Amount: 50})
	s.Require().NoError(err)
	s.True(out.Locked)
	s.True(saved.BetsLocked)
}

func (s *DeathrollServiceTestSuite) TestPlaceBetUnequalAmountsDoNotLock() {
	match := s.newMatch()
	match.Bets[s.testConnA] = 50
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnB}).
		Return(match, nil)
	s.mockSessionRepo.EXPECT().SaveMatch(s.ctx, gomock.Any()).Return(nil)
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bet set")

	out, err := s.service.PlaceBet(s.ctx, &PlaceBetInput{ConnID: s.testConnB, Amount: 60})
	s.Require().NoError(err)
	s.False(out.Locked)

	// An equal rebid still locks
	match.Bets[s.testConnB] = 60
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnB}).
		Return(match, nil)
	s.mockSessionRepo.EXPECT().SaveMatch(s.ctx, gomock.Any()).Return(nil)
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bet set")
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bets locked")

	out, err = s.service.PlaceBet(s.ctx, &PlaceBetInput{ConnID: s.testConnB, Amount: 50})
	s.Require().NoError(err)
	s.True(out.Locked)
}

func (s *DeathrollServiceTestSuite) TestPlaceBetLockFiresOnlyOnce() {
	match := s.newMatch()
	match.Bets[s.testConnA] = 50
	match.Bets[s.testConnB] = 50
	match.BetsLocked = true
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)
	s.mockSessionRepo.EXPECT().SaveMatch(s.ctx, gomock.Any()).Return(nil)

	// Only the bet announcement goes out; no second lock notice
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "bet set")

	out, err := s.service.PlaceBet(s.ctx, &PlaceBetInput{ConnID: s.testConnA, Amount: 50})
	s.Require().NoError(err)
	s.False(out.Locked)
}

func (s *DeathrollServiceTestSuite) TestRollNotInMatch() {
	s.expectNotMatched(s.testConnA)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "You are not in a match.")

	_, err := s.service.Roll(s.ctx, &RollInput{ConnID: s.testConnA, RequestedMax: 1000})
	s.Require().Error(err)
	s.Equal(ErrNotInMatch, err)
}

func (s *DeathrollServiceTestSuite) TestRollNotYourTurn() {
	match := s.newMatch()
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnB}).
		Return(match, nil)

	// The rebuke is unicast only; the room hears nothing
	s.mockGateway.EXPECT().Unicast(s.testConnB, models.EventSystem, "It's not your turn.")

	_, err := s.service.Roll(s.ctx, &RollInput{ConnID: s.testConnB, RequestedMax: 1000})
	s.Require().Error(err)
	s.Equal(ErrNotYourTurn, err)
}

func (s *DeathrollServiceTestSuite) TestRollInvalidRange() {
	match := s.newMatch()
	match.Ceiling = 500
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "Invalid roll range. Roll 1–500.")

	_, err := s.service.Roll(s.ctx, &RollInput{ConnID: s.testConnA, RequestedMax: 1000})
	s.Require().Error(err)
	s.Equal(ErrInvalidRollRange, err)
}

func (s *DeathrollServiceTestSuite) TestRollLowersCeilingAndFlipsTurn() {
	match := s.newMatch()
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)
	s.mockDiceRoller.EXPECT().Roll(1000).Return(500)

	var saved *models.Match
	s.mockSessionRepo.EXPECT().
		SaveMatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveMatchInput) error {
			saved = input.Match
			return nil
		})
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventChat, "PlayerA rolled 500 (1–1000)")

	out, err := s.service.Roll(s.ctx, &RollInput{ConnID: s.testConnA, RequestedMax: 1000})
	s.Require().NoError(err)
	s.Equal(500, out.RollValue)
	s.Equal(1000, out.Ceiling)
	s.False(out.MatchEnded)

	s.Equal(500, saved.Ceiling)
	s.Equal(s.testConnB, saved.Turn)
}

func (s *DeathrollServiceTestSuite) TestRollOfOneEndsMatch() {
	match := s.newMatch()
	match.Ceiling = 500
	match.Turn = s.testConnB
	match.Bets[s.testConnA] = 100
	match.Bets[s.testConnB] = 100
	match.BetsLocked = true

	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnB}).
		Return(match, nil)
	s.mockDiceRoller.EXPECT().Roll(500).Return(1)
	s.mockSessionRepo.EXPECT().
		DeleteMatch(s.ctx, &sessionRepo.DeleteMatchInput{RoomID: s.testRoomID}).
		Return(nil)

	expectedResult := &models.Result{Winner: models.RolePlayerA, Loser: models.RolePlayerB, Bet: 100}
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventChat, "PlayerB rolled 1 (1–500)")
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventResult, expectedResult)
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "loss")
	s.mockGateway.EXPECT().CloseRoom(s.testRoomID)

	out, err := s.service.Roll(s.ctx, &RollInput{ConnID: s.testConnB, RequestedMax: 500})
	s.Require().NoError(err)
	s.True(out.MatchEnded)
	s.Equal(1, out.RollValue)
	s.Equal(expectedResult, out.Result)
}

func (s *DeathrollServiceTestSuite) TestRollSettledBetZeroWhenNeverAgreed() {
	match := s.newMatch()
	match.Bets[s.testConnA] = 100
	match.Bets[s.testConnB] = 60

	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)
	s.mockDiceRoller.EXPECT().Roll(1000).Return(1)
	s.mockSessionRepo.EXPECT().
		DeleteMatch(s.ctx, &sessionRepo.DeleteMatchInput{RoomID: s.testRoomID}).
		Return(nil)

	expectedResult := &models.Result{Winner: models.RolePlayerB, Loser: models.RolePlayerA, Bet: 0}
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventChat, "PlayerA rolled 1 (1–1000)")
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventResult, expectedResult)
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "loss")
	s.mockGateway.EXPECT().CloseRoom(s.testRoomID)

	out, err := s.service.Roll(s.ctx, &RollInput{ConnID: s.testConnA, RequestedMax: 1000})
	s.Require().NoError(err)
	s.Equal(0, out.Result.Bet)
}

func (s *DeathrollServiceTestSuite) TestChatNotInMatch() {
	s.expectNotMatched(s.testConnA)
	s.mockGateway.EXPECT().Unicast(s.testConnA, models.EventSystem, "You are not in a match.")

	_, err := s.service.Chat(s.ctx, &ChatInput{ConnID: s.testConnA, Text: "hello"})
	s.Require().Error(err)
	s.Equal(ErrNotInMatch, err)
}

func (s *DeathrollServiceTestSuite) TestChatDropsBlankText() {
	match := s.newMatch()
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)

	out, err := s.service.Chat(s.ctx, &ChatInput{ConnID: s.testConnA, Text: "   \t "})
	s.Require().NoError(err)
	s.True(out.Dropped)
}

func (s *DeathrollServiceTestSuite) TestChatBroadcastsWithRole() {
	match := s.newMatch()
	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnB}).
		Return(match, nil)
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventChat, "PlayerB: good luck")

	out, err := s.service.Chat(s.ctx, &ChatInput{ConnID: s.testConnB, Text: "  good luck "})
	s.Require().NoError(err)
	s.False(out.Dropped)
}

func (s *DeathrollServiceTestSuite) TestDisconnectWhileQueued() {
	s.expectNotMatched(s.testConnA)
	s.mockSessionRepo.EXPECT().
		RemoveWaiting(s.ctx, &sessionRepo.RemoveWaitingInput{ConnID: s.testConnA}).
		Return(nil)

	out, err := s.service.Disconnect(s.ctx, &DisconnectInput{ConnID: s.testConnA})
	s.Require().NoError(err)
	s.False(out.Forfeited)
}

func (s *DeathrollServiceTestSuite) TestDisconnectForfeitsLiveMatch() {
	match := s.newMatch()
	match.Bets[s.testConnA] = 100
	match.Bets[s.testConnB] = 100
	match.BetsLocked = true

	s.mockSessionRepo.EXPECT().
		GetMatchByConn(s.ctx, &sessionRepo.GetMatchByConnInput{ConnID: s.testConnA}).
		Return(match, nil)
	s.mockSessionRepo.EXPECT().
		DeleteMatch(s.ctx, &sessionRepo.DeleteMatchInput{RoomID: s.testRoomID}).
		Return(nil)

	expectedResult := &models.Result{Winner: models.RolePlayerB, Loser: models.RolePlayerA, Bet: 100}
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventSystem, "disconnected")
	s.mockGateway.EXPECT().Broadcast(s.testRoomID, models.EventResult, expectedResult)
	s.mockGateway.EXPECT().CloseRoom(s.testRoomID)

	out, err := s.service.Disconnect(s.ctx, &DisconnectInput{ConnID: s.testConnA})
	s.Require().NoError(err)
	s.True(out.Forfeited)
	s.Equal(expectedResult, out.Result)
}

func (s *DeathrollServiceTestSuite) TestNewValidatesDependencies() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilSessionRepo, err)

	_, err = New(&Config{SessionRepo: s.mockSessionRepo})
	s.Equal(ErrNilDiceRoller, err)
}
