package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/bet-staking-service/internal/mocks"
	"github.com/cypherlabdev/bet-staking-service/internal/models"
	"github.com/cypherlabdev/bet-staking-service/internal/service"
	"github.com/cypherlabdev/bet-staking-service/pkg/staking"
)

// testOrchestratorSetup is a helper struct to hold test dependencies
type testOrchestratorSetup struct {
	orchestrator *service.Orchestrator
	store        *mocks.MockStore
	bookmaker    *mocks.MockBookmaker
	checker      *mocks.MockAvailabilityChecker
	ctrl         *gomock.Controller
	ctx          context.Context
}

// setupTestOrchestrator wires a full orchestrator over mocked external
// collaborators with a pool of 4 workers.
func setupTestOrchestrator(t *testing.T) *testOrchestratorSetup {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockStore(ctrl)
	bookmaker := mocks.NewMockBookmaker(ctrl)
	checker := mocks.NewMockAvailabilityChecker(ctrl)

	params := staking.Params{
		BatchSize:      4,
		UsableFraction: decimal.NewFromFloat(0.5),
		MinBalance:     decimal.NewFromInt(1),
	}
	logger := zerolog.Nop()

	executor := service.NewProfileBetExecutor(
		service.ExecutorConfig{MinBalance: params.MinBalance, SubmitDelay: 0},
		store,
		checker,
		staking.NewBuilder(params, logger),
		staking.NewAllocator(params, logger),
		logger,
	)
	withdrawer := service.NewWithdrawalEngine(service.WithdrawalConfig{
		MinAmount:   50,
		MaxAmount:   300000,
		MaxAttempts: 10,
	}, logger)

	return &testOrchestratorSetup{
		orchestrator: service.NewOrchestrator(store, bookmaker, withdrawer, executor, 4, logger),
		store:        store,
		bookmaker:    bookmaker,
		checker:      checker,
		ctrl:         ctrl,
		ctx:          context.Background(),
	}
}

// expectFullCycle wires one profile through withdraw and a 4-candidate staking
// cycle, returning the session mock for further expectations.
func (s *testOrchestratorSetup) expectFullCycle(t *testing.T, profile models.Profile) {
	session := mocks.NewMockSession(s.ctrl)
	s.bookmaker.EXPECT().Login(gomock.Any(), profile.Phone, profile.Password).Return(session, nil)

	// Balance 100: below the withdrawal minimum (100/3 < 50), above MinBalance.
	session.EXPECT().Balance().Return(decimal.NewFromInt(100)).AnyTimes()

	selections := make([]models.Selection, 4)
	for i := range selections {
		selections[i] = models.Selection{
			ParentMatchID: "match-a",
			SubTypeID:     models.MarketTotals,
			BetPick:       "over 1.5",
			Odd:           decimal.NewFromFloat(1.5),
		}
	}
	s.store.EXPECT().FetchUnplacedSelections(gomock.Any(), profile.ID).Return(selections, nil)
	s.checker.EXPECT().
		Check(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, sel models.Selection) (models.Selection, bool) {
			return sel, true
		}).
		Times(4)
	session.EXPECT().PlaceBet(gomock.Any(), gomock.Any(), int64(50)).Return("CODE-OK", nil)
	s.store.EXPECT().AddBetslip(gomock.Any(), profile.ID, gomock.Any(), "CODE-OK").Return(nil)
}

// TestRun_NoProfiles verifies an empty profile list is a logged no-op
func TestRun_NoProfiles(t *testing.T) {
	setup := setupTestOrchestrator(t)

	setup.store.EXPECT().GetActiveProfiles(setup.ctx).Return(nil, nil)

	assert.NoError(t, setup.orchestrator.Run(setup.ctx))
}

// TestRun_ProfileFetchFailure verifies the one error the orchestrator propagates
func TestRun_ProfileFetchFailure(t *testing.T) {
	setup := setupTestOrchestrator(t)

	setup.store.EXPECT().GetActiveProfiles(setup.ctx).Return(nil, errors.New("db down"))

	err := setup.orchestrator.Run(setup.ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "active profiles")
}

// TestRun_SingleProfileCompletes runs one profile end to end
func TestRun_SingleProfileCompletes(t *testing.T) {
	setup := setupTestOrchestrator(t)
	profile := models.Profile{ID: 1, Phone: "0700000001", Password: "pw-1", IsActive: true}

	setup.store.EXPECT().GetActiveProfiles(setup.ctx).Return([]models.Profile{profile}, nil)
	setup.expectFullCycle(t, profile)

	assert.NoError(t, setup.orchestrator.Run(setup.ctx))
}

// TestRun_FailingProfileIsolated verifies a profile whose login fails does not
// prevent its sibling from staking and writing its betslip.
func TestRun_FailingProfileIsolated(t *testing.T) {
	setup := setupTestOrchestrator(t)
	good := models.Profile{ID: 1, Phone: "0700000001", Password: "pw-1", IsActive: true}
	bad := models.Profile{ID: 2, Phone: "0700000002", Password: "pw-2", IsActive: true}

	setup.store.EXPECT().GetActiveProfiles(setup.ctx).Return([]models.Profile{bad, good}, nil)
	setup.bookmaker.EXPECT().
		Login(gomock.Any(), bad.Phone, bad.Password).
		Return(nil, errors.New("account locked"))
	setup.expectFullCycle(t, good)

	assert.NoError(t, setup.orchestrator.Run(setup.ctx))
}

// TestRun_AbortedProfileIsolated verifies a mid-cycle storage failure in one
// profile task leaves the sibling's cycle untouched.
func TestRun_AbortedProfileIsolated(t *testing.T) {
	setup := setupTestOrchestrator(t)
	good := models.Profile{ID: 1, Phone: "0700000001", Password: "pw-1", IsActive: true}
	bad := models.Profile{ID: 2, Phone: "0700000002", Password: "pw-2", IsActive: true}

	setup.store.EXPECT().GetActiveProfiles(setup.ctx).Return([]models.Profile{bad, good}, nil)

	badSession := mocks.NewMockSession(setup.ctrl)
	setup.bookmaker.EXPECT().Login(gomock.Any(), bad.Phone, bad.Password).Return(badSession, nil)
	badSession.EXPECT().Balance().Return(decimal.NewFromInt(100)).AnyTimes()
	setup.store.EXPECT().
		FetchUnplacedSelections(gomock.Any(), bad.ID).
		Return(nil, errors.New("storage failure"))

	setup.expectFullCycle(t, good)

	assert.NoError(t, setup.orchestrator.Run(setup.ctx))
}

// TestRun_PanicContained verifies a panicking profile task cannot crash the run
func TestRun_PanicContained(t *testing.T) {
	setup := setupTestOrchestrator(t)
	good := models.Profile{ID: 1, Phone: "0700000001", Password: "pw-1", IsActive: true}
	bad := models.Profile{ID: 2, Phone: "0700000002", Password: "pw-2", IsActive: true}

	setup.store.EXPECT().GetActiveProfiles(setup.ctx).Return([]models.Profile{bad, good}, nil)

	badSession := mocks.NewMockSession(setup.ctrl)
	setup.bookmaker.EXPECT().Login(gomock.Any(), bad.Phone, bad.Password).Return(badSession, nil)
	badSession.EXPECT().Balance().DoAndReturn(func() decimal.Decimal {
		panic("malformed profile state")
	})

	setup.expectFullCycle(t, good)

	assert.NotPanics(t, func() {
		assert.NoError(t, setup.orchestrator.Run(setup.ctx))
	})
}
