package auction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
)

func (f *fakeStore) addPick(round, slot int, owner uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.picks = append(f.picks, models.DraftPick{
		ID:            uuid.New(),
		LeagueID:      f.league.ID,
		Season:        f.league.Season,
		Round:         round,
		OriginalOwner: owner,
		CurrentOwner:  owner,
		LotterySlot:   &slot,
		Revealed:      true,
	})
}

func TestWageForSlotLinearFallback(t *testing.T) {
	fx := newFixture(t, 2, DefaultConfig()) // max 12, min 1, no table
	const slots = 24

	prev := fx.app.wageForSlot(1, slots)
	assert.Equal(t, int64(12), prev, "slot 1 earns the maximum")

	for slot := 2; slot <= slots; slot++ {
		wage := fx.app.wageForSlot(slot, slots)
		assert.LessOrEqual(t, wage, prev, "wages never increase down the board (slot %d)", slot)
		assert.GreaterOrEqual(t, wage, int64(1), "slot %d", slot)
		prev = wage
	}
	assert.Equal(t, int64(1), fx.app.wageForSlot(slots, slots), "last slot earns the minimum")
}

func TestWageForSlotTableOverridesFallback(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WageTable = map[int]int64{1: 50, 2: 40}
	fx := newFixture(t, 2, cfg)

	assert.Equal(t, int64(50), fx.app.wageForSlot(1, 24))
	assert.Equal(t, int64(40), fx.app.wageForSlot(2, 24))
	// Slots outside the table fall back to the linear scale.
	assert.Equal(t, int64(1), fx.app.wageForSlot(24, 24))
}

func TestRookieDraftFlow(t *testing.T) {
	fx := newFixture(t, 2, DefaultConfig())
	ctx := context.Background()
	leagueID := fx.store.league.ID
	season := fx.store.league.Season

	rookieA := fx.store.addPlayer("First Overall", 1, &season)
	rookieB := fx.store.addPlayer("Second Overall", 2, &season)
	fx.store.addPick(1, 1, fx.store.teams[0].ID)
	fx.store.addPick(1, 2, fx.store.teams[1].ID)

	snap, err := fx.app.StartDraft(ctx, leagueID, ModeRookie)
	require.NoError(t, err)
	require.NotNil(t, snap.CurrentPick)
	assert.Equal(t, fx.store.teams[0].ID, snap.CurrentPick.CurrentOwner)

	// The pick belongs to the first team; the second cannot jump it.
	_, err = fx.app.SelectRookie(ctx, leagueID, fx.store.teams[1].ID, rookieA.ID)
	assert.ErrorIs(t, err, ErrNotYourTurn)

	snap, err = fx.app.SelectRookie(ctx, leagueID, fx.store.teams[0].ID, rookieA.ID)
	require.NoError(t, err)

	require.Equal(t, 1, fx.store.contractCount())
	contract := fx.store.lastContract()
	assert.Equal(t, rookieA.ID, contract.PlayerID)
	assert.True(t, contract.Rookie)
	assert.True(t, contract.OptionYear)
	assert.Equal(t, 3, contract.Length)
	// Overall slot 1 of 2 earns the maximum on the scale, flat per year.
	assert.Equal(t, int64(12), contract.Year1Salary)
	assert.Equal(t, int64(12), contract.Year2Salary)
	assert.Equal(t, int64(12), contract.Year3Salary)

	require.NotNil(t, snap.CurrentPick)
	assert.Equal(t, fx.store.teams[1].ID, snap.CurrentPick.CurrentOwner)

	// Last pick consumed completes the draft.
	snap, err = fx.app.SelectRookie(ctx, leagueID, fx.store.teams[1].ID, rookieB.ID)
	require.NoError(t, err)
	assert.False(t, snap.Active)
	assert.Nil(t, snap.CurrentPick)
	assert.True(t, fx.broadcast.has(EventDraftCompleted))

	contract = fx.store.lastContract()
	assert.Equal(t, rookieB.ID, contract.PlayerID)
	assert.Equal(t, int64(1), contract.Year1Salary, "last slot earns the minimum")
}

func TestRookieExpiryAutoPicksBestAvailable(t *testing.T) {
	cfg := DefaultConfig()
	fx := newFixture(t, 2, cfg)
	ctx := context.Background()
	leagueID := fx.store.league.ID
	season := fx.store.league.Season

	best := fx.store.addPlayer("Consensus One", 1, &season)
	fx.store.addPlayer("Consensus Two", 2, &season)
	fx.store.addPlayer("Old Veteran", 3, nil) // not a rookie, never auto-picked
	fx.store.addPick(1, 1, fx.store.teams[0].ID)
	fx.store.addPick(1, 2, fx.store.teams[1].ID)

	_, err := fx.app.StartDraft(ctx, leagueID, ModeRookie)
	require.NoError(t, err)

	fx.clock.BlockUntil(1)
	fx.clock.Advance(cfg.RookieWindow)

	waitFor(t, func() bool { return fx.store.contractCount() == 1 })
	contract := fx.store.lastContract()
	assert.Equal(t, best.ID, contract.PlayerID)
	assert.Equal(t, fx.store.teams[0].ID, contract.FantasyTeamID)
	assert.True(t, contract.Rookie)

	// The next pick times out too; consuming the last pick completes the
	// draft.
	fx.clock.BlockUntil(1)
	fx.clock.Advance(cfg.RookieWindow)

	waitFor(t, func() bool { return fx.store.contractCount() == 2 })
	waitFor(t, func() bool {
		snap, _ := fx.app.GetState(ctx, leagueID)
		return !snap.Active
	})
	assert.True(t, fx.broadcast.has(EventDraftCompleted))
}

func TestRookieSelectionFailureLeavesPickOnClock(t *testing.T) {
	fx := newFixture(t, 2, DefaultConfig())
	ctx := context.Background()
	leagueID := fx.store.league.ID
	season := fx.store.league.Season

	rookie := fx.store.addPlayer("Flaky Commit", 1, &season)
	fx.store.addPick(1, 1, fx.store.teams[0].ID)

	_, err := fx.app.StartDraft(ctx, leagueID, ModeRookie)
	require.NoError(t, err)

	fx.store.mu.Lock()
	fx.store.failSettle = true
	fx.store.mu.Unlock()

	_, err = fx.app.SelectRookie(ctx, leagueID, fx.store.teams[0].ID, rookie.ID)
	assert.ErrorIs(t, err, ErrPersistenceFailure)

	// The pick stays unconsumed and retryable.
	snap, err := fx.app.GetState(ctx, leagueID)
	require.NoError(t, err)
	require.NotNil(t, snap.CurrentPick)
	assert.Nil(t, snap.CurrentPick.PlayerID)
	assert.Equal(t, 0, fx.store.contractCount())

	fx.store.mu.Lock()
	fx.store.failSettle = false
	fx.store.mu.Unlock()

	snap, err = fx.app.SelectRookie(ctx, leagueID, fx.store.teams[0].ID, rookie.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.store.contractCount())
	assert.False(t, snap.Active, "sole pick consumed completes the draft")
}

func TestSelectRookieOutsideRookieMode(t *testing.T) {
	fx := newFixture(t, 2, DefaultConfig())
	ctx := context.Background()
	leagueID := fx.store.league.ID
	player := fx.store.addPlayer("Wrong Mode", 5, nil)

	_, err := fx.app.StartDraft(ctx, leagueID, ModeAuction)
	require.NoError(t, err)

	_, err = fx.app.SelectRookie(ctx, leagueID, fx.store.teams[0].ID, player.ID)
	assert.ErrorIs(t, err, ErrAuctionNotFound)
}
