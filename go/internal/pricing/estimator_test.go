package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
)

type fakeStore struct {
	league *models.League
	player *models.Player
}

func (f *fakeStore) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.league, nil
}

func (f *fakeStore) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return f.player, nil
}

func TestRankEstimator(t *testing.T) {
	league := &models.League{
		ID:       uuid.New(),
		Settings: models.LeagueSettings{MinimumBid: 1},
		Season:   "2026",
	}

	estimate := func(rank int) int64 {
		fs := &fakeStore{league: league, player: &models.Player{ID: uuid.New(), Rank: rank}}
		e := NewRankEstimator(fs, 50, 200)
		price, err := e.Estimate(context.Background(), fs.player.ID, league.ID)
		require.NoError(t, err)
		return price
	}

	assert.Equal(t, int64(50), estimate(1), "rank 1 opens at the ceiling")
	assert.Equal(t, int64(1), estimate(200), "the tail opens at the league minimum")
	assert.Equal(t, int64(1), estimate(5000), "ranks past the tail stay at the minimum")
	assert.Equal(t, int64(50), estimate(0), "unranked players price like rank 1")

	prev := estimate(1)
	for rank := 2; rank < 200; rank += 7 {
		price := estimate(rank)
		assert.LessOrEqual(t, price, prev, "prices never rise with worse rank (rank %d)", rank)
		assert.GreaterOrEqual(t, price, int64(1), "rank %d", rank)
		prev = price
	}
}

func TestRankEstimatorCeilingBelowMinimum(t *testing.T) {
	league := &models.League{
		ID:       uuid.New(),
		Settings: models.LeagueSettings{MinimumBid: 10},
		Season:   "2026",
	}
	fs := &fakeStore{league: league, player: &models.Player{ID: uuid.New(), Rank: 1}}

	e := NewRankEstimator(fs, 5, 200)
	price, err := e.Estimate(context.Background(), fs.player.ID, league.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), price, "the league minimum is always the floor")
}
