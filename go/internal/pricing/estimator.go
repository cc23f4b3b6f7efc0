package pricing

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// Store defines what the rank estimator needs from the durable store.
type Store interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
}

// RankEstimator derives an opening price from a player's consensus rank:
// top-ranked players open near the cap's nomination ceiling, the long tail
// opens at the league minimum. It backs the engine when no projection
// service is configured.
type RankEstimator struct {
	store Store

	// MaxOpening is the opening price for rank 1. Ranks at or beyond
	// TailRank open at the league minimum.
	MaxOpening int64
	TailRank   int
}

func NewRankEstimator(store Store, maxOpening int64, tailRank int) *RankEstimator {
	if tailRank < 2 {
		tailRank = 2
	}
	return &RankEstimator{store: store, MaxOpening: maxOpening, TailRank: tailRank}
}

// Estimate returns the minimum acceptable year-1 opening price for the
// player in the league.
func (e *RankEstimator) Estimate(ctx context.Context, playerID, leagueID uuid.UUID) (int64, error) {
	league, err := e.store.GetLeague(ctx, leagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to get league: %w", err)
	}
	player, err := e.store.GetPlayer(ctx, playerID)
	if err != nil {
		return 0, fmt.Errorf("failed to get player: %w", err)
	}

	minimum := league.Settings.MinimumBid
	rank := player.Rank
	if rank < 1 {
		rank = 1
	}
	if rank >= e.TailRank || e.MaxOpening <= minimum {
		return minimum, nil
	}

	span := e.MaxOpening - minimum
	price := e.MaxOpening - span*int64(rank-1)/int64(e.TailRank-1)
	if price < minimum {
		price = minimum
	}
	return price, nil
}
