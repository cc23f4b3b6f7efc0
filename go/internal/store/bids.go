package store

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// ListOpenMarketBids retrieves a league's unsettled provisional offers.
func (s *Store) ListOpenMarketBids(ctx context.Context, leagueID uuid.UUID) ([]models.MarketBid, error) {
	const query = `
		SELECT id, league_id, fantasy_team_id, player_id, amount, years, created_at
		FROM market_bids
		WHERE league_id = $1`

	rows, err := s.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list market bids: %w", err)
	}
	defer rows.Close()

	var bids []models.MarketBid
	for rows.Next() {
		var b models.MarketBid
		if err := rows.Scan(&b.ID, &b.LeagueID, &b.FantasyTeamID, &b.PlayerID, &b.Amount, &b.Years, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan market bid: %w", err)
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}

// CreateMarketBid records a provisional offer on the open market.
func (s *Store) CreateMarketBid(ctx context.Context, bid *models.MarketBid) error {
	const query = `
		INSERT INTO market_bids (id, league_id, fantasy_team_id, player_id, amount, years, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())`

	_, err := s.db.ExecContext(ctx, query, bid.ID, bid.LeagueID, bid.FantasyTeamID, bid.PlayerID, bid.Amount, bid.Years)
	if err != nil {
		return fmt.Errorf("failed to create market bid: %w", err)
	}
	return nil
}
