package store

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// ListOpenDraftPicks retrieves a season's unconsumed picks in strict pick
// order: round first, lottery slot within the round.
func (s *Store) ListOpenDraftPicks(ctx context.Context, leagueID uuid.UUID, season string) ([]models.DraftPick, error) {
	const query = `
		SELECT id, league_id, season, round, original_owner, current_owner, player_id, lottery_slot, revealed, picked_at
		FROM draft_picks
		WHERE league_id = $1 AND season = $2 AND player_id IS NULL
		ORDER BY round, lottery_slot`

	rows, err := s.db.QueryContext(ctx, query, leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft picks: %w", err)
	}
	defer rows.Close()

	var picks []models.DraftPick
	for rows.Next() {
		var p models.DraftPick
		if err := rows.Scan(
			&p.ID,
			&p.LeagueID,
			&p.Season,
			&p.Round,
			&p.OriginalOwner,
			&p.CurrentOwner,
			&p.PlayerID,
			&p.LotterySlot,
			&p.Revealed,
			&p.PickedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan draft pick: %w", err)
		}
		picks = append(picks, p)
	}
	return picks, rows.Err()
}

// CreateDraftPick generates a pick ahead of the season.
func (s *Store) CreateDraftPick(ctx context.Context, pick *models.DraftPick) error {
	const query = `
		INSERT INTO draft_picks (id, league_id, season, round, original_owner, current_owner, player_id, lottery_slot, revealed, picked_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.db.ExecContext(ctx, query,
		pick.ID,
		pick.LeagueID,
		pick.Season,
		pick.Round,
		pick.OriginalOwner,
		pick.CurrentOwner,
		pick.PlayerID,
		pick.LotterySlot,
		pick.Revealed,
		pick.PickedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create draft pick: %w", err)
	}
	return nil
}

// AssignLotterySlot records a lottery result and reveals the pick.
func (s *Store) AssignLotterySlot(ctx context.Context, pickID uuid.UUID, slot int) error {
	const query = `
		UPDATE draft_picks
		SET lottery_slot = $1, revealed = TRUE
		WHERE id = $2`

	_, err := s.db.ExecContext(ctx, query, slot, pickID)
	if err != nil {
		return fmt.Errorf("failed to assign lottery slot: %w", err)
	}
	return nil
}
