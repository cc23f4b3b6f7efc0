package store

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// ListDeadCap retrieves a league's dead-cap ledger entries.
func (s *Store) ListDeadCap(ctx context.Context, leagueID uuid.UUID) ([]models.DeadCapEntry, error) {
	const query = `
		SELECT id, league_id, fantasy_team_id, season, amount, created_at
		FROM dead_cap_entries
		WHERE league_id = $1`

	rows, err := s.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead cap entries: %w", err)
	}
	defer rows.Close()

	var entries []models.DeadCapEntry
	for rows.Next() {
		var e models.DeadCapEntry
		if err := rows.Scan(&e.ID, &e.LeagueID, &e.FantasyTeamID, &e.Season, &e.Amount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dead cap entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CreateDeadCapEntry records a cap penalty for a team and season.
func (s *Store) CreateDeadCapEntry(ctx context.Context, entry *models.DeadCapEntry) error {
	const query = `
		INSERT INTO dead_cap_entries (id, league_id, fantasy_team_id, season, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := s.db.ExecContext(ctx, query, entry.ID, entry.LeagueID, entry.FantasyTeamID, entry.Season, entry.Amount)
	if err != nil {
		return fmt.Errorf("failed to create dead cap entry: %w", err)
	}
	return nil
}
