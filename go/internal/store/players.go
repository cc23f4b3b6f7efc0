package store

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// GetPlayer retrieves a player by ID.
func (s *Store) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	const query = `
		SELECT id, sport_id, external_id, full_name, position, rank, rookie_year, team_id, created_at
		FROM players
		WHERE id = $1`

	var player models.Player
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.SportID,
		&player.ExternalID,
		&player.FullName,
		&player.Position,
		&player.Rank,
		&player.RookieYear,
		&player.TeamID,
		&player.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	return &player, nil
}

// ListAvailablePlayers lists players in the league's sport that are not
// under contract in the league, best rank first. With rookiesOnly set the
// pool is restricted to the league's current rookie class.
func (s *Store) ListAvailablePlayers(ctx context.Context, leagueID uuid.UUID, rookiesOnly bool, limit int) ([]models.Player, error) {
	const query = `
		SELECT p.id, p.sport_id, p.external_id, p.full_name, p.position, p.rank, p.rookie_year, p.team_id, p.created_at
		FROM players p
		JOIN leagues l ON l.sport_id = p.sport_id AND l.id = $1
		WHERE NOT EXISTS (
			SELECT 1 FROM contracts c
			WHERE c.league_id = $1 AND c.player_id = p.id
		)
		AND ($2 = FALSE OR p.rookie_year = l.season)
		ORDER BY p.rank
		LIMIT $3`

	rows, err := s.db.QueryContext(ctx, query, leagueID, rookiesOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list available players: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var player models.Player
		if err := rows.Scan(
			&player.ID,
			&player.SportID,
			&player.ExternalID,
			&player.FullName,
			&player.Position,
			&player.Rank,
			&player.RookieYear,
			&player.TeamID,
			&player.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, player)
	}
	return players, rows.Err()
}

// CreatePlayer inserts a player into the pool.
func (s *Store) CreatePlayer(ctx context.Context, player *models.Player) error {
	const query = `
		INSERT INTO players (id, sport_id, external_id, full_name, position, rank, rookie_year, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

	_, err := s.db.ExecContext(ctx, query,
		player.ID,
		player.SportID,
		player.ExternalID,
		player.FullName,
		player.Position,
		player.Rank,
		player.RookieYear,
		player.TeamID,
	)
	if err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}
	return nil
}
