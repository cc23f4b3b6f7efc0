package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// GetLeague retrieves a league by ID.
func (s *Store) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	const query = `
		SELECT id, name, sport_id, league_type, commissioner_id, league_settings, status, season, created_at, updated_at
		FROM leagues
		WHERE id = $1`

	var league models.League
	var settingsJSON []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&league.ID,
		&league.Name,
		&league.SportID,
		&league.LeagueType,
		&league.CommissionerID,
		&settingsJSON,
		&league.Status,
		&league.Season,
		&league.CreatedAt,
		&league.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	if len(settingsJSON) > 0 {
		if err := json.Unmarshal(settingsJSON, &league.Settings); err != nil {
			return nil, fmt.Errorf("failed to unmarshal league settings: %w", err)
		}
	}
	return &league, nil
}

// CreateLeague creates a new league.
func (s *Store) CreateLeague(ctx context.Context, league *models.League) error {
	settingsJSON, err := json.Marshal(league.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal league settings: %w", err)
	}

	const query = `
		INSERT INTO leagues (id, name, sport_id, league_type, commissioner_id, league_settings, status, season, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`

	_, err = s.db.ExecContext(ctx, query,
		league.ID,
		league.Name,
		league.SportID,
		league.LeagueType,
		league.CommissionerID,
		settingsJSON,
		league.Status,
		league.Season,
	)
	if err != nil {
		return fmt.Errorf("failed to create league: %w", err)
	}
	return nil
}

// ListFantasyTeams retrieves a league's teams in join order.
func (s *Store) ListFantasyTeams(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error) {
	const query = `
		SELECT id, league_id, owner_id, name, logo_url, created_at
		FROM fantasy_teams
		WHERE league_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy teams: %w", err)
	}
	defer rows.Close()

	var teams []models.FantasyTeam
	for rows.Next() {
		var team models.FantasyTeam
		if err := rows.Scan(&team.ID, &team.LeagueID, &team.OwnerID, &team.Name, &team.LogoURL, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fantasy team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// CreateFantasyTeam creates a new fantasy team.
func (s *Store) CreateFantasyTeam(ctx context.Context, team *models.FantasyTeam) error {
	const query = `
		INSERT INTO fantasy_teams (id, league_id, owner_id, name, logo_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`

	_, err := s.db.ExecContext(ctx, query, team.ID, team.LeagueID, team.OwnerID, team.Name, team.LogoURL)
	if err != nil {
		return fmt.Errorf("failed to create fantasy team: %w", err)
	}
	return nil
}
