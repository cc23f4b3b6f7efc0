package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/auction"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// ListContracts retrieves all contracts in a league.
func (s *Store) ListContracts(ctx context.Context, leagueID uuid.UUID) ([]models.Contract, error) {
	const query = `
		SELECT id, league_id, fantasy_team_id, player_id, year1_salary, year2_salary, year3_salary, length, rookie, option_year, created_at
		FROM contracts
		WHERE league_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []models.Contract
	for rows.Next() {
		var c models.Contract
		if err := rows.Scan(
			&c.ID,
			&c.LeagueID,
			&c.FantasyTeamID,
			&c.PlayerID,
			&c.Year1Salary,
			&c.Year2Salary,
			&c.Year3Salary,
			&c.Length,
			&c.Rookie,
			&c.OptionYear,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

const insertContractQuery = `
	INSERT INTO contracts (id, league_id, fantasy_team_id, player_id, year1_salary, year2_salary, year3_salary, length, rookie, option_year, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	RETURNING created_at`

// SettleContract converts a won lot into a contract and removes any stale
// provisional market bid for the player, atomically.
func (s *Store) SettleContract(ctx context.Context, p auction.SettlementParams) (*models.Contract, error) {
	contract := contractFromParams(p)

	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, insertContractQuery,
			contract.ID,
			contract.LeagueID,
			contract.FantasyTeamID,
			contract.PlayerID,
			contract.Year1Salary,
			contract.Year2Salary,
			contract.Year3Salary,
			contract.Length,
			contract.Rookie,
			contract.OptionYear,
		).Scan(&contract.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert contract: %w", err)
		}

		const deleteBid = `DELETE FROM market_bids WHERE league_id = $1 AND player_id = $2`
		if _, err := tx.ExecContext(ctx, deleteBid, p.LeagueID, p.PlayerID); err != nil {
			return fmt.Errorf("failed to delete provisional bid: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// SettleRookiePick assigns the player to the pick and creates the rookie
// contract; both commit or neither is visible.
func (s *Store) SettleRookiePick(ctx context.Context, pickID uuid.UUID, p auction.SettlementParams) (*models.Contract, error) {
	contract := contractFromParams(p)

	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		const consumePick = `
			UPDATE draft_picks
			SET player_id = $1, picked_at = NOW()
			WHERE id = $2 AND player_id IS NULL`
		res, err := tx.ExecContext(ctx, consumePick, p.PlayerID, pickID)
		if err != nil {
			return fmt.Errorf("failed to consume draft pick: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check pick update: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("draft pick %s already consumed", pickID)
		}

		if err := tx.QueryRowContext(ctx, insertContractQuery,
			contract.ID,
			contract.LeagueID,
			contract.FantasyTeamID,
			contract.PlayerID,
			contract.Year1Salary,
			contract.Year2Salary,
			contract.Year3Salary,
			contract.Length,
			contract.Rookie,
			contract.OptionYear,
		).Scan(&contract.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert rookie contract: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contract, nil
}

// DeleteLatestContract removes the league's most recent contract and frees
// the draft pick that created it, if any. Returns nil when the league has
// no contracts.
func (s *Store) DeleteLatestContract(ctx context.Context, leagueID uuid.UUID) (*models.Contract, error) {
	var contract models.Contract

	err := s.WithTx(ctx, func(tx *sql.Tx) error {
		const latest = `
			SELECT id, league_id, fantasy_team_id, player_id, year1_salary, year2_salary, year3_salary, length, rookie, option_year, created_at
			FROM contracts
			WHERE league_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT 1
			FOR UPDATE`
		err := tx.QueryRowContext(ctx, latest, leagueID).Scan(
			&contract.ID,
			&contract.LeagueID,
			&contract.FantasyTeamID,
			&contract.PlayerID,
			&contract.Year1Salary,
			&contract.Year2Salary,
			&contract.Year3Salary,
			&contract.Length,
			&contract.Rookie,
			&contract.OptionYear,
			&contract.CreatedAt,
		)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, contract.ID); err != nil {
			return fmt.Errorf("failed to delete contract: %w", err)
		}

		const freePick = `
			UPDATE draft_picks
			SET player_id = NULL, picked_at = NULL
			WHERE league_id = $1 AND player_id = $2`
		if _, err := tx.ExecContext(ctx, freePick, leagueID, contract.PlayerID); err != nil {
			return fmt.Errorf("failed to free draft pick: %w", err)
		}
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func contractFromParams(p auction.SettlementParams) *models.Contract {
	return &models.Contract{
		ID:            uuid.New(),
		LeagueID:      p.LeagueID,
		FantasyTeamID: p.TeamID,
		PlayerID:      p.PlayerID,
		Year1Salary:   p.Split.Year1,
		Year2Salary:   p.Split.Year2,
		Year3Salary:   p.Split.Year3,
		Length:        p.Length,
		Rookie:        p.Rookie,
		OptionYear:    p.Option,
	}
}
