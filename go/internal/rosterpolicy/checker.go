package rosterpolicy

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// Store defines what the checker needs from the durable store.
type Store interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListContracts(ctx context.Context, leagueID uuid.UUID) ([]models.Contract, error)
}

// Checker enforces roster-size limits. Position-level quotas live with the
// league settings service; the draft engine only needs the hard slot count.
type Checker struct {
	store Store
}

func NewChecker(store Store) *Checker {
	return &Checker{store: store}
}

// Validate reports whether the team can add the player without exceeding
// its roster limit. A nil error means the addition is allowed.
func (c *Checker) Validate(ctx context.Context, teamID, leagueID, playerID uuid.UUID) error {
	league, err := c.store.GetLeague(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("failed to get league: %w", err)
	}
	if league.Settings.RosterSlots <= 0 {
		return nil
	}

	contracts, err := c.store.ListContracts(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("failed to list contracts: %w", err)
	}

	size := 0
	for i := range contracts {
		if contracts[i].PlayerID == playerID {
			return fmt.Errorf("player already under contract in league %s", leagueID)
		}
		if contracts[i].FantasyTeamID == teamID {
			size++
		}
	}
	if size >= league.Settings.RosterSlots {
		return fmt.Errorf("roster is full (%d/%d slots)", size, league.Settings.RosterSlots)
	}
	return nil
}
