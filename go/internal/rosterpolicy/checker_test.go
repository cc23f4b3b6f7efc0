package rosterpolicy

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
)

type fakeStore struct {
	league    *models.League
	contracts []models.Contract
}

func (f *fakeStore) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return f.league, nil
}

func (f *fakeStore) ListContracts(ctx context.Context, leagueID uuid.UUID) ([]models.Contract, error) {
	return f.contracts, nil
}

func TestCheckerValidate(t *testing.T) {
	leagueID := uuid.New()
	teamID := uuid.New()
	otherTeam := uuid.New()
	playerID := uuid.New()

	league := func(slots int) *models.League {
		return &models.League{
			ID:       leagueID,
			Settings: models.LeagueSettings{SalaryCap: 100, RosterSlots: slots},
			Season:   "2026",
		}
	}
	contract := func(team, player uuid.UUID) models.Contract {
		return models.Contract{LeagueID: leagueID, FantasyTeamID: team, PlayerID: player}
	}

	cases := []struct {
		name    string
		store   *fakeStore
		wantErr bool
	}{
		{
			name:  "room on the roster",
			store: &fakeStore{league: league(2), contracts: []models.Contract{contract(teamID, uuid.New())}},
		},
		{
			name: "full roster is rejected",
			store: &fakeStore{league: league(2), contracts: []models.Contract{
				contract(teamID, uuid.New()),
				contract(teamID, uuid.New()),
			}},
			wantErr: true,
		},
		{
			name:    "player already under contract anywhere in the league",
			store:   &fakeStore{league: league(10), contracts: []models.Contract{contract(otherTeam, playerID)}},
			wantErr: true,
		},
		{
			name: "zero slots disables the limit",
			store: &fakeStore{league: league(0), contracts: []models.Contract{
				contract(teamID, uuid.New()),
				contract(teamID, uuid.New()),
			}},
		},
		{
			name: "other teams' rosters do not count against the team",
			store: &fakeStore{league: league(2), contracts: []models.Contract{
				contract(otherTeam, uuid.New()),
				contract(otherTeam, uuid.New()),
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checker := NewChecker(tc.store)
			err := checker.Validate(context.Background(), teamID, leagueID, playerID)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
