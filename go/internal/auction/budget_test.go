package auction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
)

func TestCalculatorRemaining(t *testing.T) {
	teamA := uuid.New()
	teamB := uuid.New()

	cases := []struct {
		name string
		calc Calculator
		team uuid.UUID
		year int
		want int64
	}{
		{
			name: "empty league leaves the full cap",
			calc: Calculator{Cap: 100, Season: "2026"},
			team: teamA,
			year: 1,
			want: 100,
		},
		{
			name: "open bid freezes its year-1 amount",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				OpenBids: []models.MarketBid{
					{FantasyTeamID: teamA, Amount: 10, Years: 1},
				},
			},
			team: teamA,
			year: 1,
			want: 90,
		},
		{
			name: "open bids never reserve beyond year one",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				OpenBids: []models.MarketBid{
					{FantasyTeamID: teamA, Amount: 30, Years: 3},
				},
			},
			team: teamA,
			year: 2,
			want: 100,
		},
		{
			name: "contracts charge their per-year salary",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				Contracts: []models.Contract{
					{FantasyTeamID: teamA, Year1Salary: 7, Year2Salary: 8, Length: 2},
				},
			},
			team: teamA,
			year: 2,
			want: 92,
		},
		{
			name: "contracts past their length cost nothing",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				Contracts: []models.Contract{
					{FantasyTeamID: teamA, Year1Salary: 7, Length: 1},
				},
			},
			team: teamA,
			year: 3,
			want: 100,
		},
		{
			name: "dead cap hits only its own season",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				DeadCap: []models.DeadCapEntry{
					{FantasyTeamID: teamA, Season: "2026", Amount: 5},
					{FantasyTeamID: teamA, Season: "2027", Amount: 9},
				},
			},
			team: teamA,
			year: 1,
			want: 95,
		},
		{
			name: "dead cap for next season hits year two",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				DeadCap: []models.DeadCapEntry{
					{FantasyTeamID: teamA, Season: "2027", Amount: 9},
				},
			},
			team: teamA,
			year: 2,
			want: 91,
		},
		{
			name: "other teams' commitments are ignored",
			calc: Calculator{
				Cap:    100,
				Season: "2026",
				Contracts: []models.Contract{
					{FantasyTeamID: teamB, Year1Salary: 40, Length: 1},
				},
				OpenBids: []models.MarketBid{
					{FantasyTeamID: teamB, Amount: 20, Years: 1},
				},
			},
			team: teamA,
			year: 1,
			want: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.calc.Remaining(tc.team, tc.year))
		})
	}
}

func TestCalculatorRemainingWithLot(t *testing.T) {
	teamA := uuid.New()
	teamB := uuid.New()
	calc := Calculator{Cap: 100, Season: "2026"}
	lot := &Lot{BidderID: teamA, Amount: 10, Years: 1, Year1: 10}

	assert.Equal(t, int64(90), calc.RemainingWithLot(teamA, 1, lot), "high bidder's year-1 is frozen")
	assert.Equal(t, int64(100), calc.RemainingWithLot(teamB, 1, lot), "outbid teams freeze nothing")
	assert.Equal(t, int64(100), calc.RemainingWithLot(teamA, 2, lot), "live lots never reserve future years")
	assert.Equal(t, int64(100), calc.RemainingWithLot(teamA, 1, nil))
}

func TestOffsetSeason(t *testing.T) {
	assert.Equal(t, "2026", offsetSeason("2026", 0))
	assert.Equal(t, "2028", offsetSeason("2026", 2))
	assert.Equal(t, "", offsetSeason("spring", 1), "non-numeric seasons only match at offset zero")
	assert.Equal(t, "spring", offsetSeason("spring", 0))
}
