package auction

import (
	"strconv"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// Calculator computes a team's remaining cap space for a projection year
// from committed contracts, the dead-cap ledger and provisional bids. It is
// a pure view over data loaded for one league.
type Calculator struct {
	Cap       int64
	Season    string // league's current season, e.g. "2026"
	Contracts []models.Contract
	DeadCap   []models.DeadCapEntry
	OpenBids  []models.MarketBid
}

// Remaining returns cap minus contract salaries for the year, minus ledger
// entries for the matching season, minus frozen year-1 amounts of the
// team's open provisional market bids. Unsettled offers never reserve
// beyond year 1; a bid's future-year cost is realized only once it becomes
// a contract.
func (c *Calculator) Remaining(teamID uuid.UUID, year int) int64 {
	remaining := c.Cap

	for i := range c.Contracts {
		if c.Contracts[i].FantasyTeamID == teamID {
			remaining -= c.Contracts[i].SalaryForYear(year)
		}
	}

	season := offsetSeason(c.Season, year-1)
	for i := range c.DeadCap {
		if c.DeadCap[i].FantasyTeamID == teamID && c.DeadCap[i].Season == season {
			remaining -= c.DeadCap[i].Amount
		}
	}

	if year == 1 {
		for i := range c.OpenBids {
			if c.OpenBids[i].FantasyTeamID == teamID {
				remaining -= c.OpenBids[i].Year1()
			}
		}
	}

	return remaining
}

// RemainingWithLot additionally freezes the session's live high bid when it
// belongs to the team.
func (c *Calculator) RemainingWithLot(teamID uuid.UUID, year int, lot *Lot) int64 {
	remaining := c.Remaining(teamID, year)
	if year == 1 && lot != nil && lot.BidderID == teamID {
		remaining -= lot.Year1
	}
	return remaining
}

// offsetSeason shifts a numeric season string by n years. Non-numeric
// seasons only ever match at offset zero.
func offsetSeason(season string, n int) string {
	if n == 0 {
		return season
	}
	y, err := strconv.Atoi(season)
	if err != nil {
		return ""
	}
	return strconv.Itoa(y + n)
}
