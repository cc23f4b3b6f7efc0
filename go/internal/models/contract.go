package models

import (
	"time"

	"github.com/google/uuid"
)

// Contract represents a settled multi-year player contract.
// The sum of the yearly salaries always equals the winning bid total.
type Contract struct {
	ID            uuid.UUID `json:"id"`
	LeagueID      uuid.UUID `json:"league_id"`
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Year1Salary   int64     `json:"year1_salary"`
	Year2Salary   int64     `json:"year2_salary"`
	Year3Salary   int64     `json:"year3_salary"`
	Length        int       `json:"length"` // 1-3 years
	Rookie        bool      `json:"rookie"`
	OptionYear    bool      `json:"option_year"` // rookie deals carry a team option
	CreatedAt     time.Time `json:"created_at"`
}

// SalaryForYear returns the cap charge for a projection year (1-based).
// Years past the contract length cost nothing.
func (c *Contract) SalaryForYear(year int) int64 {
	switch year {
	case 1:
		return c.Year1Salary
	case 2:
		return c.Year2Salary
	case 3:
		return c.Year3Salary
	default:
		return 0
	}
}

// Total returns the combined value across all contract years.
func (c *Contract) Total() int64 {
	return c.Year1Salary + c.Year2Salary + c.Year3Salary
}
