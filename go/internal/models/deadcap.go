package models

import (
	"time"

	"github.com/google/uuid"
)

// DeadCapEntry is a cap penalty from a terminated contract. It reduces a
// team's budget for one specific season only.
type DeadCapEntry struct {
	ID            uuid.UUID `json:"id"`
	LeagueID      uuid.UUID `json:"league_id"`
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`
	Season        string    `json:"season"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
