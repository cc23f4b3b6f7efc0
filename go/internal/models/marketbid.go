package models

import (
	"time"

	"github.com/google/uuid"
)

// MarketBid is a provisional offer on the open market that has not settled
// into a contract yet. Only its year-1 cost freezes budget.
type MarketBid struct {
	ID            uuid.UUID `json:"id"`
	LeagueID      uuid.UUID `json:"league_id"`
	FantasyTeamID uuid.UUID `json:"fantasy_team_id"`
	PlayerID      uuid.UUID `json:"player_id"`
	Amount        int64     `json:"amount"`
	Years         int       `json:"years"`
	CreatedAt     time.Time `json:"created_at"`
}

// Year1 returns the first-season cap charge implied by the offer.
func (b *MarketBid) Year1() int64 {
	if b.Years <= 0 {
		return b.Amount
	}
	return b.Amount / int64(b.Years)
}
