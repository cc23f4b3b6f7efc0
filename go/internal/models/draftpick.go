package models

import (
	"github.com/google/uuid"
	"time"
)

// DraftPick represents a single rookie-draft pick.
// Picks are generated ahead of the season; the lottery assigns slots and a
// pick is consumed when a player is selected with it.
type DraftPick struct {
	ID            uuid.UUID  `json:"id"`
	LeagueID      uuid.UUID  `json:"league_id"`
	Season        string     `json:"season"`
	Round         int        `json:"round"`
	OriginalOwner uuid.UUID  `json:"original_owner"`
	CurrentOwner  uuid.UUID  `json:"current_owner"`
	PlayerID      *uuid.UUID `json:"player_id,omitempty"` // nil until picked
	LotterySlot   *int       `json:"lottery_slot,omitempty"`
	Revealed      bool       `json:"revealed"`
	PickedAt      *time.Time `json:"picked_at,omitempty"`
}

// OverallSlot returns the absolute pick number, 1-based, given the number
// of teams in the league. Requires the lottery slot to be assigned.
func (p *DraftPick) OverallSlot(teams int) int {
	if p.LotterySlot == nil {
		return 0
	}
	return (p.Round-1)*teams + *p.LotterySlot
}
