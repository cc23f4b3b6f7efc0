package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a sports player in the system
type Player struct {
	ID         uuid.UUID  `json:"id"`
	SportID    string     `json:"sport_id"`
	ExternalID string     `json:"external_id"`
	FullName   string     `json:"full_name"`
	Position   string     `json:"position"` // 'QB', 'RB', 'WR', etc.
	Rank       int        `json:"rank"`     // consensus rank, 1 is best
	RookieYear *string    `json:"rookie_year,omitempty"`
	TeamID     *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// IsRookie reports whether the player is a rookie for the given season.
func (p *Player) IsRookie(season string) bool {
	return p.RookieYear != nil && *p.RookieYear == season
}
