package auction

import (
	"time"

	"github.com/google/uuid"
)

// Event types pushed through the broadcast gateway.
const (
	EventDraftStarted     = "DraftStarted"
	EventDraftPaused      = "DraftPaused"
	EventDraftCompleted   = "DraftCompleted"
	EventLotOpened        = "LotOpened"
	EventBidPlaced        = "BidPlaced"
	EventLotReset         = "LotReset"
	EventLotSettled       = "LotSettled"
	EventRookieSelected   = "RookieSelected"
	EventSettlementUndone = "SettlementUndone"
	EventStateUpdated     = "StateUpdated"
)

// DraftStartedPayload is the payload for a DraftStarted event
type DraftStartedPayload struct {
	LeagueID  string    `json:"league_id"`
	Mode      Mode      `json:"mode"`
	StartedAt time.Time `json:"started_at"`
	Teams     int       `json:"teams"`
}

// DraftPausedPayload is the payload for a DraftPaused event
type DraftPausedPayload struct {
	LeagueID string    `json:"league_id"`
	PausedAt time.Time `json:"paused_at"`
}

// LotOpenedPayload is the payload for a LotOpened event
type LotOpenedPayload struct {
	LeagueID   string    `json:"league_id"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	BidderID   string    `json:"bidder_id"`
	Amount     int64     `json:"amount"`
	Years      int       `json:"years"`
	Year1      int64     `json:"year1"`
	TimeoutAt  time.Time `json:"timeout_at"`
}

// BidPlacedPayload is the payload for a BidPlaced event
type BidPlacedPayload struct {
	LeagueID  string    `json:"league_id"`
	PlayerID  string    `json:"player_id"`
	BidderID  string    `json:"bidder_id"`
	Amount    int64     `json:"amount"`
	Years     int       `json:"years"`
	Year1     int64     `json:"year1"`
	TimeoutAt time.Time `json:"timeout_at"`
}

// LotSettledPayload is the payload for a LotSettled event
type LotSettledPayload struct {
	LeagueID   string      `json:"league_id"`
	PlayerID   string      `json:"player_id"`
	PlayerName string      `json:"player_name"`
	WinnerID   string      `json:"winner_id"`
	WinnerName string      `json:"winner_name"`
	Total      int64       `json:"total"`
	Years      int         `json:"years"`
	Split      SalarySplit `json:"split"`
	SettledAt  time.Time   `json:"settled_at"`
}

// RookieSelectedPayload is the payload for a RookieSelected event
type RookieSelectedPayload struct {
	LeagueID   string    `json:"league_id"`
	PickID     string    `json:"pick_id"`
	Slot       int       `json:"slot"`
	TeamID     string    `json:"team_id"`
	PlayerID   string    `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Salary     int64     `json:"salary"`
	AutoPick   bool      `json:"auto_pick"`
	PickedAt   time.Time `json:"picked_at"`
}

// SettlementUndonePayload is the payload for a SettlementUndone event
type SettlementUndonePayload struct {
	LeagueID string    `json:"league_id"`
	PlayerID string    `json:"player_id"`
	TeamID   string    `json:"team_id"`
	UndoneAt time.Time `json:"undone_at"`
}

// outbound pairs an event with its payload for delivery after the league
// lock is released.
type outbound struct {
	eventType string
	payload   any
}

// Broadcaster defines what the engine needs from the push gateway.
// Delivery is best effort and must never block state mutation.
type Broadcaster interface {
	Broadcast(leagueID uuid.UUID, eventType string, payload any)
}
