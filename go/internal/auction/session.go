package auction

import (
	"time"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// Mode selects which draft variant a session runs.
type Mode string

const (
	ModeAuction Mode = "AUCTION"
	ModeRookie  Mode = "ROOKIE"
)

// Lot is the player currently up for bidding in a league's live session.
type Lot struct {
	PlayerID   uuid.UUID `json:"player_id"`
	PlayerName string    `json:"player_name"`
	Amount     int64     `json:"amount"`
	Years      int       `json:"years"`
	Year1      int64     `json:"year1"`
	BidderID   uuid.UUID `json:"bidder_id"`
	BidderName string    `json:"bidder_name"`
}

// TeamSummary is the per-team view recomputed on every meaningful change.
type TeamSummary struct {
	FantasyTeamID   uuid.UUID   `json:"fantasy_team_id"`
	TeamName        string      `json:"team_name"`
	RemainingBudget int64       `json:"remaining_budget"`
	RosterSize      int         `json:"roster_size"`
	PlayerIDs       []uuid.UUID `json:"player_ids"`
}

// Session is the per-league mutable draft aggregate. It is ephemeral and
// reconstructible from the durable store; every field is mutated only while
// holding the owning league's lock.
type Session struct {
	LeagueID  uuid.UUID
	Mode      Mode
	Active    bool
	Paused    bool
	Order     []uuid.UUID // participant turn order (fantasy team ids)
	Turn      int
	Lot       *Lot
	Deadline  time.Time
	Summaries []TeamSummary
	Online    map[uuid.UUID]bool

	// rookie variant
	Picks     []models.DraftPick
	PickIndex int
}

func newSession(leagueID uuid.UUID) *Session {
	return &Session{
		LeagueID: leagueID,
		Mode:     ModeAuction,
		Online:   make(map[uuid.UUID]bool),
	}
}

// onTurn reports whether the team holds the current nomination/pick turn.
func (s *Session) onTurn(teamID uuid.UUID) bool {
	if len(s.Order) == 0 {
		return false
	}
	return s.Order[s.Turn] == teamID
}

// advanceTurn moves to the next participant. Only settlement calls this.
func (s *Session) advanceTurn() {
	if len(s.Order) == 0 {
		return
	}
	s.Turn = (s.Turn + 1) % len(s.Order)
}

// rewindTurn is the inverse of advanceTurn, used by undo.
func (s *Session) rewindTurn() {
	if len(s.Order) == 0 {
		return
	}
	s.Turn = (s.Turn - 1 + len(s.Order)) % len(s.Order)
}

// currentPick returns the next unconsumed rookie pick, or nil when the
// draft has run out of picks.
func (s *Session) currentPick() *models.DraftPick {
	if s.PickIndex < 0 || s.PickIndex >= len(s.Picks) {
		return nil
	}
	return &s.Picks[s.PickIndex]
}

// StateSnapshot is an immutable copy of a session handed to callers and
// broadcast to subscribers. Taking the copy under the lock lets delivery
// happen outside it.
type StateSnapshot struct {
	LeagueID    uuid.UUID         `json:"league_id"`
	Mode        Mode              `json:"mode"`
	Active      bool              `json:"active"`
	Paused      bool              `json:"paused"`
	Order       []uuid.UUID       `json:"order"`
	Turn        int               `json:"turn"`
	Lot         *Lot              `json:"lot,omitempty"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	Summaries   []TeamSummary     `json:"summaries"`
	Online      []uuid.UUID       `json:"online"`
	CurrentPick *models.DraftPick `json:"current_pick,omitempty"`
}

func (s *Session) snapshot() *StateSnapshot {
	snap := &StateSnapshot{
		LeagueID:  s.LeagueID,
		Mode:      s.Mode,
		Active:    s.Active,
		Paused:    s.Paused,
		Order:     append([]uuid.UUID(nil), s.Order...),
		Turn:      s.Turn,
		Summaries: append([]TeamSummary(nil), s.Summaries...),
	}
	if s.Lot != nil {
		lot := *s.Lot
		snap.Lot = &lot
	}
	if !s.Deadline.IsZero() {
		deadline := s.Deadline
		snap.Deadline = &deadline
	}
	for id, online := range s.Online {
		if online {
			snap.Online = append(snap.Online, id)
		}
	}
	if s.Mode == ModeRookie {
		if pick := s.currentPick(); pick != nil {
			copied := *pick
			snap.CurrentPick = &copied
		}
	}
	return snap
}
