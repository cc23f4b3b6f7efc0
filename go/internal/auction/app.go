package auction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// SettlementParams describes a won lot or a consumed rookie pick that must
// become a durable contract.
type SettlementParams struct {
	LeagueID uuid.UUID
	TeamID   uuid.UUID
	PlayerID uuid.UUID
	Split    SalarySplit
	Length   int
	Rookie   bool
	Option   bool
}

// Store defines what the engine needs from the durable store. Settlement
// methods run inside a single transaction; everything else is a plain read.
type Store interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListFantasyTeams(ctx context.Context, leagueID uuid.UUID) ([]models.FantasyTeam, error)
	ListContracts(ctx context.Context, leagueID uuid.UUID) ([]models.Contract, error)
	ListDeadCap(ctx context.Context, leagueID uuid.UUID) ([]models.DeadCapEntry, error)
	ListOpenMarketBids(ctx context.Context, leagueID uuid.UUID) ([]models.MarketBid, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListAvailablePlayers(ctx context.Context, leagueID uuid.UUID, rookiesOnly bool, limit int) ([]models.Player, error)
	ListOpenDraftPicks(ctx context.Context, leagueID uuid.UUID, season string) ([]models.DraftPick, error)
	SettleContract(ctx context.Context, p SettlementParams) (*models.Contract, error)
	SettleRookiePick(ctx context.Context, pickID uuid.UUID, p SettlementParams) (*models.Contract, error)
	DeleteLatestContract(ctx context.Context, leagueID uuid.UUID) (*models.Contract, error)
}

// Config carries the engine's tunables.
type Config struct {
	AuctionWindow   time.Duration // countdown per lot on the open market
	RookieWindow    time.Duration // countdown per rookie pick
	ExpiryTolerance time.Duration // negative buffer for late timer callbacks
	RookieYears     int
	WageTable       map[int]int64 // overall slot -> rookie salary
	RookieMaxSalary int64         // linear fallback, slot 1
	RookieMinSalary int64         // linear fallback, last slot
}

// DefaultConfig returns the standard draft windows.
func DefaultConfig() Config {
	return Config{
		AuctionWindow:   60 * time.Second,
		RookieWindow:    120 * time.Second,
		ExpiryTolerance: 500 * time.Millisecond,
		RookieYears:     3,
		RookieMaxSalary: 12,
		RookieMinSalary: 1,
	}
}

// App coordinates live draft sessions across leagues. Every mutating
// operation follows the same path: acquire the league lock, re-read state,
// validate, mutate, recompute summaries, release, broadcast outside the
// lock.
type App struct {
	store     Store
	validator *Validator
	broadcast Broadcaster
	registry  *Registry
	clock     clockwork.Clock
	cfg       Config
}

func NewApp(store Store, rosters RosterLimitChecker, prices PriceEstimator, broadcast Broadcaster, clock clockwork.Clock, cfg Config) *App {
	return &App{
		store:     store,
		validator: NewValidator(rosters, prices),
		broadcast: broadcast,
		registry:  NewRegistry(),
		clock:     clock,
		cfg:       cfg,
	}
}

// Registry exposes the session registry for the gateway's state provider.
func (a *App) Registry() *Registry {
	return a.registry
}

// leagueData is everything a mutation re-reads from the durable store while
// holding the league lock.
type leagueData struct {
	league    *models.League
	teams     []models.FantasyTeam
	contracts []models.Contract
	deadCap   []models.DeadCapEntry
	openBids  []models.MarketBid
}

func (a *App) loadLeagueData(ctx context.Context, leagueID uuid.UUID) (*leagueData, error) {
	league, err := a.store.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, newError(CodeNotFound, "league %s: %v", leagueID, err)
	}
	teams, err := a.store.ListFantasyTeams(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fantasy teams: %w", err)
	}
	contracts, err := a.store.ListContracts(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	deadCap, err := a.store.ListDeadCap(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dead cap entries: %w", err)
	}
	openBids, err := a.store.ListOpenMarketBids(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list open market bids: %w", err)
	}
	return &leagueData{
		league:    league,
		teams:     teams,
		contracts: contracts,
		deadCap:   deadCap,
		openBids:  openBids,
	}, nil
}

func (d *leagueData) calculator() *Calculator {
	return &Calculator{
		Cap:       d.league.Settings.SalaryCap,
		Season:    d.league.Season,
		Contracts: d.contracts,
		DeadCap:   d.deadCap,
		OpenBids:  d.openBids,
	}
}

// recomputeSummaries rebuilds the per-team budget/roster view from durable
// data plus the live lot overlay.
func (a *App) recomputeSummaries(s *Session, data *leagueData) {
	calc := data.calculator()
	summaries := make([]TeamSummary, 0, len(data.teams))
	for _, team := range data.teams {
		summary := TeamSummary{
			FantasyTeamID:   team.ID,
			TeamName:        team.Name,
			RemainingBudget: calc.RemainingWithLot(team.ID, 1, s.Lot),
		}
		for i := range data.contracts {
			if data.contracts[i].FantasyTeamID == team.ID {
				summary.RosterSize++
				summary.PlayerIDs = append(summary.PlayerIDs, data.contracts[i].PlayerID)
			}
		}
		summaries = append(summaries, summary)
	}
	s.Summaries = summaries
}

// flush delivers queued events after the league lock has been released.
func (a *App) flush(leagueID uuid.UUID, events []outbound) {
	for _, ev := range events {
		a.broadcast.Broadcast(leagueID, ev.eventType, ev.payload)
	}
}

func (a *App) window(mode Mode) time.Duration {
	if mode == ModeRookie {
		return a.cfg.RookieWindow
	}
	return a.cfg.AuctionWindow
}

// armTimer schedules the league's countdown against the session deadline.
// Must be called with the league lock held.
func (a *App) armTimer(e *leagueEntry, s *Session, window time.Duration) {
	leagueID := s.LeagueID
	s.Deadline = a.clock.Now().Add(window)
	e.timer.replace(a.clock, window, func() {
		a.handleExpiry(leagueID)
	})
}

// StartDraft activates (or resumes) a league's draft session. Starting is
// idempotent; pausing and resuming never reset the turn index.
func (a *App) StartDraft(ctx context.Context, leagueID uuid.UUID, mode Mode) (*StateSnapshot, error) {
	e := a.registry.entry(leagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		data, err := a.loadLeagueData(ctx, leagueID)
		if err != nil {
			return err
		}
		if len(data.teams) == 0 {
			return newError(CodeNotFound, "league %s has no fantasy teams", leagueID)
		}

		wasRunning := s.Active && !s.Paused
		if !s.Active {
			s.Mode = mode
			order := make([]uuid.UUID, len(data.teams))
			for i, team := range data.teams {
				order[i] = team.ID
			}
			s.Order = order
		}
		s.Active = true
		s.Paused = false

		if s.Mode == ModeRookie {
			picks, err := a.store.ListOpenDraftPicks(ctx, leagueID, data.league.Season)
			if err != nil {
				return fmt.Errorf("failed to list draft picks: %w", err)
			}
			s.Picks = picks
			s.PickIndex = 0
		}

		a.recomputeSummaries(s, data)
		// A redundant start on a running session must not extend a live
		// countdown; arm only when resuming or when no countdown is armed.
		if !wasRunning || s.Deadline.IsZero() {
			a.armTimer(e, s, a.window(s.Mode))
		}

		snap = s.snapshot()
		events = append(events, outbound{EventDraftStarted, DraftStartedPayload{
			LeagueID:  leagueID.String(),
			Mode:      s.Mode,
			StartedAt: a.clock.Now(),
			Teams:     len(data.teams),
		}})
		events = append(events, outbound{EventStateUpdated, snap})
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(leagueID, events)
	return snap, nil
}

// PauseDraft suspends the session, clears any live lot and stops the
// countdown. The turn index survives.
func (a *App) PauseDraft(ctx context.Context, leagueID uuid.UUID) (*StateSnapshot, error) {
	e := a.registry.entry(leagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		if !s.Active {
			return newError(CodeAuctionNotFound, "no active draft for league %s", leagueID)
		}

		data, err := a.loadLeagueData(ctx, leagueID)
		if err != nil {
			return err
		}

		s.Paused = true
		s.Lot = nil
		s.Deadline = time.Time{}
		e.timer.stop()

		a.recomputeSummaries(s, data)
		snap = s.snapshot()
		events = append(events, outbound{EventDraftPaused, DraftPausedPayload{
			LeagueID: leagueID.String(),
			PausedAt: a.clock.Now(),
		}})
		events = append(events, outbound{EventStateUpdated, snap})
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(leagueID, events)
	return snap, nil
}

// NominatePlayer opens a lot at the nominator's opening bid and starts the
// countdown.
func (a *App) NominatePlayer(ctx context.Context, req NominationRequest) (*StateSnapshot, error) {
	e := a.registry.entry(req.LeagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		if !s.Active || s.Paused {
			return newError(CodeAuctionNotFound, "no running draft for league %s", req.LeagueID)
		}

		data, err := a.loadLeagueData(ctx, req.LeagueID)
		if err != nil {
			return err
		}

		year1, err := a.validator.ValidateNomination(ctx, s, req, data.calculator(), data.league.Settings)
		if err != nil {
			return err
		}

		player, err := a.store.GetPlayer(ctx, req.PlayerID)
		if err != nil {
			return newError(CodeNotFound, "player %s: %v", req.PlayerID, err)
		}

		s.Lot = &Lot{
			PlayerID:   player.ID,
			PlayerName: player.FullName,
			Amount:     req.Amount,
			Years:      req.Years,
			Year1:      year1,
			BidderID:   req.TeamID,
			BidderName: teamName(data.teams, req.TeamID),
		}
		a.armTimer(e, s, a.cfg.AuctionWindow)
		a.recomputeSummaries(s, data)

		snap = s.snapshot()
		events = append(events, outbound{EventLotOpened, LotOpenedPayload{
			LeagueID:   req.LeagueID.String(),
			PlayerID:   player.ID.String(),
			PlayerName: player.FullName,
			BidderID:   req.TeamID.String(),
			Amount:     req.Amount,
			Years:      req.Years,
			Year1:      year1,
			TimeoutAt:  s.Deadline,
		}})
		events = append(events, outbound{EventStateUpdated, snap})
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(req.LeagueID, events)
	return snap, nil
}

// PlaceBid raises the active lot. An accepted raise replaces the incumbent
// and extends the countdown, cancelling the previous timer.
func (a *App) PlaceBid(ctx context.Context, req RaiseRequest) (*StateSnapshot, error) {
	e := a.registry.entry(req.LeagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		if !s.Active || s.Paused {
			return newError(CodeAuctionNotFound, "no running draft for league %s", req.LeagueID)
		}

		data, err := a.loadLeagueData(ctx, req.LeagueID)
		if err != nil {
			return err
		}

		year1, err := a.validator.ValidateRaise(ctx, s, req, data.calculator(), data.league.Settings)
		if err != nil {
			return err
		}

		s.Lot.Amount = req.Amount
		s.Lot.Years = req.Years
		s.Lot.Year1 = year1
		s.Lot.BidderID = req.TeamID
		s.Lot.BidderName = teamName(data.teams, req.TeamID)
		a.armTimer(e, s, a.cfg.AuctionWindow)
		a.recomputeSummaries(s, data)

		snap = s.snapshot()
		events = append(events, outbound{EventBidPlaced, BidPlacedPayload{
			LeagueID:  req.LeagueID.String(),
			PlayerID:  s.Lot.PlayerID.String(),
			BidderID:  req.TeamID.String(),
			Amount:    req.Amount,
			Years:     req.Years,
			Year1:     year1,
			TimeoutAt: s.Deadline,
		}})
		events = append(events, outbound{EventStateUpdated, snap})
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(req.LeagueID, events)
	return snap, nil
}

// ResetCurrentLot abandons the active lot without settling it. The turn
// does not advance.
func (a *App) ResetCurrentLot(ctx context.Context, leagueID uuid.UUID) (*StateSnapshot, error) {
	e := a.registry.entry(leagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		if s.Lot == nil {
			return newError(CodeAuctionNotFound, "no active lot for league %s", leagueID)
		}

		data, err := a.loadLeagueData(ctx, leagueID)
		if err != nil {
			return err
		}

		s.Lot = nil
		s.Deadline = time.Time{}
		e.timer.stop()
		a.recomputeSummaries(s, data)

		snap = s.snapshot()
		events = append(events, outbound{EventLotReset, snap})
		events = append(events, outbound{EventStateUpdated, snap})
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(leagueID, events)
	return snap, nil
}

// UndoLastSettlement removes the league's most recent contract and steps
// the turn index back by one. Bid history of the undone lot is not
// restored.
func (a *App) UndoLastSettlement(ctx context.Context, leagueID uuid.UUID) (*StateSnapshot, error) {
	e := a.registry.entry(leagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session

		contract, err := a.store.DeleteLatestContract(ctx, leagueID)
		if err != nil {
			return newError(CodePersistenceFailure, "failed to undo settlement: %v", err)
		}
		if contract == nil {
			return newError(CodeNotFound, "league %s has no contracts to undo", leagueID)
		}

		data, err := a.loadLeagueData(ctx, leagueID)
		if err != nil {
			return err
		}

		s.rewindTurn()
		a.recomputeSummaries(s, data)

		snap = s.snapshot()
		events = append(events, outbound{EventSettlementUndone, SettlementUndonePayload{
			LeagueID: leagueID.String(),
			PlayerID: contract.PlayerID.String(),
			TeamID:   contract.FantasyTeamID.String(),
			UndoneAt: a.clock.Now(),
		}})
		events = append(events, outbound{EventStateUpdated, snap})
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(leagueID, events)
	return snap, nil
}

// GetState returns a snapshot of the league's session.
func (a *App) GetState(ctx context.Context, leagueID uuid.UUID) (*StateSnapshot, error) {
	e := a.registry.entry(leagueID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.snapshot(), nil
}

// AvailableCandidates lists undrafted players for the league, best rank
// first. Rookie sessions restrict the pool to the current rookie class.
func (a *App) AvailableCandidates(ctx context.Context, leagueID uuid.UUID, limit int) ([]models.Player, error) {
	e := a.registry.entry(leagueID)
	e.mu.Lock()
	rookiesOnly := e.session.Mode == ModeRookie && e.session.Active
	e.mu.Unlock()

	players, err := a.store.ListAvailablePlayers(ctx, leagueID, rookiesOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list available players: %w", err)
	}
	return players, nil
}

// handleExpiry is the countdown callback. It takes the same serialized path
// as external requests: a concurrently arriving bid either wins the lock
// first and extends the deadline (making this timer a no-op), or the timer
// wins and settles, after which the late bid is rejected because the lot is
// gone.
func (a *App) handleExpiry(leagueID uuid.UUID) {
	ctx := context.Background()
	e := a.registry.entry(leagueID)

	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		if !s.Active || s.Paused || s.Deadline.IsZero() {
			return nil
		}
		// Re-check inside the lock; the tolerance absorbs delayed callback
		// delivery without honoring a deadline that was genuinely extended.
		if a.clock.Now().Add(a.cfg.ExpiryTolerance).Before(s.Deadline) {
			return nil
		}

		if s.Mode == ModeRookie {
			evs, err := a.autoPickLocked(ctx, e)
			events = evs
			return err
		}

		if s.Lot == nil {
			// Nomination window lapsed; pass the turn.
			data, err := a.loadLeagueData(ctx, leagueID)
			if err != nil {
				return err
			}
			s.advanceTurn()
			a.recomputeSummaries(s, data)
			a.armTimer(e, s, a.cfg.AuctionWindow)
			events = append(events, outbound{EventStateUpdated, s.snapshot()})
			return nil
		}

		evs, err := a.settleLotLocked(ctx, e)
		events = evs
		return err
	}()
	if err != nil {
		log.Error().Err(err).Str("league_id", leagueID.String()).Msg("countdown expiry failed")
	}

	a.flush(leagueID, events)
}

// settleLotLocked converts the active lot into a contract, advances the
// turn and clears the lot. Must be called with the league lock held. On a
// persistence failure the lot stays in place so a retry can re-settle.
func (a *App) settleLotLocked(ctx context.Context, e *leagueEntry) ([]outbound, error) {
	s := e.session
	lot := s.Lot

	split := StructureSalary(lot.Amount, lot.Years)
	_, err := a.store.SettleContract(ctx, SettlementParams{
		LeagueID: s.LeagueID,
		TeamID:   lot.BidderID,
		PlayerID: lot.PlayerID,
		Split:    split,
		Length:   lot.Years,
	})
	if err != nil {
		// Lot stays live; re-arm the timer so the next tick retries.
		a.armTimer(e, s, a.cfg.AuctionWindow)
		return nil, newError(CodePersistenceFailure, "failed to settle lot for player %s: %v", lot.PlayerID, err)
	}

	settled := outbound{EventLotSettled, LotSettledPayload{
		LeagueID:   s.LeagueID.String(),
		PlayerID:   lot.PlayerID.String(),
		PlayerName: lot.PlayerName,
		WinnerID:   lot.BidderID.String(),
		WinnerName: lot.BidderName,
		Total:      lot.Amount,
		Years:      lot.Years,
		Split:      split,
		SettledAt:  a.clock.Now(),
	}}

	s.advanceTurn()
	s.Lot = nil
	a.armTimer(e, s, a.cfg.AuctionWindow)

	data, err := a.loadLeagueData(ctx, s.LeagueID)
	if err != nil {
		// The contract committed; summaries refresh on the next change.
		log.Warn().Err(err).Str("league_id", s.LeagueID.String()).Msg("failed to refresh summaries after settlement")
		return []outbound{settled, {EventStateUpdated, s.snapshot()}}, nil
	}
	a.recomputeSummaries(s, data)

	return []outbound{settled, {EventStateUpdated, s.snapshot()}}, nil
}

func teamName(teams []models.FantasyTeam, id uuid.UUID) string {
	for i := range teams {
		if teams[i].ID == id {
			return teams[i].Name
		}
	}
	return ""
}

// IsDomainError reports whether err carries a domain violation code, as
// opposed to an infrastructure failure.
func IsDomainError(err error) bool {
	var de *Error
	return errors.As(err, &de)
}
