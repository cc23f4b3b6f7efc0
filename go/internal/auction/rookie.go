package auction

import (
	"context"
	"time"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// wageForSlot resolves a rookie salary for an overall pick slot. A
// configured wage table wins; otherwise the scale interpolates linearly
// from the maximum at slot 1 down to the minimum at the last slot.
func (a *App) wageForSlot(slot, totalSlots int) int64 {
	if wage, ok := a.cfg.WageTable[slot]; ok {
		return wage
	}
	if totalSlots <= 1 || slot <= 1 {
		return a.cfg.RookieMaxSalary
	}
	if slot >= totalSlots {
		return a.cfg.RookieMinSalary
	}
	span := a.cfg.RookieMaxSalary - a.cfg.RookieMinSalary
	return a.cfg.RookieMaxSalary - span*int64(slot-1)/int64(totalSlots-1)
}

func rookieSplit(wage int64, years int) SalarySplit {
	split := SalarySplit{Year1: wage}
	if years >= 2 {
		split.Year2 = wage
	}
	if years >= 3 {
		split.Year3 = wage
	}
	return split
}

// SelectRookie consumes the current pick for the team on the clock. Pick
// assignment and contract creation commit atomically before the league lock
// is released.
func (a *App) SelectRookie(ctx context.Context, leagueID, teamID, playerID uuid.UUID) (*StateSnapshot, error) {
	e := a.registry.entry(leagueID)

	var snap *StateSnapshot
	var events []outbound
	err := func() error {
		e.mu.Lock()
		defer e.mu.Unlock()

		s := e.session
		if !s.Active || s.Paused || s.Mode != ModeRookie {
			return newError(CodeAuctionNotFound, "no running rookie draft for league %s", leagueID)
		}

		pick := s.currentPick()
		if pick == nil {
			return newError(CodeNotFound, "no picks remain for league %s", leagueID)
		}
		if pick.CurrentOwner != teamID {
			return newError(CodeNotYourTurn, "pick belongs to team %s", pick.CurrentOwner)
		}
		if err := a.validator.rosters.Validate(ctx, teamID, leagueID, playerID); err != nil {
			return newError(CodeRosterLimitExceeded, "%v", err)
		}

		player, err := a.store.GetPlayer(ctx, playerID)
		if err != nil {
			return newError(CodeNotFound, "player %s: %v", playerID, err)
		}

		evs, err := a.consumePickLocked(ctx, e, player, false)
		if err != nil {
			return err
		}
		events = evs
		snap = s.snapshot()
		return nil
	}()
	if err != nil {
		return nil, err
	}

	a.flush(leagueID, events)
	return snap, nil
}

// autoPickLocked handles a rookie pick timer expiry by selecting the best
// available player by rank. Must be called with the league lock held.
func (a *App) autoPickLocked(ctx context.Context, e *leagueEntry) ([]outbound, error) {
	s := e.session

	pick := s.currentPick()
	if pick == nil {
		return a.completeRookieDraftLocked(e), nil
	}

	candidates, err := a.store.ListAvailablePlayers(ctx, s.LeagueID, true, 1)
	if err != nil {
		a.armTimer(e, s, a.cfg.RookieWindow)
		return nil, newError(CodePersistenceFailure, "failed to find auto-pick candidate: %v", err)
	}
	if len(candidates) == 0 {
		return a.completeRookieDraftLocked(e), nil
	}

	log.Info().
		Str("league_id", s.LeagueID.String()).
		Str("team_id", pick.CurrentOwner.String()).
		Str("player_id", candidates[0].ID.String()).
		Msg("rookie pick timed out; auto-picking best available")

	return a.consumePickLocked(ctx, e, &candidates[0], true)
}

// consumePickLocked settles the current pick for the given player and
// advances to the next slot. Must be called with the league lock held.
func (a *App) consumePickLocked(ctx context.Context, e *leagueEntry, player *models.Player, auto bool) ([]outbound, error) {
	s := e.session
	pick := s.currentPick()

	slot := pick.OverallSlot(len(s.Order))
	if slot == 0 {
		slot = s.PickIndex + 1
	}
	wage := a.wageForSlot(slot, len(s.Picks))

	_, err := a.store.SettleRookiePick(ctx, pick.ID, SettlementParams{
		LeagueID: s.LeagueID,
		TeamID:   pick.CurrentOwner,
		PlayerID: player.ID,
		Split:    rookieSplit(wage, a.cfg.RookieYears),
		Length:   a.cfg.RookieYears,
		Rookie:   true,
		Option:   true,
	})
	if err != nil {
		// Pick stays on the clock; the re-armed timer retries.
		a.armTimer(e, s, a.cfg.RookieWindow)
		return nil, newError(CodePersistenceFailure, "failed to settle pick %s: %v", pick.ID, err)
	}

	now := a.clock.Now()
	playerID := player.ID
	s.Picks[s.PickIndex].PlayerID = &playerID
	s.Picks[s.PickIndex].PickedAt = &now
	s.PickIndex++

	events := []outbound{{EventRookieSelected, RookieSelectedPayload{
		LeagueID:   s.LeagueID.String(),
		PickID:     pick.ID.String(),
		Slot:       slot,
		TeamID:     pick.CurrentOwner.String(),
		PlayerID:   player.ID.String(),
		PlayerName: player.FullName,
		Salary:     wage,
		AutoPick:   auto,
		PickedAt:   now,
	}}}

	if s.currentPick() == nil {
		return append(events, a.completeRookieDraftLocked(e)...), nil
	}

	a.armTimer(e, s, a.cfg.RookieWindow)

	if data, err := a.loadLeagueData(ctx, s.LeagueID); err == nil {
		a.recomputeSummaries(s, data)
	} else {
		log.Warn().Err(err).Str("league_id", s.LeagueID.String()).Msg("failed to refresh summaries after pick")
	}

	return append(events, outbound{EventStateUpdated, s.snapshot()}), nil
}

// completeRookieDraftLocked finishes the draft once every pick is consumed.
func (a *App) completeRookieDraftLocked(e *leagueEntry) []outbound {
	s := e.session
	s.Active = false
	s.Lot = nil
	s.Deadline = time.Time{}
	e.timer.stop()

	log.Info().Str("league_id", s.LeagueID.String()).Msg("rookie draft completed")

	snap := s.snapshot()
	return []outbound{
		{EventDraftCompleted, snap},
		{EventStateUpdated, snap},
	}
}
