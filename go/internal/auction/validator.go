package auction

import (
	"context"
	"fmt"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/google/uuid"
)

// RosterLimitChecker defines what the validator needs from roster policy.
// A nil error means the team may add the player.
type RosterLimitChecker interface {
	Validate(ctx context.Context, teamID, leagueID, playerID uuid.UUID) error
}

// PriceEstimator defines what the validator needs from base-price
// estimation.
type PriceEstimator interface {
	Estimate(ctx context.Context, playerID, leagueID uuid.UUID) (int64, error)
}

// NominationRequest opens a new lot.
type NominationRequest struct {
	LeagueID uuid.UUID
	TeamID   uuid.UUID
	PlayerID uuid.UUID
	Amount   int64
	Years    int
}

// RaiseRequest improves on the incumbent bid for the active lot.
type RaiseRequest struct {
	LeagueID uuid.UUID
	TeamID   uuid.UUID
	Amount   int64
	Years    int
}

// Validator holds the pure decision logic for nominations and raises.
// It never mutates the session.
type Validator struct {
	rosters RosterLimitChecker
	prices  PriceEstimator
}

func NewValidator(rosters RosterLimitChecker, prices PriceEstimator) *Validator {
	return &Validator{rosters: rosters, prices: prices}
}

// termLimit is the longest contract the league settings allow, never beyond
// what a salary split can hold.
func termLimit(settings models.LeagueSettings) int {
	limit := MaxContractYears
	if settings.MaxYears > 0 && settings.MaxYears < limit {
		limit = settings.MaxYears
	}
	return limit
}

func validateTerm(years int, settings models.LeagueSettings) error {
	if limit := termLimit(settings); years < 1 || years > limit {
		return newError(CodeInvalidTerm, "contract length %d outside 1-%d", years, limit)
	}
	return nil
}

// ValidateNomination checks turn legality, lot exclusivity, the contract
// term, roster limits, the minimum opening price and the nominator's budget.
// Returns the implied year-1 cost on success.
func (v *Validator) ValidateNomination(ctx context.Context, s *Session, req NominationRequest, calc *Calculator, settings models.LeagueSettings) (int64, error) {
	if len(s.Order) > 0 && !s.onTurn(req.TeamID) {
		return 0, newError(CodeNotYourTurn, "team %s does not hold the nomination", req.TeamID)
	}
	if s.Lot != nil {
		return 0, newError(CodeLotInProgress, "player %s is already up for bidding", s.Lot.PlayerID)
	}
	if err := validateTerm(req.Years, settings); err != nil {
		return 0, err
	}
	if err := v.rosters.Validate(ctx, req.TeamID, req.LeagueID, req.PlayerID); err != nil {
		return 0, newError(CodeRosterLimitExceeded, "%v", err)
	}

	year1 := Year1Cost(req.Amount, req.Years)

	floor, err := v.prices.Estimate(ctx, req.PlayerID, req.LeagueID)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate opening price: %w", err)
	}
	if floor < settings.MinimumBid {
		floor = settings.MinimumBid
	}
	if year1 < floor {
		return 0, newError(CodeMinBidNotMet, "year-1 %d below opening price %d", year1, floor)
	}

	// Budget excludes the prospective bid itself; there is no active lot to
	// overlay at nomination time.
	if calc.Remaining(req.TeamID, 1) < year1 {
		return 0, newError(CodeInsufficientBudget, "year-1 %d exceeds remaining budget", year1)
	}

	return year1, nil
}

// ValidateRaise checks that the offer strictly improves on the incumbent
// under the (year1, years) lexicographic order: a higher year-1 wins, and a
// longer term at equal year-1 wins. Returns the new year-1 cost on success.
func (v *Validator) ValidateRaise(ctx context.Context, s *Session, req RaiseRequest, calc *Calculator, settings models.LeagueSettings) (int64, error) {
	lot := s.Lot
	if lot == nil {
		return 0, newError(CodeAuctionNotFound, "no active lot for league %s", req.LeagueID)
	}
	if err := validateTerm(req.Years, settings); err != nil {
		return 0, err
	}

	year1 := Year1Cost(req.Amount, req.Years)
	improves := year1 > lot.Year1 || (year1 == lot.Year1 && req.Years > lot.Years)
	if !improves {
		return 0, newError(CodeBidTooLow, "offer %d/%dy does not beat %d/%dy", year1, req.Years, lot.Year1, lot.Years)
	}

	if err := v.rosters.Validate(ctx, req.TeamID, req.LeagueID, lot.PlayerID); err != nil {
		return 0, newError(CodeRosterLimitExceeded, "%v", err)
	}

	// An incumbent replaces their own frozen year-1 rather than stacking a
	// second one, so their prior amount is credited back first.
	available := calc.RemainingWithLot(req.TeamID, 1, lot)
	if lot.BidderID == req.TeamID {
		available += lot.Year1
	}
	if available < year1 {
		return 0, newError(CodeInsufficientBudget, "year-1 %d exceeds remaining budget", year1)
	}

	return year1, nil
}
