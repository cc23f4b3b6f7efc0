package auction

import (
	"errors"
	"fmt"
)

// Code tags a domain violation so callers can map it to a response without
// string matching.
type Code string

const (
	CodeNotYourTurn         Code = "NOT_YOUR_TURN"
	CodeLotInProgress       Code = "LOT_IN_PROGRESS"
	CodeRosterLimitExceeded Code = "ROSTER_LIMIT_EXCEEDED"
	CodeMinBidNotMet        Code = "MIN_BID_NOT_MET"
	CodeInsufficientBudget  Code = "INSUFFICIENT_BUDGET"
	CodeAuctionNotFound     Code = "AUCTION_NOT_FOUND"
	CodeBidTooLow           Code = "BID_TOO_LOW"
	CodeInvalidTerm         Code = "INVALID_TERM"
	CodeNotFound            Code = "NOT_FOUND"
	CodePersistenceFailure  Code = "PERSISTENCE_FAILURE"
)

// Error is a domain violation returned synchronously to the caller.
// Validation always precedes mutation, so an Error never leaves a session
// partially modified.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is makes errors.Is match on the code alone.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func newError(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Sentinels for errors.Is checks in handlers and tests.
var (
	ErrNotYourTurn         = &Error{Code: CodeNotYourTurn}
	ErrLotInProgress       = &Error{Code: CodeLotInProgress}
	ErrRosterLimitExceeded = &Error{Code: CodeRosterLimitExceeded}
	ErrMinBidNotMet        = &Error{Code: CodeMinBidNotMet}
	ErrInsufficientBudget  = &Error{Code: CodeInsufficientBudget}
	ErrAuctionNotFound     = &Error{Code: CodeAuctionNotFound}
	ErrBidTooLow           = &Error{Code: CodeBidTooLow}
	ErrInvalidTerm         = &Error{Code: CodeInvalidTerm}
	ErrNotFound            = &Error{Code: CodeNotFound}
	ErrPersistenceFailure  = &Error{Code: CodePersistenceFailure}
)
