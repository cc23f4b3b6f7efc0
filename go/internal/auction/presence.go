package auction

import (
	"context"

	"github.com/google/uuid"
)

// Connect records a participant as online and re-broadcasts the session so
// every subscriber sees the updated presence list.
func (a *App) Connect(ctx context.Context, leagueID, userID uuid.UUID) *StateSnapshot {
	e := a.registry.entry(leagueID)

	e.mu.Lock()
	e.session.Online[userID] = true
	snap := e.session.snapshot()
	e.mu.Unlock()

	a.broadcast.Broadcast(leagueID, EventStateUpdated, snap)
	return snap
}

// Disconnect removes a participant from the presence set.
func (a *App) Disconnect(ctx context.Context, leagueID, userID uuid.UUID) *StateSnapshot {
	e := a.registry.entry(leagueID)

	e.mu.Lock()
	delete(e.session.Online, userID)
	snap := e.session.snapshot()
	e.mu.Unlock()

	a.broadcast.Broadcast(leagueID, EventStateUpdated, snap)
	return snap
}
