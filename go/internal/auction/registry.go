package auction

import (
	"sync"

	"github.com/google/uuid"
)

// leagueEntry bundles one league's session with its exclusive lock and
// countdown timer. The mutex is non-reentrant and held across the full
// read-modify-write of any mutating operation.
type leagueEntry struct {
	mu      sync.Mutex
	session *Session
	timer   countdown
}

// Registry is the process-wide map of league id to session/lock/timer.
// Entries are created lazily and never torn down; cardinality is bounded by
// the number of leagues, not requests. Insert is atomic and independent of
// any individual league lock.
type Registry struct {
	entries sync.Map // uuid.UUID -> *leagueEntry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// entry returns the league's entry, creating it idempotently. Concurrent
// callers for the same league always observe the same entry.
func (r *Registry) entry(leagueID uuid.UUID) *leagueEntry {
	if e, ok := r.entries.Load(leagueID); ok {
		return e.(*leagueEntry)
	}
	created := &leagueEntry{session: newSession(leagueID)}
	e, _ := r.entries.LoadOrStore(leagueID, created)
	return e.(*leagueEntry)
}

// GetOrCreateSession exposes idempotent session creation. The returned
// session must only be read under the league lock; callers outside this
// package should go through App snapshots instead.
func (r *Registry) GetOrCreateSession(leagueID uuid.UUID) *Session {
	return r.entry(leagueID).session
}
