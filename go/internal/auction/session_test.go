package auction

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
)

func TestTurnArithmetic(t *testing.T) {
	s := newSession(uuid.New())
	s.Order = []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	assert.True(t, s.onTurn(s.Order[0]))
	assert.False(t, s.onTurn(s.Order[1]))

	s.advanceTurn()
	assert.Equal(t, 1, s.Turn)
	s.advanceTurn()
	s.advanceTurn()
	assert.Equal(t, 0, s.Turn, "turn wraps around the order")

	s.rewindTurn()
	assert.Equal(t, 2, s.Turn, "rewind wraps backwards")

	// Degenerate: no participants.
	empty := newSession(uuid.New())
	empty.advanceTurn()
	empty.rewindTurn()
	assert.Equal(t, 0, empty.Turn)
	assert.False(t, empty.onTurn(uuid.New()))
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newSession(uuid.New())
	s.Active = true
	s.Order = []uuid.UUID{uuid.New(), uuid.New()}
	s.Lot = &Lot{PlayerID: uuid.New(), Amount: 10, Years: 1, Year1: 10}
	s.Deadline = time.Now().Add(time.Minute)
	s.Online[s.Order[0]] = true
	s.Online[s.Order[1]] = false

	snap := s.snapshot()
	require.NotNil(t, snap.Lot)
	require.NotNil(t, snap.Deadline)
	assert.Equal(t, []uuid.UUID{s.Order[0]}, snap.Online, "only online participants are listed")

	// Mutating the session must not leak into the snapshot.
	s.Lot.Amount = 99
	s.Order[0] = uuid.New()
	assert.Equal(t, int64(10), snap.Lot.Amount)
	assert.NotEqual(t, s.Order[0], snap.Order[0])
}

func TestSnapshotCurrentPickOnlyInRookieMode(t *testing.T) {
	s := newSession(uuid.New())
	s.Picks = []models.DraftPick{{ID: uuid.New(), Round: 1, CurrentOwner: uuid.New()}}

	assert.Nil(t, s.snapshot().CurrentPick, "auction snapshots carry no pick")

	s.Mode = ModeRookie
	snap := s.snapshot()
	require.NotNil(t, snap.CurrentPick)
	assert.Equal(t, s.Picks[0].ID, snap.CurrentPick.ID)

	s.PickIndex = 1
	assert.Nil(t, s.snapshot().CurrentPick, "exhausted picks yield no current pick")
}
