package gateway

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(cm *ConnectionManager, leagueID uuid.UUID) *Connection {
	return &Connection{
		ID:          uuid.New().String(),
		UserID:      uuid.New(),
		LeagueID:    leagueID,
		Send:        make(chan []byte, 4),
		Manager:     cm,
		ConnectedAt: time.Now(),
	}
}

func TestFanoutDeliversToLeaguePool(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	leagueA := uuid.New()
	leagueB := uuid.New()

	connA1 := newTestConnection(cm, leagueA)
	connA2 := newTestConnection(cm, leagueA)
	connB := newTestConnection(cm, leagueB)
	cm.registerConnection(connA1)
	cm.registerConnection(connA2)
	cm.registerConnection(connB)

	assert.Equal(t, 3, cm.ConnectionCount())

	cm.Fanout(leagueA, []byte("lot opened"))

	for _, conn := range []*Connection{connA1, connA2} {
		select {
		case msg := <-conn.Send:
			assert.Equal(t, "lot opened", string(msg))
		default:
			t.Fatalf("connection %s received nothing", conn.ID)
		}
	}
	select {
	case <-connB.Send:
		t.Fatal("other league's connection must not receive the message")
	default:
	}
}

func TestFanoutToEmptyLeague(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	cm.Fanout(uuid.New(), []byte("nobody home"))
	assert.Equal(t, 0, cm.ConnectionCount())
}

func TestUnregisterClosesSendAndPrunesPool(t *testing.T) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	leagueID := uuid.New()
	conn := newTestConnection(cm, leagueID)
	cm.registerConnection(conn)

	cm.unregisterConnection(conn)
	assert.Equal(t, 0, cm.ConnectionCount())

	_, open := <-conn.Send
	require.False(t, open, "send channel is closed on unregister")

	// A second unregister is a no-op.
	cm.unregisterConnection(conn)
}
