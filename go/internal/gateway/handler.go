package gateway

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/auction"
)

// Presence defines what the WebSocket handler needs from the draft engine.
type Presence interface {
	Connect(ctx context.Context, leagueID, userID uuid.UUID) *auction.StateSnapshot
	Disconnect(ctx context.Context, leagueID, userID uuid.UUID) *auction.StateSnapshot
}

// Handler exposes the WebSocket endpoint for draft rooms.
type Handler struct {
	manager  *ConnectionManager
	presence Presence
}

func NewHandler(manager *ConnectionManager, presence Presence) *Handler {
	return &Handler{manager: manager, presence: presence}
}

// ServeWS upgrades GET /ws/draft?league_id=...&user_id=... to a WebSocket
// connection and keeps presence in step with the connection lifecycle.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	leagueID, err := uuid.Parse(r.URL.Query().Get("league_id"))
	if err != nil {
		http.Error(w, "invalid league_id", http.StatusBadRequest)
		return
	}
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		http.Error(w, "invalid user_id", http.StatusBadRequest)
		return
	}

	onClose := func() {
		h.presence.Disconnect(context.Background(), leagueID, userID)
	}
	if err := h.manager.UpgradeConnection(w, r, userID, leagueID, onClose); err != nil {
		log.Error().
			Err(err).
			Str("league_id", leagueID.String()).
			Str("user_id", userID.String()).
			Msg("failed to open draft room connection")
		return
	}

	// The request context dies with the hijacked connection; presence
	// outlives it.
	h.presence.Connect(context.Background(), leagueID, userID)
}
