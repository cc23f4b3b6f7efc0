package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/auction"
)

func setupServer(services *Services) *http.Server {
	mux := http.NewServeMux()

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"*"},
	})

	registerRoutes(mux, services)
	setupHealthCheck(mux)

	// Wrap with CORS
	handler := c.Handler(mux)

	// Setup HTTP/2 server
	return &http.Server{
		Addr:    fmt.Sprintf(":%s", getEnv("PORT", "8080")),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}
}

func registerRoutes(mux *http.ServeMux, services *Services) {
	draft := services.Draft

	mux.HandleFunc("POST /v1/drafts/start", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
			Mode     string    `json:"mode"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.StartDraft(r.Context(), req.LeagueID, auction.Mode(req.Mode))
		respond(w, snap, err)
	})

	mux.HandleFunc("POST /v1/drafts/pause", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.PauseDraft(r.Context(), req.LeagueID)
		respond(w, snap, err)
	})

	mux.HandleFunc("POST /v1/drafts/nominate", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
			TeamID   uuid.UUID `json:"team_id"`
			PlayerID uuid.UUID `json:"player_id"`
			Amount   int64     `json:"amount"`
			Years    int       `json:"years"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.NominatePlayer(r.Context(), auction.NominationRequest{
			LeagueID: req.LeagueID,
			TeamID:   req.TeamID,
			PlayerID: req.PlayerID,
			Amount:   req.Amount,
			Years:    req.Years,
		})
		respond(w, snap, err)
	})

	mux.HandleFunc("POST /v1/drafts/bid", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
			TeamID   uuid.UUID `json:"team_id"`
			Amount   int64     `json:"amount"`
			Years    int       `json:"years"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.PlaceBid(r.Context(), auction.RaiseRequest{
			LeagueID: req.LeagueID,
			TeamID:   req.TeamID,
			Amount:   req.Amount,
			Years:    req.Years,
		})
		respond(w, snap, err)
	})

	mux.HandleFunc("POST /v1/drafts/rookie-pick", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
			TeamID   uuid.UUID `json:"team_id"`
			PlayerID uuid.UUID `json:"player_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.SelectRookie(r.Context(), req.LeagueID, req.TeamID, req.PlayerID)
		respond(w, snap, err)
	})

	mux.HandleFunc("POST /v1/drafts/reset-lot", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.ResetCurrentLot(r.Context(), req.LeagueID)
		respond(w, snap, err)
	})

	mux.HandleFunc("POST /v1/drafts/undo", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			LeagueID uuid.UUID `json:"league_id"`
		}
		if !decodeBody(w, r, &req) {
			return
		}
		snap, err := draft.UndoLastSettlement(r.Context(), req.LeagueID)
		respond(w, snap, err)
	})

	mux.HandleFunc("GET /v1/drafts/state", func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuid.Parse(r.URL.Query().Get("league_id"))
		if err != nil {
			http.Error(w, "invalid league_id", http.StatusBadRequest)
			return
		}
		snap, err := draft.GetState(r.Context(), leagueID)
		respond(w, snap, err)
	})

	mux.HandleFunc("GET /v1/drafts/candidates", func(w http.ResponseWriter, r *http.Request) {
		leagueID, err := uuid.Parse(r.URL.Query().Get("league_id"))
		if err != nil {
			http.Error(w, "invalid league_id", http.StatusBadRequest)
			return
		}
		limit := 50
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}
		players, err := draft.AvailableCandidates(r.Context(), leagueID, limit)
		respond(w, players, err)
	})

	mux.HandleFunc("GET /ws/draft", services.WSHandler.ServeWS)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func respond(w http.ResponseWriter, payload any, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL"

	var domainErr *auction.Error
	if errors.As(err, &domainErr) {
		code = string(domainErr.Code)
		switch domainErr.Code {
		case auction.CodeNotFound, auction.CodeAuctionNotFound:
			status = http.StatusNotFound
		case auction.CodePersistenceFailure:
			status = http.StatusInternalServerError
		default:
			status = http.StatusConflict
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(map[string]string{
		"code":    code,
		"message": err.Error(),
	}); encodeErr != nil {
		log.Error().Err(encodeErr).Msg("failed to encode error response")
	}
}

func setupHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
