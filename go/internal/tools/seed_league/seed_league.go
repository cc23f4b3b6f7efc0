package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/dbconfig"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/models"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/store"
)

// seedPlayer matches the players.json layout.
type seedPlayer struct {
	ExternalID string  `json:"external_id"`
	FullName   string  `json:"full_name"`
	Position   string  `json:"position"`
	Rank       int     `json:"rank"`
	RookieYear *string `json:"rookie_year"`
}

func main() {
	var (
		playersPath = flag.String("players", "go/internal/assets/players.json", "path to players.json")
		leagueName  = flag.String("league", "Test League", "league name")
		season      = flag.String("season", "2026", "league season")
		teams       = flag.Int("teams", 12, "number of fantasy teams")
		rounds      = flag.Int("rounds", 2, "rookie draft rounds")
		salaryCap   = flag.Int64("cap", 200, "salary cap")
	)
	flag.Parse()

	ctx := context.Background()

	data, err := os.ReadFile(*playersPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read players.json: %v\n", err)
		os.Exit(1)
	}
	var players []seedPlayer
	if err := json.Unmarshal(data, &players); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal players: %v\n", err)
		os.Exit(1)
	}

	cfg := dbconfig.NewConfigFromEnv()
	database, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	repo := store.New(database)

	league := &models.League{
		ID:             uuid.New(),
		Name:           *leagueName,
		SportID:        "nfl",
		LeagueType:     models.LeagueTypeDynasty,
		CommissionerID: uuid.New(),
		Settings: models.LeagueSettings{
			SalaryCap:   *salaryCap,
			MinimumBid:  1,
			RosterSlots: 25,
			MaxYears:    3,
		},
		Status: models.LeagueStatusActive,
		Season: *season,
	}
	if err := repo.CreateLeague(ctx, league); err != nil {
		fmt.Fprintf(os.Stderr, "create league: %v\n", err)
		os.Exit(1)
	}

	teamIDs := make([]uuid.UUID, 0, *teams)
	for i := 1; i <= *teams; i++ {
		team := &models.FantasyTeam{
			ID:       uuid.New(),
			LeagueID: league.ID,
			OwnerID:  uuid.New(),
			Name:     fmt.Sprintf("Team %02d", i),
		}
		if err := repo.CreateFantasyTeam(ctx, team); err != nil {
			fmt.Fprintf(os.Stderr, "create team %d: %v\n", i, err)
			os.Exit(1)
		}
		teamIDs = append(teamIDs, team.ID)
	}

	inserted, errs := 0, 0
	for _, p := range players {
		player := &models.Player{
			ID:         uuid.New(),
			SportID:    league.SportID,
			ExternalID: p.ExternalID,
			FullName:   p.FullName,
			Position:   p.Position,
			Rank:       p.Rank,
			RookieYear: p.RookieYear,
		}
		if err := repo.CreatePlayer(ctx, player); err != nil {
			errs++
			continue
		}
		inserted++
	}

	// Lottery: shuffle the team order once; every round reuses it.
	order := rand.Perm(*teams)
	picks := 0
	for round := 1; round <= *rounds; round++ {
		for i, teamIdx := range order {
			slot := i + 1
			pick := &models.DraftPick{
				ID:            uuid.New(),
				LeagueID:      league.ID,
				Season:        *season,
				Round:         round,
				OriginalOwner: teamIDs[teamIdx],
				CurrentOwner:  teamIDs[teamIdx],
				LotterySlot:   &slot,
				Revealed:      true,
			}
			if err := repo.CreateDraftPick(ctx, pick); err != nil {
				fmt.Fprintf(os.Stderr, "create pick r%d s%d: %v\n", round, slot, err)
				os.Exit(1)
			}
			picks++
		}
	}

	fmt.Printf(
		"Seeded league %s: teams=%d players=%d (errors=%d) picks=%d\n",
		league.ID, *teams, inserted, errs, picks,
	)
}
