package main

import (
	"database/sql"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"

	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/auction"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/gateway"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/pricing"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/rosterpolicy"
	"github.com/EricMeo7/Fantasy-Dinasty-sub001/go/internal/store"
)

const eventSubjectPrefix = "draft.events"

type Services struct {
	Draft     *auction.App
	WSHandler *gateway.Handler
	Consumer  *gateway.Consumer
}

func setupServices(database *sql.DB, nc *nats.Conn, config *Config) *Services {
	// Wire up dependency injection chain:
	// store -> policies/pricing -> draft engine -> gateway

	repo := store.New(database)

	rosters := rosterpolicy.NewChecker(repo)

	var estimator auction.PriceEstimator
	if baseURL := os.Getenv("PRICING_SERVICE_URL"); baseURL != "" {
		estimator = pricing.NewClient(baseURL, os.Getenv("PRICING_SERVICE_API_KEY"))
	} else {
		maxOpening := config.Pricing.MaxOpening
		if maxOpening <= 0 {
			maxOpening = 50
		}
		tailRank := config.Pricing.TailRank
		if tailRank <= 0 {
			tailRank = 200
		}
		estimator = pricing.NewRankEstimator(repo, maxOpening, tailRank)
	}

	publisher := gateway.NewPublisher(nc, eventSubjectPrefix)

	draft := auction.NewApp(repo, rosters, estimator, publisher, clockwork.NewRealClock(), config.draftConfig())

	manager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	consumer := gateway.NewConsumer(nc, manager, eventSubjectPrefix)
	wsHandler := gateway.NewHandler(manager, draft)

	return &Services{
		Draft:     draft,
		WSHandler: wsHandler,
		Consumer:  consumer,
	}
}
