package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Consumer subscribes to draft events on NATS and fans them out to the
// WebSocket pools. It is the only reader the gateway needs: the engine
// publishes, the consumer delivers.
type Consumer struct {
	nc      *nats.Conn
	manager *ConnectionManager
	subject string

	sub *nats.Subscription
}

// NewConsumer creates a consumer over every league's event subject.
func NewConsumer(nc *nats.Conn, manager *ConnectionManager, subjectPrefix string) *Consumer {
	return &Consumer{
		nc:      nc,
		manager: manager,
		subject: subjectPrefix + ".>",
	}
}

// Start subscribes and delivers until the context is cancelled.
func (c *Consumer) Start(ctx context.Context) error {
	sub, err := c.nc.Subscribe(c.subject, c.handleMessage)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", c.subject, err)
	}
	c.sub = sub

	log.Info().Str("subject", c.subject).Msg("event consumer started")

	<-ctx.Done()
	return c.Stop()
}

// Stop drains the subscription.
func (c *Consumer) Stop() error {
	if c.sub == nil {
		return nil
	}
	if err := c.sub.Drain(); err != nil {
		return fmt.Errorf("failed to drain subscription: %w", err)
	}
	log.Info().Str("subject", c.subject).Msg("event consumer stopped")
	return nil
}

func (c *Consumer) handleMessage(msg *nats.Msg) {
	var envelope Envelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		log.Error().Err(err).Str("subject", msg.Subject).Msg("failed to unmarshal event envelope")
		return
	}

	leagueID, err := uuid.Parse(envelope.LeagueID)
	if err != nil {
		log.Error().Err(err).Str("league_id", envelope.LeagueID).Msg("invalid league ID in event")
		return
	}

	log.Debug().
		Str("event_type", envelope.EventType).
		Str("league_id", envelope.LeagueID).
		Msg("delivering event to league pool")

	c.manager.Fanout(leagueID, msg.Data)
}
