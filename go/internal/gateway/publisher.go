package gateway

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"
)

// Envelope wraps every event published to the bus.
type Envelope struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	LeagueID  string          `json:"league_id"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Publisher pushes draft events to NATS. Delivery is best effort and never
// blocks the caller: publish failures are logged and dropped.
type Publisher struct {
	nc            *nats.Conn
	subjectPrefix string
}

func NewPublisher(nc *nats.Conn, subjectPrefix string) *Publisher {
	return &Publisher{nc: nc, subjectPrefix: subjectPrefix}
}

// Broadcast implements the engine's Broadcaster interface.
func (p *Publisher) Broadcast(leagueID uuid.UUID, eventType string, payload any) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to marshal event payload")
		return
	}

	envelope := Envelope{
		EventID:   uuid.New().String(),
		EventType: eventType,
		LeagueID:  leagueID.String(),
		Timestamp: time.Now(),
		Payload:   payloadBytes,
	}
	messageBytes, err := json.Marshal(envelope)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to marshal event envelope")
		return
	}

	subject := fmt.Sprintf("%s.%s.%s", p.subjectPrefix, leagueID, eventType)
	if err := p.nc.Publish(subject, messageBytes); err != nil {
		log.Warn().
			Err(err).
			Str("subject", subject).
			Str("league_id", leagueID.String()).
			Msg("failed to publish event, dropping")
	}
}

// SetupNATSConnection creates a NATS connection with reconnect handlers.
func SetupNATSConnection(natsURL string) (*nats.Conn, error) {
	opts := []nats.Option{
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(natsURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return nc, nil
}
