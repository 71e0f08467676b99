package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	kafkago "github.com/segmentio/kafka-go"

	"launchpad/internal/config/configs"
	"launchpad/internal/core/domain"
	"launchpad/internal/core/port"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Publisher writes lifecycle events to a Kafka topic as JSON. Messages are
// keyed by campaign id so one campaign's events keep their order within a
// partition.
type Publisher struct {
	w      messageWriter
	logger *slog.Logger
}

// NewPublisher creates a synchronous publisher for cfg.Topic.
func NewPublisher(cfg configs.Kafka, logger *slog.Logger) *Publisher {
	return &Publisher{
		w: &kafkago.Writer{
			Addr:         kafkago.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
			WriteTimeout: cfg.WriteTimeout,
		},
		logger: logger,
	}
}

var _ port.EventPublisher = (*Publisher)(nil)

func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, 0, len(events))
	for _, e := range events {
		msg, err := message(e)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}
	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d events: %w", len(msgs), err)
	}
	p.logger.Debug("events published", slog.Int("count", len(msgs)))
	return nil
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

func message(e domain.Event) (kafkago.Message, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("encode event %s: %w", e.ID, err)
	}
	return kafkago.Message{
		Key:   []byte(strconv.FormatInt(e.CampaignID, 10)),
		Value: data,
		Time:  e.At,
		Headers: []kafkago.Header{
			{Key: "kind", Value: []byte(e.Kind)},
		},
	}, nil
}

// LogPublisher writes events to the logger only. It is used when no
// brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

var _ port.EventPublisher = (*LogPublisher)(nil)

func (p *LogPublisher) Publish(_ context.Context, events ...domain.Event) error {
	for _, e := range events {
		p.logger.Info("event",
			slog.String("id", e.ID),
			slog.String("kind", string(e.Kind)),
			slog.Int64("campaign_id", e.CampaignID),
			slog.String("account", e.Account.Hex()))
	}
	return nil
}
