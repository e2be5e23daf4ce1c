package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/bet-staking-service/internal/metrics"
	"github.com/cypherlabdev/bet-staking-service/internal/models"
)

// SelectionWriter is an interface over the store's ingest write path
// This allows for easier testing and mocking
type SelectionWriter interface {
	InsertSelections(ctx context.Context, selections []models.Selection) error
}

// KafkaConsumer consumes predicted-selection batches published by the upstream
// prediction pipeline and persists them as staking candidates.
type KafkaConsumer struct {
	reader *kafka.Reader
	writer SelectionWriter
	logger zerolog.Logger
}

// KafkaConsumerConfig holds Kafka consumer configuration
type KafkaConsumerConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "predicted_selections"
	GroupID string   // e.g., "bet-staking"
}

// NewKafkaConsumer creates a new Kafka consumer
func NewKafkaConsumer(config KafkaConsumerConfig, writer SelectionWriter, logger zerolog.Logger) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1e3,  // 1KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: 1000, // Commit every 1 second
	})

	return &KafkaConsumer{
		reader: reader,
		writer: writer,
		logger: logger.With().Str("component", "kafka_consumer").Logger(),
	}
}

// Start begins consuming messages from Kafka
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("topic", c.reader.Config().Topic).
		Str("group_id", c.reader.Config().GroupID).
		Msg("started consuming from Kafka")

	for {
		select {
		case <-ctx.Done():
			c.logger.Info().Msg("stopping Kafka consumer")
			return c.reader.Close()

		default:
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if err == context.Canceled {
					return nil
				}
				c.logger.Error().Err(err).Msg("failed to fetch message")
				continue
			}

			if err := c.processMessage(ctx, msg); err != nil {
				c.logger.Error().
					Err(err).
					Int64("offset", msg.Offset).
					Str("key", string(msg.Key)).
					Msg("failed to process message")
				// Don't commit if processing failed
				continue
			}

			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error().Err(err).Msg("failed to commit message")
			}
		}
	}
}

// processMessage validates and persists one selection batch
func (c *KafkaConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var kafkaMsg models.KafkaSelectionsMessage
	if err := json.Unmarshal(msg.Value, &kafkaMsg); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}

	valid := make([]models.Selection, 0, len(kafkaMsg.Selections))
	for _, sel := range kafkaMsg.Selections {
		if err := validateSelection(sel); err != nil {
			c.logger.Warn().
				Err(err).
				Str("parent_match_id", sel.ParentMatchID).
				Str("batch_id", kafkaMsg.BatchID).
				Msg("dropping invalid selection")
			continue
		}
		if sel.ID == uuid.Nil {
			sel.ID = uuid.New()
		}
		valid = append(valid, sel)
	}
	if len(valid) == 0 {
		c.logger.Warn().Str("batch_id", kafkaMsg.BatchID).Msg("batch contained no valid selections")
		return nil
	}

	if err := c.writer.InsertSelections(ctx, valid); err != nil {
		return fmt.Errorf("failed to persist selections: %w", err)
	}
	metrics.SelectionsIngested.Add(float64(len(valid)))

	c.logger.Info().
		Int("input_count", len(kafkaMsg.Selections)).
		Int("persisted_count", len(valid)).
		Str("batch_id", kafkaMsg.BatchID).
		Msg("persisted predicted selections")

	return nil
}

// validateSelection enforces the boundary contract: internal components only
// ever see fully-populated, typed selections.
func validateSelection(sel models.Selection) error {
	if sel.ParentMatchID == "" {
		return fmt.Errorf("missing parent_match_id")
	}
	if sel.BetPick == "" {
		return fmt.Errorf("missing bet_pick")
	}
	if sel.SubTypeID <= 0 {
		return fmt.Errorf("invalid sub_type_id %d", sel.SubTypeID)
	}
	if sel.Kickoff.IsZero() || sel.Kickoff.Before(time.Now().Add(-24*time.Hour)) {
		return fmt.Errorf("kickoff %s is missing or stale", sel.Kickoff)
	}
	return nil
}

// Close closes the Kafka reader
func (c *KafkaConsumer) Close() error {
	return c.reader.Close()
}
