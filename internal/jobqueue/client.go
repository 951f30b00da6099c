package jobqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"

	"github.com/pidgraph-labs/pidgraph/internal/config"
)

const (
	StreamName   = "pidgraph:graph-construction"
	GroupName    = "pidgraph-workers"
	MaxRetries   = 3
	ClaimTimeout = 5 * time.Minute
)

// NewClient dials Valkey and confirms connectivity with a PING.
func NewClient(cfg config.ValkeyConfig) (valkey.Client, error) {
	opts := valkey.ClientOption{
		InitAddress: []string{cfg.Addr},
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("create valkey client: %w", err)
	}

	ctx := context.Background()
	resp := client.Do(ctx, client.B().Ping().Build())
	if err := resp.Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping valkey: %w", err)
	}

	return client, nil
}

// JobMessage is the payload enqueued for a single graph-construction run.
type JobMessage struct {
	JobID   uuid.UUID `json:"job_id"`
	PID     string    `json:"pid"`
	Trigger string    `json:"trigger"` // "manual" or "rerun"
}

// Producer enqueues graph-construction jobs onto the Valkey stream.
type Producer struct {
	client valkey.Client
}

func NewProducer(client valkey.Client) *Producer {
	return &Producer{client: client}
}

func (p *Producer) Enqueue(ctx context.Context, msg JobMessage) (string, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("marshal message: %w", err)
	}

	resp := p.client.Do(ctx, p.client.B().Xadd().
		Key(StreamName).Id("*").
		FieldValue().FieldValue("data", string(data)).
		Build())
	if err := resp.Error(); err != nil {
		return "", fmt.Errorf("xadd: %w", err)
	}

	id, err := resp.ToString()
	if err != nil {
		return "", fmt.Errorf("parse xadd response: %w", err)
	}
	return id, nil
}

// Consumer reads graph-construction jobs from the Valkey stream. A single
// consumer processes the stream FIFO; messages that fail handling are not
// acknowledged and stay in the group's pending list. Consume reads only new
// messages and does not reclaim or retry pending ones.
type Consumer struct {
	client     valkey.Client
	consumerID string
	logger     *slog.Logger
}

func NewConsumer(client valkey.Client, consumerID string, logger *slog.Logger) *Consumer {
	return &Consumer{client: client, consumerID: consumerID, logger: logger}
}

// EnsureGroup creates the consumer group if it doesn't already exist.
func (c *Consumer) EnsureGroup(ctx context.Context) error {
	resp := c.client.Do(ctx, c.client.B().XgroupCreate().
		Key(StreamName).Group(GroupName).Id("0").Mkstream().Build())
	if err := resp.Error(); err != nil {
		if err.Error() != "BUSYGROUP Consumer Group name already exists" {
			return fmt.Errorf("xgroup create: %w", err)
		}
	}
	return nil
}

// Consume blocks until a message is available, processes it via handler, and
// ACKs on success. Runs until ctx is canceled.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, JobMessage) error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		resp := c.client.Do(ctx, c.client.B().Xreadgroup().
			Group(GroupName, c.consumerID).
			Count(1).Block(5000).
			Streams().Key(StreamName).Id(">").
			Build())

		if err := resp.Error(); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			continue
		}

		results, err := resp.AsXRead()
		if err != nil {
			continue
		}

		for _, messages := range results {
			for _, msg := range messages {
				dataStr, ok := msg.FieldValues["data"]
				if !ok {
					c.logger.Warn("message missing data field", slog.String("id", msg.ID))
					c.ack(ctx, msg.ID)
					continue
				}

				var jobMsg JobMessage
				if err := json.Unmarshal([]byte(dataStr), &jobMsg); err != nil {
					c.logger.Error("unmarshal message", slog.String("error", err.Error()), slog.String("id", msg.ID))
					c.ack(ctx, msg.ID)
					continue
				}

				if err := handler(ctx, jobMsg); err != nil {
					c.logger.Error("handle message", slog.String("error", err.Error()),
						slog.String("id", msg.ID),
						slog.String("pid", jobMsg.PID))
				} else {
					c.ack(ctx, msg.ID)
				}
			}
		}
	}
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	resp := c.client.Do(ctx, c.client.B().Xack().
		Key(StreamName).Group(GroupName).Id(msgID).Build())
	if err := resp.Error(); err != nil {
		c.logger.Error("xack failed", slog.String("error", err.Error()), slog.String("id", msgID))
	}
}
