package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-sim/internal/entity"
)

var ErrEmptyChannel = errors.New("redis channel name is empty")

// Publisher announces finished batches to whoever listens.
type Publisher interface {
	Publish(ctx context.Context, summary entity.BatchSummary) error
}

var _ Publisher = (*Client)(nil)

type Client struct {
	client  *redis.Client
	channel string
}

// New connects to Redis at addr and checks the connection.
func New(ctx context.Context, addr, channel string) (*Client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := conn.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(conn, channel)
}

func NewWithClient(client *redis.Client, channel string) (*Client, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &Client{client: client, channel: channel}, nil
}

// Publish - sends the summary as JSON to the configured channel.
func (that *Client) Publish(ctx context.Context, summary entity.BatchSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal batch summary: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish batch summary in Redis: %w", err)
	}

	return nil
}

func (that *Client) Channel() string {
	return that.channel
}

func (that *Client) Close() error {
	return that.client.Close()
}
