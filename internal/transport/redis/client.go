package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const channelPrefix = "tictactoe:game:"

// Client - fans game events out to every process through redis pub/sub.
type Client struct {
	logger *slog.Logger
	client *redis.Client
}

func New(logger *slog.Logger, client *redis.Client) *Client {
	return &Client{
		logger: logger.With("component", "events"),
		client: client,
	}
}

func Channel(gameID string) string {
	return channelPrefix + gameID
}

// Publish - sends the event to the channel of its game.
func (that *Client) Publish(ctx context.Context, event *entity.GameEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, Channel(event.GameID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Listen - subscribes to all game channels and calls handle for each event until ctx is done.
// ready, if not nil, is closed once the subscription is confirmed.
func (that *Client) Listen(ctx context.Context, ready chan<- struct{}, handle func(event *entity.GameEvent)) error {
	log := that.logger.With("method", "Listen")

	pubsub := that.client.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to game events: %w", err)
	}

	if ready != nil {
		close(ready)
	}

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var event entity.GameEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Error("failed to unmarshal event", "channel", msg.Channel, "error", err)
				continue
			}

			if event.GameID == "" {
				event.GameID = strings.TrimPrefix(msg.Channel, channelPrefix)
			}

			handle(&event)
		}
	}
}
