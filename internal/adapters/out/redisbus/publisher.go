// Package redisbus publishes workflow notifications over Redis pub/sub.
// Each user has their own channel; interested consumers (websocket gateways,
// push senders) subscribe to the channels of the users they serve.
package redisbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "notifications:"

// notificationMessage is the wire format published to the channel.
type notificationMessage struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Publisher implements ports.NotificationPublisher on Redis pub/sub.
// Publishing is fire-and-forget: failures are logged and swallowed, never
// surfaced to the business operation that triggered the notification.
type Publisher struct {
	client *redis.Client
	logger *slog.Logger
}

// NewPublisher creates a notification publisher on the given Redis client.
func NewPublisher(client *redis.Client, logger *slog.Logger) *Publisher {
	return &Publisher{
		client: client,
		logger: logger,
	}
}

// Notify publishes the notification to the recipient's channel.
func (p *Publisher) Notify(ctx context.Context, recipientID kernel.UUID, notification ports.Notification) {
	payload, err := json.Marshal(notificationMessage{
		Type:    notification.Type,
		Title:   notification.Title,
		Message: notification.Message,
	})
	if err != nil {
		p.logger.ErrorContext(ctx, "marshal notification",
			"recipient", recipientID.String(), "error", err)
		return
	}

	channel := channelPrefix + recipientID.String()
	if err := p.client.Publish(ctx, channel, payload).Err(); err != nil {
		p.logger.ErrorContext(ctx, "publish notification",
			"channel", channel, "type", notification.Type, "error", err)
	}
}
