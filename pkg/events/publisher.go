// Package events broadcasts record changes so other admin screens can refresh.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Type names a change to the record store.
type Type string

const (
	StudentAdded   Type = "student.added"
	StudentRemoved Type = "student.removed"
	TeacherAdded   Type = "teacher.added"
	TeacherRemoved Type = "teacher.removed"
	MarksSaved     Type = "marks.saved"
)

// Event is the payload published for every change.
type Event struct {
	Type Type      `json:"type"`
	ID   string    `json:"id"`
	At   time.Time `json:"at"`
}

// Publisher delivers events to subscribers.
type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}

// Nop discards every event.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(context.Context, Event) error { return nil }

// RedisPublisher publishes JSON events on a Redis pub/sub channel.
type RedisPublisher struct {
	client  *redis.Client
	channel string
}

// NewRedisPublisher constructs a publisher for channel.
func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	if channel == "" {
		channel = "school-admin:events"
	}
	return &RedisPublisher{client: client, channel: channel}
}

// Publish encodes evt and sends it on the configured channel.
func (p *RedisPublisher) Publish(ctx context.Context, evt Event) error {
	if p == nil || p.client == nil {
		return nil
	}
	payload, err := Encode(evt)
	if err != nil {
		return err
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (p *RedisPublisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}

// Encode stamps evt when At is unset and marshals it.
func Encode(evt Event) ([]byte, error) {
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("marshal event %s: %w", evt.Type, err)
	}
	return payload, nil
}
