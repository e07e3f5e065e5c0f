package realtime

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/redis/go-redis/v9"

	"ticketing-notifier/internal/infra"
	"ticketing-notifier/internal/pkg/config"
)

// Envelope is the frame published on a user channel and relayed verbatim to websocket clients.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// RedisBroadcaster fans notifications out over Redis pub/sub so every instance can relay them.
type RedisBroadcaster struct {
	client *redis.Client
	prefix string
}

func NewRedisBroadcaster(client *redis.Client, cfg config.RealtimeConfig) *RedisBroadcaster {
	return &RedisBroadcaster{client: client, prefix: cfg.ChannelPrefix}
}

func (b *RedisBroadcaster) ChannelKeyForUser(userID int64) string {
	return b.prefix + strconv.FormatInt(userID, 10)
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channelKey, eventName string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode realtime payload", err)
	}
	frame, err := json.Marshal(Envelope{Event: eventName, Data: data})
	if err != nil {
		return infra.WrapRepoErr("failed to encode realtime envelope", err)
	}
	if err := b.client.Publish(ctx, channelKey, frame).Err(); err != nil {
		return infra.WrapRepoErr("redis publish "+channelKey, err, infra.KindCacheFailure)
	}
	return nil
}

// Subscription delivers raw envelopes published on one channel until closed.
type Subscription struct {
	pubsub *redis.PubSub
	frames chan []byte
}

func (b *RedisBroadcaster) Subscribe(ctx context.Context, channelKey string) (*Subscription, error) {
	pubsub := b.client.Subscribe(ctx, channelKey)
	// Wait for the subscription to be confirmed so no publish after this call is missed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, infra.WrapRepoErr("redis subscribe "+channelKey, err, infra.KindCacheFailure)
	}

	sub := &Subscription{pubsub: pubsub, frames: make(chan []byte)}
	go func() {
		defer close(sub.frames)
		for msg := range pubsub.Channel() {
			select {
			case sub.frames <- []byte(msg.Payload):
			case <-ctx.Done():
				return
			}
		}
	}()
	return sub, nil
}

func (s *Subscription) Frames() <-chan []byte {
	return s.frames
}

func (s *Subscription) Close() error {
	return s.pubsub.Close()
}
