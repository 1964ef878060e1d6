package cache

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

// EventStream publishes analytics events onto a redis stream for
// downstream consumers.
type EventStream struct {
	client *redis.Client
	stream string
	maxLen int64
}

func NewEventStream(client *redis.Client, stream string, maxLen int64) *EventStream {
	return &EventStream{
		client: client,
		stream: stream,
		maxLen: maxLen,
	}
}

func (s *EventStream) Publish(ctx context.Context, event models.AnalyticsEvent) error {
	if s.client == nil {
		return nil
	}

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return err
	}

	values := map[string]any{
		"id":      event.ID,
		"type":    event.EventType,
		"payload": string(payload),
	}
	if event.UserID != nil {
		values["user_id"] = *event.UserID
	}

	_, err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: values,
	}).Result()
	return err
}

// Trim caps the stream length; invoked by the daily maintenance job.
func (s *EventStream) Trim(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.XTrimMaxLenApprox(ctx, s.stream, s.maxLen, 0).Err()
}
