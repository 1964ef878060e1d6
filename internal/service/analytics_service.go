package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/ids"
	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

var ErrEventType = errors.New("event type is required")

type AnalyticsService struct {
	events    AnalyticsStore
	publisher EventPublisher
	log       zerolog.Logger
}

func NewAnalyticsService(events AnalyticsStore, publisher EventPublisher, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		events:    events,
		publisher: publisher,
		log:       log,
	}
}

type RecordEventInput struct {
	EventType string
	Payload   map[string]any
	UserID    *string
	IPAddress string
	UserAgent string
}

// Record appends the event. The database row is the source of truth; the
// stream publish is best-effort and never fails the request.
func (s *AnalyticsService) Record(ctx context.Context, input RecordEventInput) (models.AnalyticsEvent, error) {
	if input.EventType == "" {
		return models.AnalyticsEvent{}, ErrEventType
	}

	event := models.AnalyticsEvent{
		ID:        ids.New(),
		EventType: input.EventType,
		Payload:   input.Payload,
		UserID:    input.UserID,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}

	if err := s.events.Insert(ctx, event); err != nil {
		return models.AnalyticsEvent{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.log.Warn().Err(err).Str("event_type", event.EventType).Msg("event publish failed")
		}
	}

	return event, nil
}

func (s *AnalyticsService) List(ctx context.Context, limit int, offset int) ([]models.AnalyticsEvent, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.events.List(ctx, limit, offset)
}
