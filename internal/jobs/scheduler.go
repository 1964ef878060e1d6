package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/KEYAJANI/demiland-sub000/internal/cache"
	"github.com/KEYAJANI/demiland-sub000/internal/repository"
)

// Scheduler runs the background maintenance the request path never does:
// sweeping expired sessions and trimming the analytics stream.
type Scheduler struct {
	cron     *cron.Cron
	sessions *repository.SessionRepository
	stream   *cache.EventStream
	log      zerolog.Logger
}

func NewScheduler(sessions *repository.SessionRepository, stream *cache.EventStream, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		sessions: sessions,
		stream:   stream,
		log:      log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("0 0 * * * *", s.sweepSessions); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 0 3 * * *", s.trimAnalytics); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop waits for in-flight jobs, up to a bounded grace period.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		s.log.Warn().Msg("scheduler stop timed out")
	}
}

func (s *Scheduler) sweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	removed, err := s.sessions.DeleteExpired(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if removed > 0 {
		s.log.Info().Int64("removed", removed).Msg("expired sessions swept")
	}
}

func (s *Scheduler) trimAnalytics() {
	if s.stream == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.stream.Trim(ctx); err != nil {
		s.log.Error().Err(err).Msg("analytics stream trim failed")
	}
}
