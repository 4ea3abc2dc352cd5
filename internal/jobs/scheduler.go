package jobs

import (
	"context"
	"time"

	"github.com/isdelr/auctions-be/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const pruneTimeout = 30 * time.Second

// Scheduler runs periodic maintenance on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	eventSvc  services.EventServiceProvider
	retention time.Duration
	now       func() time.Time
}

// NewScheduler creates a scheduler that prunes activity events older than
// retention according to the standard cron spec.
func NewScheduler(eventSvc services.EventServiceProvider, spec string, retention time.Duration) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		eventSvc:  eventSvc,
		retention: retention,
		now:       time.Now,
	}
	if _, err := s.cron.AddFunc(spec, s.pruneEvents); err != nil {
		return nil, err
	}
	return s, nil
}

// Start runs the prune once immediately and then on schedule.
func (s *Scheduler) Start() {
	log.Info().Msg("Starting background scheduler...")
	s.pruneEvents()
	s.cron.Start()
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("Stopped background scheduler.")
}

func (s *Scheduler) pruneEvents() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	cutoff := s.now().Add(-s.retention)
	n, err := s.eventSvc.PruneEvents(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("Scheduler: failed to prune events")
		return
	}
	if n > 0 {
		log.Info().Int64("deleted", n).Time("before", cutoff).Msg("Scheduler: pruned old events")
	}
}
