// Package scheduler runs the periodic background price refresh.
package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jmertens/portfolio-tracker-backend/internal/service"
)

// Scheduler owns the cron runner for background jobs.
type Scheduler struct {
	cron  *cron.Cron
	price *service.PriceService
	log   zerolog.Logger
}

// New creates a Scheduler wired to the price service.
func New(price *service.PriceService, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:  cron.New(),
		price: price,
		log:   log,
	}
}

// Start registers the price refresh job with the given cron spec and starts
// the runner. An empty spec disables scheduling entirely.
func (s *Scheduler) Start(spec string) error {
	if spec == "" {
		s.log.Info().Msg("price refresh scheduling disabled")
		return nil
	}

	_, err := s.cron.AddFunc(spec, func() {
		s.price.RefreshAllPrices(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info().Str("spec", spec).Msg("price refresh scheduled")
	return nil
}

// Stop stops the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
