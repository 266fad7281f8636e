package scraper

import (
	"context"
	"npd/internal/providers"
	"npd/internal/scraper/interfaces"
	"npd/internal/structures"

	"github.com/roylee0704/gron"
	"go.uber.org/atomic"
)

type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	runner  *Runner
	cron    *gron.Cron
	running atomic.Bool
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Scraper.Interval), func() {
		if !s.running.CompareAndSwap(false, true) {
			s.logger.Warnf(providers.TypeScrape, "Previous scrape run still in progress, skipping")
			return
		}
		defer s.running.Store(false)

		s.logger.Infof(providers.TypeScrape, "Scrape run starting...")
		s.runner.RunOnce(context.Background())
		s.logger.Infof(providers.TypeScrape, "Scrape run finished")
	})

	s.cron.AddFunc(gron.Every(s.config.Persistence.SweepInterval), func() {
		s.runner.ArchiveSweep()
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) Restore() error {
	return s.runner.Restore()
}

func (s *Scheduler) Persist() error {
	s.logger.Infof(providers.TypeApp, "Persisting run state to disk...")
	err := s.runner.Persist()
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, runner *Runner) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		runner: runner,
	}
}
