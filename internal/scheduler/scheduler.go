package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
)

const (
	reconcileSpec = "*/5 * * * *"
	overdueSpec   = "0 * * * *"

	jobTimeout = 30 * time.Second
)

// Scheduler owns the background maintenance jobs. The availability flag
// on vehicles is a cache of booking state, so a periodic sweep heals any
// drift left behind by crashes between a transition and its flag write.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger

	vehicles repository.VehicleRepository
	stats    repository.StatsRepository
}

func New(repo *repository.Repository, log *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		log:      log.Named("scheduler"),
		vehicles: repo.Vehicle,
		stats:    repo.Stats,
	}
	if _, err := s.cron.AddFunc(reconcileSpec, s.reconcileAvailability); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(overdueSpec, s.reportOverdue); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started")
}

// Stop waits for any running job before returning.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) reconcileAvailability() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	fixed, err := s.vehicles.ReconcileAvailability(ctx, time.Now())
	if err != nil {
		s.log.Error("reconcile availability", zap.Error(err))
		return
	}
	if fixed > 0 {
		s.log.Warn("availability flags drifted", zap.Int64("fixed", fixed))
	}
}

func (s *Scheduler) reportOverdue() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	overdue, err := s.stats.CountOverdue(ctx, time.Now())
	if err != nil {
		s.log.Error("count overdue rentals", zap.Error(err))
		return
	}
	if overdue > 0 {
		s.log.Warn("rentals past scheduled return", zap.Int("count", overdue))
	}
}
