package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
)

const recentEventsLimit = 50

type StatsService struct {
	log       *zap.Logger
	repo      repository.StatsRepository
	vehicles  repository.VehicleRepository
	customers repository.CustomerRepository
}

func newStatsService(repo *repository.Repository, log *zap.Logger) *StatsService {
	return &StatsService{
		log:       log,
		repo:      repo.Stats,
		vehicles:  repo.Vehicle,
		customers: repo.Customer,
	}
}

// Apply folds a booking event into the reporting side: the audit trail
// plus the denormalized totals on customer and vehicle. Events arrive
// at least once, so a retried confirm can bump a total twice. The
// totals are informational and the trail keeps every delivery.
func (s *StatsService) Apply(ctx context.Context, ev model.BookingEvent) error {
	if err := s.repo.InsertEvent(ctx, ev); err != nil {
		return err
	}
	if ev.Type != model.BookingEventConfirmed {
		return nil
	}
	if err := s.customers.IncTotalBookings(ctx, ev.CustomerUid); err != nil {
		return err
	}
	return s.vehicles.IncTotalRentals(ctx, ev.VehicleUid)
}

func (s *StatsService) Dashboard(ctx context.Context) (model.DashboardStats, error) {
	var stats model.DashboardStats
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		stats.TotalVehicles, err = s.repo.CountVehicles(ctx)
		return err
	})
	gg.Go(func() (err error) {
		stats.AvailableVehicles, err = s.repo.CountAvailableVehicles(ctx)
		return err
	})
	gg.Go(func() (err error) {
		stats.TotalCustomers, err = s.repo.CountCustomers(ctx)
		return err
	})
	gg.Go(func() (err error) {
		stats.ActiveBookings, err = s.repo.CountBookingsByStatus(ctx, model.BookingStatusActive)
		return err
	})
	gg.Go(func() (err error) {
		stats.PendingBookings, err = s.repo.CountBookingsByStatus(ctx, model.BookingStatusPending)
		return err
	})
	gg.Go(func() (err error) {
		stats.OverdueBookings, err = s.repo.CountOverdue(ctx, now)
		return err
	})
	gg.Go(func() (err error) {
		stats.MonthRevenue, err = s.repo.MonthRevenue(ctx, monthStart)
		return err
	})
	if err := gg.Wait(); err != nil {
		return model.DashboardStats{}, err
	}
	return stats, nil
}

func (s *StatsService) RecentEvents(ctx context.Context) ([]model.BookingEvent, error) {
	return s.repo.ListEvents(ctx, recentEventsLimit)
}
