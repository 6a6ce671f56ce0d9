package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

type StatsRepository interface {
	InsertEvent(ctx context.Context, ev model.BookingEvent) error
	ListEvents(ctx context.Context, limit int) ([]model.BookingEvent, error)
	CountVehicles(ctx context.Context) (int, error)
	CountAvailableVehicles(ctx context.Context) (int, error)
	CountCustomers(ctx context.Context) (int, error)
	CountBookingsByStatus(ctx context.Context, status model.BookingStatus) (int, error)
	CountOverdue(ctx context.Context, now time.Time) (int, error)
	MonthRevenue(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type statsRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newStatsRepository(db *sqlx.DB, log *zap.Logger) *statsRepository {
	return &statsRepository{db: db, log: log}
}

func (r *statsRepository) InsertEvent(ctx context.Context, ev model.BookingEvent) error {
	q, args, err := qb.Insert(bookingEventsTableName).
		Columns("type", "booking_uid", "number", "vehicle_uid", "customer_uid", "occurred_at").
		Values(ev.Type, ev.BookingUid, ev.Number, ev.VehicleUid, ev.CustomerUid, ev.OccurredAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("insert event", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *statsRepository) ListEvents(ctx context.Context, limit int) ([]model.BookingEvent, error) {
	q, args, err := qb.Select("type", "booking_uid", "number", "vehicle_uid", "customer_uid", "occurred_at").
		From(bookingEventsTableName).
		OrderBy("occurred_at desc").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.BookingEvent
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *statsRepository) CountVehicles(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(vehiclesTableName))
}

func (r *statsRepository) CountAvailableVehicles(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(vehiclesTableName).
		Where(sq.Eq{"is_available": true}))
}

func (r *statsRepository) CountCustomers(ctx context.Context) (int, error) {
	return r.count(ctx, qb.Select("count(*)").From(customersTableName))
}

func (r *statsRepository) CountBookingsByStatus(ctx context.Context, status model.BookingStatus) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(bookingsTableName).
		Where(sq.Eq{"status": status}))
}

func (r *statsRepository) CountOverdue(ctx context.Context, now time.Time) (int, error) {
	return r.count(ctx, qb.Select("count(*)").
		From(bookingsTableName).
		Where(sq.Eq{"status": model.BookingStatusActive}).
		Where(sq.Lt{"end_at": now}))
}

func (r *statsRepository) MonthRevenue(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	q, args, err := qb.Select("coalesce(sum(total_price), 0)").
		From(bookingsTableName).
		Where(sq.Eq{"status": model.BookingStatusCompleted}).
		Where(sq.GtOrEq{"return_at": since}).
		ToSql()
	if err != nil {
		return decimal.Zero, err
	}
	var revenue decimal.Decimal
	if err := r.db.GetContext(ctx, &revenue, q, args...); err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

func (r *statsRepository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.GetContext(ctx, &n, q, args...); err != nil {
		return 0, err
	}
	return n, nil
}
