package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

// AvailabilityGuard validates a candidate window against the vehicle's
// current bookings. It runs inside the vehicle-scoped lock, so the set
// it sees cannot change until the enclosing transaction ends.
type AvailabilityGuard func(existing []model.Booking) error

// MutateFunc derives the next persistable state of a booking from its
// current row and the vehicle's booking set, both read under the lock.
// The returned flag, when non-nil, is written to the vehicle's
// availability cache in the same transaction.
type MutateFunc func(current model.Booking, existing []model.Booking) (model.Booking, *bool, error)

type BookingRepository interface {
	Create(ctx context.Context, b model.Booking, vehicleAvailable *bool, guard AvailabilityGuard) (model.Booking, error)
	GetByUid(ctx context.Context, bookingUid string) (model.Booking, error)
	List(ctx context.Context, f model.BookingFilter) (model.ListBookings, error)
	ListForVehicle(ctx context.Context, vehicleID int) ([]model.Booking, error)
	Mutate(ctx context.Context, bookingUid string, mutate MutateFunc) (model.Booking, error)
	NextSeq(ctx context.Context) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

type bookingRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func newBookingRepository(db *sqlx.DB, log *zap.Logger) *bookingRepository {
	return &bookingRepository{db: db, log: log}
}

var bookingColumns = []string{
	"id", "booking_uid", "number", "vehicle_id", "customer_id", "status", "source",
	"start_at", "end_at", "charged_days", "daily_rate", "total_price", "late_fee",
	"pickup_at", "return_at", "notes", "created_by", "confirmed_by", "confirmed_at",
	"cancelled_by", "cancelled_at", "created_at",
}

// Create inserts a booking under a vehicle-scoped lock. The read of
// existing bookings, the guard's overlap check and the insert share one
// transaction, two concurrent requests for the same vehicle serialize
// here instead of both passing the check.
func (r *bookingRepository) Create(ctx context.Context, b model.Booking, vehicleAvailable *bool, guard AvailabilityGuard) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := lockVehicle(ctx, tx, b.VehicleID); err != nil {
		return model.Booking{}, err
	}
	existing, err := vehicleBookings(ctx, tx, b.VehicleID)
	if err != nil {
		return model.Booking{}, err
	}
	if err := guard(existing); err != nil {
		return model.Booking{}, err
	}

	q, args, err := qb.Insert(bookingsTableName).
		Columns("booking_uid", "number", "vehicle_id", "customer_id", "status", "source",
			"start_at", "end_at", "charged_days", "daily_rate", "total_price", "notes", "created_by").
		Values(b.BookingUid, b.Number, b.VehicleID, b.CustomerID, b.Status, b.Source,
			b.StartAt, b.EndAt, b.ChargedDays, b.DailyRate, b.TotalPrice, b.Notes, b.CreatedBy).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var created model.Booking
	if err := tx.GetContext(ctx, &created, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation &&
			strings.Contains(pgErr.ConstraintName, "number") {
			return model.Booking{}, errs.ErrNumberTaken
		}
		r.log.Error("booking create", zap.String("q", q), zap.Error(err))
		return model.Booking{}, err
	}

	if vehicleAvailable != nil {
		if err := setVehicleAvailability(ctx, tx, b.VehicleID, *vehicleAvailable); err != nil {
			return model.Booking{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	return created, nil
}

// Mutate reworks a booking row through mutate under the vehicle lock.
// Lock order is vehicle first, then booking, the same as Create, so the
// two paths cannot deadlock each other.
func (r *bookingRepository) Mutate(ctx context.Context, bookingUid string, mutate MutateFunc) (model.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Booking{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var vehicleID int
	peek := `select vehicle_id from bookings where booking_uid = $1`
	if err := tx.GetContext(ctx, &vehicleID, peek, bookingUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	if err := lockVehicle(ctx, tx, vehicleID); err != nil {
		return model.Booking{}, err
	}

	q, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"booking_uid": bookingUid}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	var current model.Booking
	if err := tx.GetContext(ctx, &current, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}

	existing, err := vehicleBookings(ctx, tx, vehicleID)
	if err != nil {
		return model.Booking{}, err
	}

	updated, vehicleAvailable, err := mutate(current, existing)
	if err != nil {
		return model.Booking{}, err
	}

	q, args, err = qb.Update(bookingsTableName).
		Set("status", updated.Status).
		Set("start_at", updated.StartAt).
		Set("end_at", updated.EndAt).
		Set("charged_days", updated.ChargedDays).
		Set("total_price", updated.TotalPrice).
		Set("late_fee", updated.LateFee).
		Set("pickup_at", updated.PickupAt).
		Set("return_at", updated.ReturnAt).
		Set("notes", updated.Notes).
		Set("confirmed_by", updated.ConfirmedBy).
		Set("confirmed_at", updated.ConfirmedAt).
		Set("cancelled_by", updated.CancelledBy).
		Set("cancelled_at", updated.CancelledAt).
		Where(sq.Eq{"id": current.ID, "status": current.Status}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("booking mutate", zap.String("q", q), zap.Error(err))
		return model.Booking{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Booking{}, errs.ErrInvalidTransition
	}

	if vehicleAvailable != nil {
		if err := setVehicleAvailability(ctx, tx, vehicleID, *vehicleAvailable); err != nil {
			return model.Booking{}, err
		}
	}
	if err := tx.Commit(); err != nil {
		return model.Booking{}, err
	}
	return updated, nil
}

func lockVehicle(ctx context.Context, tx *sqlx.Tx, vehicleID int) error {
	var id int
	q := `select id from vehicles where id = $1 for update`
	if err := tx.GetContext(ctx, &id, q, vehicleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		return err
	}
	return nil
}

func vehicleBookings(ctx context.Context, tx *sqlx.Tx, vehicleID int) ([]model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"vehicle_id": vehicleID}).
		Where(sq.Eq{"status": []model.BookingStatus{model.BookingStatusConfirmed, model.BookingStatusActive}}).
		OrderBy("start_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := tx.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// setVehicleAvailability writes the availability cache. A vehicle out of
// active service never advertises as available, whatever the bookings say.
func setVehicleAvailability(ctx context.Context, tx *sqlx.Tx, vehicleID int, available bool) error {
	q := `update vehicles set is_available = ($2 and status = 'active') where id = $1`
	_, err := tx.ExecContext(ctx, q, vehicleID, available)
	return err
}

const bookingJoin = `
	from bookings b
	join vehicles v on v.id = b.vehicle_id
	join customers c on c.id = b.customer_id`

var bookingJoinColumns = []string{
	"b.id", "b.booking_uid", "b.number", "b.vehicle_id", "b.customer_id", "b.status", "b.source",
	"b.start_at", "b.end_at", "b.charged_days", "b.daily_rate", "b.total_price", "b.late_fee",
	"b.pickup_at", "b.return_at", "b.notes", "b.created_by", "b.confirmed_by", "b.confirmed_at",
	"b.cancelled_by", "b.cancelled_at", "b.created_at",
	"v.vehicle_uid", "concat(v.make, ' ', v.model) as vehicle_name",
	"c.customer_uid", "concat(c.first_name, ' ', c.last_name) as customer_name",
}

func (r *bookingRepository) GetByUid(ctx context.Context, bookingUid string) (model.Booking, error) {
	q := fmt.Sprintf(`select %s %s where b.booking_uid = $1`,
		strings.Join(bookingJoinColumns, ", "), bookingJoin)

	var b model.Booking
	if err := r.db.GetContext(ctx, &b, q, bookingUid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, errs.ErrNotFound
		}
		return model.Booking{}, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context, f model.BookingFilter) (model.ListBookings, error) {
	base := qb.Select(bookingJoinColumns...).
		From(bookingsTableName + " b").
		Join("vehicles v on v.id = b.vehicle_id").
		Join("customers c on c.id = b.customer_id").
		OrderBy("b.created_at desc")
	count := qb.Select("count(*)").
		From(bookingsTableName + " b").
		Join("vehicles v on v.id = b.vehicle_id").
		Join("customers c on c.id = b.customer_id")

	apply := func(q sq.SelectBuilder) sq.SelectBuilder {
		if f.VehicleUid != "" {
			q = q.Where(sq.Eq{"v.vehicle_uid": f.VehicleUid})
		}
		if f.CustomerUid != "" {
			q = q.Where(sq.Eq{"c.customer_uid": f.CustomerUid})
		}
		if f.Status != "" {
			q = q.Where(sq.Eq{"b.status": f.Status})
		}
		if f.From != nil {
			q = q.Where(sq.Gt{"b.end_at": *f.From})
		}
		if f.To != nil {
			q = q.Where(sq.Lt{"b.start_at": *f.To})
		}
		return q
	}
	base, count = apply(base), apply(count)

	if f.Page != 0 && f.PageSize != 0 {
		base = base.Limit(uint64(f.PageSize)).Offset(uint64((f.Page - 1) * f.PageSize))
	}

	query, args, err := base.ToSql()
	if err != nil {
		return model.ListBookings{}, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return model.ListBookings{}, err
	}

	query, args, err = count.ToSql()
	if err != nil {
		return model.ListBookings{}, err
	}
	var total int
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return model.ListBookings{}, err
	}

	return model.ListBookings{
		Paging: model.Paging{
			Page:          f.Page,
			PageSize:      f.PageSize,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

// ListForVehicle reads the blocking set without a lock, for availability
// previews. Writes re-read under the lock, so a stale answer here can
// only turn into a clean rejection later.
func (r *bookingRepository) ListForVehicle(ctx context.Context, vehicleID int) ([]model.Booking, error) {
	q, args, err := qb.Select(bookingColumns...).
		From(bookingsTableName).
		Where(sq.Eq{"vehicle_id": vehicleID}).
		Where(sq.Eq{"status": []model.BookingStatus{model.BookingStatusConfirmed, model.BookingStatusActive}}).
		OrderBy("start_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Booking
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *bookingRepository) NextSeq(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.db.GetContext(ctx, &seq, `select nextval('booking_number_seq')`); err != nil {
		return 0, err
	}
	return seq, nil
}

func (r *bookingRepository) NumberExists(ctx context.Context, number string) (bool, error) {
	q, args, err := qb.Select("count(*)").
		From(bookingsTableName).
		Where(sq.Eq{"number": number}).
		ToSql()
	if err != nil {
		return false, err
	}
	var count int
	if err := r.db.GetContext(ctx, &count, q, args...); err != nil {
		return false, err
	}
	return count > 0, nil
}
