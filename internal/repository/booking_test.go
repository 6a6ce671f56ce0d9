package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

func newMockRepo(t *testing.T) (*bookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newBookingRepository(sqlx.NewDb(db, "sqlmock"), zap.NewNop()), mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "booking_uid", "number", "vehicle_id", "customer_id", "status", "source",
		"start_at", "end_at", "charged_days", "daily_rate", "total_price", "late_fee",
		"pickup_at", "return_at", "notes", "created_by", "confirmed_by", "confirmed_at",
		"cancelled_by", "cancelled_at", "created_at",
	})
}

func addBookingRow(rows *sqlmock.Rows, id int, uid, number string, status model.BookingStatus) *sqlmock.Rows {
	start := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	return rows.AddRow(
		id, uid, number, 1, 1, status, model.BookingSourceAdmin,
		start, end, 2, "50", "100", "0",
		nil, nil, "", "admin", nil, nil,
		nil, nil, start.Add(-time.Hour),
	)
}

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	booking := model.Booking{
		BookingUid:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Number:      "BK001",
		VehicleID:   1,
		CustomerID:  1,
		Status:      model.BookingStatusConfirmed,
		Source:      model.BookingSourceAdmin,
		StartAt:     time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
		EndAt:       time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC),
		ChargedDays: 2,
		DailyRate:   decimal.NewFromInt(50),
		TotalPrice:  decimal.NewFromInt(100),
		CreatedBy:   "admin",
	}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WithArgs(1, model.BookingStatusConfirmed, model.BookingStatusActive).
			WillReturnRows(bookingRows())
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnRows(addBookingRow(bookingRows(), 7, booking.BookingUid, booking.Number, booking.Status))
		mock.ExpectCommit()

		guardCalled := false
		created, err := repo.Create(ctx, booking, nil, func(existing []model.Booking) error {
			guardCalled = true
			require.Empty(t, existing)
			return nil
		})
		require.NoError(t, err)
		require.True(t, guardCalled)
		require.Equal(t, booking.Number, created.Number)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard rejects without insert", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WithArgs(1, model.BookingStatusConfirmed, model.BookingStatusActive).
			WillReturnRows(addBookingRow(bookingRows(), 3, "11111111-1111-1111-1111-111111111111", "BK002", model.BookingStatusConfirmed))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, booking, nil, func(existing []model.Booking) error {
			require.Len(t, existing, 1)
			return errs.ErrConflict
		})
		require.ErrorIs(t, err, errs.ErrConflict)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate number", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WillReturnRows(bookingRows())
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "bookings_number_key"})
		mock.ExpectRollback()

		_, err := repo.Create(ctx, booking, nil, func([]model.Booking) error { return nil })
		require.ErrorIs(t, err, errs.ErrNumberTaken)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, booking, nil, func([]model.Booking) error { return nil })
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("availability flag written in same tx", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WillReturnRows(bookingRows())
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnRows(addBookingRow(bookingRows(), 7, booking.BookingUid, booking.Number, booking.Status))
		mock.ExpectExec(`update vehicles set is_available = \(\$2 and status = 'active'\) where id = \$1`).
			WithArgs(1, false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		unavailable := false
		_, err := repo.Create(ctx, booking, &unavailable, func([]model.Booking) error { return nil })
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Mutate(t *testing.T) {
	ctx := context.Background()
	const uid = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

	t.Run("ok", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select vehicle_id from bookings where booking_uid = \$1`).
			WithArgs(uid).
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}).AddRow(1))
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE booking_uid = \$1 for update`).
			WithArgs(uid).
			WillReturnRows(addBookingRow(bookingRows(), 7, uid, "BK001", model.BookingStatusPending))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WillReturnRows(bookingRows())
		mock.ExpectExec(`UPDATE bookings SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`update vehicles set is_available = \(\$2 and status = 'active'\) where id = \$1`).
			WithArgs(1, false).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		got, err := repo.Mutate(ctx, uid, func(current model.Booking, existing []model.Booking) (model.Booking, *bool, error) {
			require.Equal(t, model.BookingStatusPending, current.Status)
			current.Status = model.BookingStatusConfirmed
			flag := false
			return current, &flag, nil
		})
		require.NoError(t, err)
		require.Equal(t, model.BookingStatusConfirmed, got.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mutate error rolls back", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select vehicle_id from bookings where booking_uid = \$1`).
			WithArgs(uid).
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}).AddRow(1))
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE booking_uid = \$1 for update`).
			WithArgs(uid).
			WillReturnRows(addBookingRow(bookingRows(), 7, uid, "BK001", model.BookingStatusCompleted))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WillReturnRows(bookingRows())
		mock.ExpectRollback()

		_, err := repo.Mutate(ctx, uid, func(current model.Booking, _ []model.Booking) (model.Booking, *bool, error) {
			return model.Booking{}, nil, errs.ErrInvalidTransition
		})
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("concurrent status change loses the race", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select vehicle_id from bookings where booking_uid = \$1`).
			WithArgs(uid).
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}).AddRow(1))
		mock.ExpectQuery(`select id from vehicles where id = \$1 for update`).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`FROM bookings WHERE booking_uid = \$1 for update`).
			WithArgs(uid).
			WillReturnRows(addBookingRow(bookingRows(), 7, uid, "BK001", model.BookingStatusPending))
		mock.ExpectQuery(`FROM bookings WHERE vehicle_id = \$1 AND status IN`).
			WillReturnRows(bookingRows())
		mock.ExpectExec(`UPDATE bookings SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Mutate(ctx, uid, func(current model.Booking, _ []model.Booking) (model.Booking, *bool, error) {
			current.Status = model.BookingStatusConfirmed
			return current, nil, nil
		})
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`select vehicle_id from bookings where booking_uid = \$1`).
			WithArgs(uid).
			WillReturnRows(sqlmock.NewRows([]string{"vehicle_id"}))
		mock.ExpectRollback()

		_, err := repo.Mutate(ctx, uid, func(current model.Booking, _ []model.Booking) (model.Booking, *bool, error) {
			return current, nil, nil
		})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBookingRepository_Numbers(t *testing.T) {
	ctx := context.Background()

	t.Run("next seq", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`select nextval\('booking_number_seq'\)`).
			WillReturnRows(sqlmock.NewRows([]string{"nextval"}).AddRow(42))

		seq, err := repo.NextSeq(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 42, seq)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("number exists", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM bookings WHERE number = \$1`).
			WithArgs("BK042").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		taken, err := repo.NumberExists(ctx, "BK042")
		require.NoError(t, err)
		require.True(t, taken)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
