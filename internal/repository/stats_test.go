package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

func newMockStatsRepo(t *testing.T) (*statsRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return newStatsRepository(sqlx.NewDb(db, "sqlmock"), zap.NewNop()), mock
}

func TestStatsRepository_InsertEvent(t *testing.T) {
	repo, mock := newMockStatsRepo(t)

	ev := model.BookingEvent{
		Type:        model.BookingEventConfirmed,
		BookingUid:  "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Number:      "BK001",
		VehicleUid:  "11111111-1111-1111-1111-111111111111",
		CustomerUid: "22222222-2222-2222-2222-222222222222",
		OccurredAt:  time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`INSERT INTO booking_events`).
		WithArgs(ev.Type, ev.BookingUid, ev.Number, ev.VehicleUid, ev.CustomerUid, ev.OccurredAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.InsertEvent(context.Background(), ev))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_Counters(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("overdue counts active past end", func(t *testing.T) {
		repo, mock := newMockStatsRepo(t)

		mock.ExpectQuery(`SELECT count\(\*\) FROM bookings WHERE status = \$1 AND end_at < \$2`).
			WithArgs(model.BookingStatusActive, now).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		n, err := repo.CountOverdue(ctx, now)
		require.NoError(t, err)
		require.Equal(t, 3, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("month revenue sums completed", func(t *testing.T) {
		repo, mock := newMockStatsRepo(t)

		since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT coalesce\(sum\(total_price\), 0\) FROM bookings`).
			WithArgs(model.BookingStatusCompleted, since).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1250.50"))

		revenue, err := repo.MonthRevenue(ctx, since)
		require.NoError(t, err)
		require.Equal(t, "1250.5", revenue.String())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
