package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 1, day, hour, minute, 0, 0, time.UTC)
}

func booked(uid string, status model.BookingStatus, start, end time.Time) model.Booking {
	return model.Booking{
		BookingUid: uid,
		Status:     status,
		StartAt:    start,
		EndAt:      end,
	}
}

func interval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	iv, err := NewInstantInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestConflicts(t *testing.T) {
	existing := booked("b1", model.BookingStatusConfirmed, at(8, 9, 0), at(10, 11, 0))

	tests := []struct {
		name      string
		existing  []model.Booking
		candidate Interval
		exclude   string
		conflicts int
	}{
		{
			name:      "empty set is available",
			existing:  nil,
			candidate: interval(t, at(8, 9, 0), at(10, 11, 0)),
			conflicts: 0,
		},
		{
			name:      "overlapping window conflicts",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			conflicts: 1,
		},
		{
			name:      "candidate fully inside existing conflicts",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(9, 8, 0), at(9, 20, 0)),
			conflicts: 1,
		},
		{
			name:      "existing fully inside candidate conflicts",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(7, 0, 0), at(12, 0, 0)),
			conflicts: 1,
		},
		{
			name:      "back-to-back start at prior end is available",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(10, 11, 0), at(12, 11, 0)),
			conflicts: 0,
		},
		{
			name:      "back-to-back end at prior start is available",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(6, 9, 0), at(8, 9, 0)),
			conflicts: 0,
		},
		{
			name:      "one minute before prior end conflicts",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(10, 10, 59), at(12, 11, 0)),
			conflicts: 1,
		},
		{
			name:      "pending booking does not block",
			existing:  []model.Booking{booked("b1", model.BookingStatusPending, at(8, 9, 0), at(10, 11, 0))},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			conflicts: 0,
		},
		{
			name:      "cancelled booking does not block",
			existing:  []model.Booking{booked("b1", model.BookingStatusCancelled, at(8, 9, 0), at(10, 11, 0))},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			conflicts: 0,
		},
		{
			name:      "completed booking does not block",
			existing:  []model.Booking{booked("b1", model.BookingStatusCompleted, at(8, 9, 0), at(10, 11, 0))},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			conflicts: 0,
		},
		{
			name:      "active booking blocks",
			existing:  []model.Booking{booked("b1", model.BookingStatusActive, at(8, 9, 0), at(10, 11, 0))},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			conflicts: 1,
		},
		{
			name:      "excluded booking is skipped",
			existing:  []model.Booking{existing},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			exclude:   "b1",
			conflicts: 0,
		},
		{
			name: "exclusion leaves other conflicts in place",
			existing: []model.Booking{
				existing,
				booked("b2", model.BookingStatusActive, at(11, 0, 0), at(13, 0, 0)),
			},
			candidate: interval(t, at(9, 0, 0), at(12, 0, 0)),
			exclude:   "b1",
			conflicts: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Conflicts(tt.existing, tt.candidate, tt.exclude)
			require.Len(t, got, tt.conflicts)
		})
	}
}

func TestConflicts_OrderSymmetric(t *testing.T) {
	a := booked("a", model.BookingStatusConfirmed, at(8, 9, 0), at(10, 11, 0))
	b := booked("b", model.BookingStatusConfirmed, at(9, 0, 0), at(12, 0, 0))

	aWindow := interval(t, a.StartAt, a.EndAt)
	bWindow := interval(t, b.StartAt, b.EndAt)

	require.Len(t, Conflicts([]model.Booking{b}, aWindow, ""), 1)
	require.Len(t, Conflicts([]model.Booking{a}, bWindow, ""), 1)
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{Conflicts: []model.Booking{{BookingUid: "b1"}}}
	require.ErrorIs(t, err, errs.ErrConflict)
	require.NotErrorIs(t, err, errs.ErrStillConflicting)

	recheck := &ConflictError{Conflicts: []model.Booking{{BookingUid: "b1"}}, Recheck: true}
	require.ErrorIs(t, recheck, errs.ErrStillConflicting)
}
