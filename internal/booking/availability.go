package booking

import (
	"fmt"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

// Blocks reports whether a booking in the given status occupies its
// interval. Pending bookings do not block, confirmation is the
// commitment point.
func Blocks(status model.BookingStatus) bool {
	return status == model.BookingStatusConfirmed || status == model.BookingStatusActive
}

// Conflicts returns the existing bookings whose windows overlap the
// candidate. The booking with uid excludeUid is skipped before any other
// check, so a booking can re-validate its own new dates. Windows that
// merely touch are sequential, not conflicting: a vehicle may be picked
// up the exact instant a prior return is recorded.
func Conflicts(existing []model.Booking, candidate Interval, excludeUid string) []model.Booking {
	var conflicts []model.Booking
	for _, b := range existing {
		if excludeUid != "" && b.BookingUid == excludeUid {
			continue
		}
		if !Blocks(b.Status) {
			continue
		}
		if candidate.StartAt.Before(b.EndAt) && candidate.EndAt.After(b.StartAt) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// ConflictError carries the blocking bookings so callers can surface a
// concrete reason. Recheck marks a conflict discovered while confirming
// a booking that was clean at creation time.
type ConflictError struct {
	Conflicts []model.Booking
	Recheck   bool
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflicting", e.Unwrap(), len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	if e.Recheck {
		return errs.ErrStillConflicting
	}
	return errs.ErrConflict
}
