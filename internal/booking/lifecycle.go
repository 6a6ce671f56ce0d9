package booking

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
)

type Event string

const (
	EventConfirm Event = "confirm"
	EventPickup  Event = "pickup"
	EventReturn  Event = "return"
	EventCancel  Event = "cancel"
)

// TransitionError reports an event applied to a booking outside the
// event's origin status. No status is re-enterable.
type TransitionError struct {
	Status model.BookingStatus
	Event  Event
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s booking in status %s", e.Event, e.Status)
}

func (e *TransitionError) Unwrap() error {
	return errs.ErrInvalidTransition
}

// Outcome carries everything the caller persists after a transition.
// VehicleAvailable is the availability cache write, nil when the
// transition leaves the flag alone.
type Outcome struct {
	Booking          model.Booking
	VehicleAvailable *bool
	LateFee          decimal.Decimal
	ExtraDays        int
}

// Transition applies a lifecycle event to a copy of the booking and
// returns the persistable outcome. It holds no state across calls:
// existing is the current booking set for the vehicle and is consulted
// only by EventConfirm, because pending bookings do not block and the
// window may have been taken since creation.
func Transition(b model.Booking, ev Event, now time.Time, actor string, existing []model.Booking) (Outcome, error) {
	switch ev {
	case EventConfirm:
		return confirm(b, now, actor, existing)
	case EventPickup:
		return pickup(b, now)
	case EventReturn:
		return settle(b, now)
	case EventCancel:
		return cancel(b, now, actor)
	default:
		return Outcome{}, &TransitionError{Status: b.Status, Event: ev}
	}
}

func confirm(b model.Booking, now time.Time, actor string, existing []model.Booking) (Outcome, error) {
	if b.Status != model.BookingStatusPending {
		return Outcome{}, &TransitionError{Status: b.Status, Event: EventConfirm}
	}
	iv := Interval{StartAt: b.StartAt, EndAt: b.EndAt}
	if conflicts := Conflicts(existing, iv, b.BookingUid); len(conflicts) > 0 {
		return Outcome{}, &ConflictError{Conflicts: conflicts, Recheck: true}
	}
	b.Status = model.BookingStatusConfirmed
	b.ConfirmedBy = &actor
	b.ConfirmedAt = &now

	out := Outcome{Booking: b, LateFee: decimal.Zero}
	if !b.StartAt.After(now) {
		out.VehicleAvailable = boolPtr(false)
	}
	return out, nil
}

func pickup(b model.Booking, now time.Time) (Outcome, error) {
	if b.Status != model.BookingStatusConfirmed {
		return Outcome{}, &TransitionError{Status: b.Status, Event: EventPickup}
	}
	b.Status = model.BookingStatusActive
	b.PickupAt = &now
	return Outcome{Booking: b, VehicleAvailable: boolPtr(false), LateFee: decimal.Zero}, nil
}

func settle(b model.Booking, now time.Time) (Outcome, error) {
	if b.Status != model.BookingStatusActive {
		return Outcome{}, &TransitionError{Status: b.Status, Event: EventReturn}
	}
	b.Status = model.BookingStatusCompleted
	b.ReturnAt = &now

	out := Outcome{VehicleAvailable: boolPtr(true), LateFee: decimal.Zero}
	// Settlement runs against the scheduled pickup instant, not the
	// recorded one. Only the positive excess is billed, early returns
	// never refund.
	settled := SettleCharge(b.StartAt, now)
	if settled.ChargedDays > b.ChargedDays {
		out.ExtraDays = settled.ChargedDays - b.ChargedDays
		out.LateFee = b.DailyRate.Mul(decimal.NewFromInt(int64(out.ExtraDays)))
		b.ChargedDays = settled.ChargedDays
		b.TotalPrice = settled.Total(b.DailyRate)
		b.LateFee = out.LateFee
	}
	out.Booking = b
	return out, nil
}

func cancel(b model.Booking, now time.Time, actor string) (Outcome, error) {
	if b.Status != model.BookingStatusPending && b.Status != model.BookingStatusConfirmed {
		return Outcome{}, &TransitionError{Status: b.Status, Event: EventCancel}
	}
	b.Status = model.BookingStatusCancelled
	b.CancelledBy = &actor
	b.CancelledAt = &now
	return Outcome{Booking: b, VehicleAvailable: boolPtr(true), LateFee: decimal.Zero}, nil
}

func boolPtr(v bool) *bool {
	return &v
}
