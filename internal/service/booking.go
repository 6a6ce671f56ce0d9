package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/config"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/booking"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/contract"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/pkg/kafka"
)

// allocateRetries bounds the insert retry when a concurrently allocated
// number hits the unique constraint.
const allocateRetries = 3

type BookingService struct {
	log       *zap.Logger
	bookings  repository.BookingRepository
	vehicles  repository.VehicleRepository
	customers repository.CustomerRepository
	allocator *booking.Allocator
	enq       Enqueuer
	mailer    Mailer
	contracts *contract.Renderer
	policy    config.Booking
}

func newBookingService(repo *repository.Repository, enq Enqueuer, mailer Mailer, contracts *contract.Renderer, policy config.Booking, log *zap.Logger) *BookingService {
	return &BookingService{
		log:       log,
		bookings:  repo.Booking,
		vehicles:  repo.Vehicle,
		customers: repo.Customer,
		allocator: booking.NewAllocator(repo.Booking),
		enq:       enq,
		mailer:    mailer,
		contracts: contracts,
		policy:    policy,
	}
}

func (s *BookingService) Quote(ctx context.Context, req model.QuoteRequest) (model.Quote, error) {
	charge, err := booking.CalculateCharge(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return model.Quote{}, err
	}
	v, err := s.vehicles.GetByUid(ctx, req.VehicleUid)
	if err != nil {
		return model.Quote{}, err
	}
	return model.Quote{
		DurationMinutes: charge.DurationMinutes,
		FullDays:        charge.FullDays,
		LatenessMinutes: charge.LatenessMinutes,
		ChargedDays:     charge.ChargedDays,
		DailyRate:       v.DailyRate,
		TotalPrice:      charge.Total(v.DailyRate),
	}, nil
}

// CheckAvailability answers a preview question and does not reserve
// anything. True availability is re-checked under the vehicle lock when
// a booking is actually written.
func (s *BookingService) CheckAvailability(ctx context.Context, req model.QuoteRequest, excludeUid string) (model.AvailabilityResponse, error) {
	iv, err := booking.NewInterval(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return model.AvailabilityResponse{}, err
	}
	v, err := s.vehicles.GetByUid(ctx, req.VehicleUid)
	if err != nil {
		return model.AvailabilityResponse{}, err
	}
	existing, err := s.bookings.ListForVehicle(ctx, v.ID)
	if err != nil {
		return model.AvailabilityResponse{}, err
	}
	conflicts := booking.Conflicts(existing, iv, excludeUid)
	return model.AvailabilityResponse{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// Create books a vehicle from the back office. Back-office bookings are
// confirmed immediately, the operator is the commitment point.
func (s *BookingService) Create(ctx context.Context, req model.CreateBookingRequest, actor string) (model.Booking, error) {
	iv, err := booking.NewInterval(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return model.Booking{}, err
	}
	if min := time.Duration(s.policy.MinDurationMinutes) * time.Minute; iv.Duration() < min {
		return model.Booking{}, errors.Wrapf(errs.ErrTooShort, "minimum is %s", min)
	}
	v, err := s.rentableVehicle(ctx, req.VehicleUid)
	if err != nil {
		return model.Booking{}, err
	}
	c, err := s.customers.GetByUid(ctx, req.CustomerUid)
	if err != nil {
		return model.Booking{}, err
	}

	now := time.Now()
	charge := iv.Charge()
	b := model.Booking{
		BookingUid:  uuid.NewString(),
		VehicleID:   v.ID,
		CustomerID:  c.ID,
		Status:      model.BookingStatusConfirmed,
		Source:      model.BookingSourceAdmin,
		StartAt:     iv.StartAt,
		EndAt:       iv.EndAt,
		ChargedDays: charge.ChargedDays,
		DailyRate:   v.DailyRate,
		TotalPrice:  charge.Total(v.DailyRate),
		Notes:       req.Notes,
		CreatedBy:   actor,
	}
	var flag *bool
	if !iv.StartAt.After(now) {
		unavailable := false
		flag = &unavailable
	}

	created, err := s.insertNumbered(ctx, b, flag, func(existing []model.Booking) error {
		if conflicts := booking.Conflicts(existing, iv, ""); len(conflicts) > 0 {
			return &booking.ConflictError{Conflicts: conflicts}
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	withRefs(&created, v, c)

	s.publish(model.BookingEventConfirmed, created)
	return created, nil
}

// CreateFromWebsite books a vehicle from the public site. The booking
// lands in pending and blocks nothing until an operator confirms it.
func (s *BookingService) CreateFromWebsite(ctx context.Context, req model.WebsiteBookingRequest) (model.Booking, error) {
	iv, err := booking.NewInterval(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return model.Booking{}, err
	}
	v, err := s.rentableVehicle(ctx, req.VehicleUid)
	if err != nil {
		return model.Booking{}, err
	}
	c, err := s.findOrCreateCustomer(ctx, req)
	if err != nil {
		return model.Booking{}, err
	}

	charge := iv.Charge()
	if charge.ChargedDays < s.policy.WebsiteMinDays {
		charge.ChargedDays = s.policy.WebsiteMinDays
	}
	b := model.Booking{
		BookingUid:  uuid.NewString(),
		VehicleID:   v.ID,
		CustomerID:  c.ID,
		Status:      model.BookingStatusPending,
		Source:      model.BookingSourceWebsite,
		StartAt:     iv.StartAt,
		EndAt:       iv.EndAt,
		ChargedDays: charge.ChargedDays,
		DailyRate:   v.DailyRate,
		TotalPrice:  charge.Total(v.DailyRate),
		Notes:       req.Notes,
		CreatedBy:   "website",
	}

	created, err := s.insertNumbered(ctx, b, nil, func(existing []model.Booking) error {
		if conflicts := booking.Conflicts(existing, iv, ""); len(conflicts) > 0 {
			return &booking.ConflictError{Conflicts: conflicts}
		}
		return nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	withRefs(&created, v, c)

	if err := s.mailer.BookingReceived(created, c); err != nil {
		s.log.Warn("send received mail", zap.String("number", created.Number), zap.Error(err))
	}
	return created, nil
}

// rentableVehicle loads a vehicle and rejects bookings against one that
// is out of active service.
func (s *BookingService) rentableVehicle(ctx context.Context, vehicleUid string) (model.Vehicle, error) {
	v, err := s.vehicles.GetByUid(ctx, vehicleUid)
	if err != nil {
		return model.Vehicle{}, err
	}
	if v.Status != model.VehicleStatusActive {
		return model.Vehicle{}, errors.Wrapf(errs.ErrVehicleUnavailable, "vehicle is %s", v.Status)
	}
	return v, nil
}

func (s *BookingService) findOrCreateCustomer(ctx context.Context, req model.WebsiteBookingRequest) (model.Customer, error) {
	c, err := s.customers.GetByEmail(ctx, req.Email)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return model.Customer{}, err
	}
	return s.customers.Create(ctx, model.Customer{
		CustomerUid:   uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
	})
}

// insertNumbered allocates a display number and inserts, retrying a few
// times when another writer races the same number into the unique
// constraint.
func (s *BookingService) insertNumbered(ctx context.Context, b model.Booking, flag *bool, guard repository.AvailabilityGuard) (model.Booking, error) {
	for attempt := 0; attempt < allocateRetries; attempt++ {
		number, err := s.allocator.Allocate(ctx)
		if err != nil {
			return model.Booking{}, err
		}
		b.Number = number
		created, err := s.bookings.Create(ctx, b, flag, guard)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, errs.ErrNumberTaken) {
			return model.Booking{}, err
		}
		s.log.Warn("booking number raced, retrying", zap.String("number", number))
	}
	return model.Booking{}, errs.ErrCapacityExhausted
}

func (s *BookingService) Get(ctx context.Context, bookingUid string) (model.Booking, error) {
	return s.bookings.GetByUid(ctx, bookingUid)
}

func (s *BookingService) List(ctx context.Context, f model.BookingFilter) (model.ListBookings, error) {
	return s.bookings.List(ctx, f)
}

func (s *BookingService) Confirm(ctx context.Context, bookingUid, actor string) (model.Booking, error) {
	pending, err := s.bookings.GetByUid(ctx, bookingUid)
	if err != nil {
		return model.Booking{}, err
	}
	if _, err := s.rentableVehicle(ctx, pending.VehicleUid); err != nil {
		return model.Booking{}, err
	}
	if _, err := s.transition(ctx, bookingUid, booking.EventConfirm, actor); err != nil {
		return model.Booking{}, err
	}
	b, err := s.bookings.GetByUid(ctx, bookingUid)
	if err != nil {
		return model.Booking{}, err
	}

	s.publish(model.BookingEventConfirmed, b)
	if c, err := s.customers.GetByUid(ctx, b.CustomerUid); err == nil {
		if err := s.mailer.BookingConfirmed(b, c); err != nil {
			s.log.Warn("send confirmation mail", zap.String("number", b.Number), zap.Error(err))
		}
	}
	return b, nil
}

func (s *BookingService) Pickup(ctx context.Context, bookingUid, actor string) (model.Booking, error) {
	if _, err := s.transition(ctx, bookingUid, booking.EventPickup, actor); err != nil {
		return model.Booking{}, err
	}
	return s.bookings.GetByUid(ctx, bookingUid)
}

func (s *BookingService) Return(ctx context.Context, bookingUid, actor string, req model.ReturnBookingRequest) (model.Booking, error) {
	_, err := s.bookings.Mutate(ctx, bookingUid, func(current model.Booking, existing []model.Booking) (model.Booking, *bool, error) {
		out, err := booking.Transition(current, booking.EventReturn, time.Now(), actor, existing)
		if err != nil {
			return model.Booking{}, nil, err
		}
		if req.Notes != "" {
			out.Booking.Notes = appendNote(out.Booking.Notes, req.Notes)
		}
		return out.Booking, out.VehicleAvailable, nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	b, err := s.bookings.GetByUid(ctx, bookingUid)
	if err != nil {
		return model.Booking{}, err
	}
	s.publish(model.BookingEventReturned, b)
	return b, nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingUid, actor string) (model.Booking, error) {
	if _, err := s.transition(ctx, bookingUid, booking.EventCancel, actor); err != nil {
		return model.Booking{}, err
	}
	return s.bookings.GetByUid(ctx, bookingUid)
}

func (s *BookingService) transition(ctx context.Context, bookingUid string, ev booking.Event, actor string) (model.Booking, error) {
	return s.bookings.Mutate(ctx, bookingUid, func(current model.Booking, existing []model.Booking) (model.Booking, *bool, error) {
		out, err := booking.Transition(current, ev, time.Now(), actor, existing)
		if err != nil {
			return model.Booking{}, nil, err
		}
		return out.Booking, out.VehicleAvailable, nil
	})
}

// UpdateDates reschedules a booking that has not started yet. The daily
// rate stays frozen at booking time, only days and total move.
func (s *BookingService) UpdateDates(ctx context.Context, bookingUid string, req model.UpdateBookingDatesRequest) (model.Booking, error) {
	iv, err := booking.NewInterval(req.StartDate, req.StartTime, req.EndDate, req.EndTime)
	if err != nil {
		return model.Booking{}, err
	}

	_, err = s.bookings.Mutate(ctx, bookingUid, func(current model.Booking, existing []model.Booking) (model.Booking, *bool, error) {
		if current.Status != model.BookingStatusPending && current.Status != model.BookingStatusConfirmed {
			return model.Booking{}, nil, errors.Wrapf(errs.ErrInvalidTransition, "cannot reschedule booking in status %s", current.Status)
		}
		if conflicts := booking.Conflicts(existing, iv, current.BookingUid); len(conflicts) > 0 {
			return model.Booking{}, nil, &booking.ConflictError{Conflicts: conflicts}
		}

		charge := iv.Charge()
		if current.Source == model.BookingSourceWebsite && charge.ChargedDays < s.policy.WebsiteMinDays {
			charge.ChargedDays = s.policy.WebsiteMinDays
		}
		current.StartAt = iv.StartAt
		current.EndAt = iv.EndAt
		current.ChargedDays = charge.ChargedDays
		current.TotalPrice = charge.Total(current.DailyRate)
		return current, nil, nil
	})
	if err != nil {
		return model.Booking{}, err
	}
	return s.bookings.GetByUid(ctx, bookingUid)
}

func (s *BookingService) Contract(ctx context.Context, bookingUid string) ([]byte, error) {
	b, err := s.bookings.GetByUid(ctx, bookingUid)
	if err != nil {
		return nil, err
	}
	v, err := s.vehicles.GetByUid(ctx, b.VehicleUid)
	if err != nil {
		return nil, err
	}
	c, err := s.customers.GetByUid(ctx, b.CustomerUid)
	if err != nil {
		return nil, err
	}
	return s.contracts.RentalContract(b, v, c)
}

// publish reports a lifecycle fact to the events topic. Publishing is
// best effort, a broker outage must not fail the booking flow.
func (s *BookingService) publish(eventType string, b model.Booking) {
	ev := model.BookingEvent{
		Type:        eventType,
		BookingUid:  b.BookingUid,
		Number:      b.Number,
		VehicleUid:  b.VehicleUid,
		CustomerUid: b.CustomerUid,
		OccurredAt:  time.Now(),
	}
	if err := s.enq.Enqueue(kafka.BookingEventsTopic, ev); err != nil {
		s.log.Error("publish booking event", zap.String("type", eventType), zap.String("number", b.Number), zap.Error(err))
	}
}

func withRefs(b *model.Booking, v model.Vehicle, c model.Customer) {
	b.VehicleUid = v.VehicleUid
	b.VehicleName = v.Make + " " + v.Model
	b.CustomerUid = c.CustomerUid
	b.CustomerName = c.FirstName + " " + c.LastName
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
