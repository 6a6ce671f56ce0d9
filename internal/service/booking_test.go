package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/config"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/booking"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/contract"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/repository"
)

const (
	testVehicleUid  = "11111111-1111-1111-1111-111111111111"
	testCustomerUid = "22222222-2222-2222-2222-222222222222"
)

type fakeBookingRepo struct {
	mu         sync.Mutex
	seq        int64
	nextID     int
	bookings   map[string]model.Booking
	numbers    map[string]bool
	raceNext   int
	flagWrites []bool
	vehicles   *fakeVehicleRepo
	customers  *fakeCustomerRepo
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: map[string]model.Booking{},
		numbers:  map[string]bool{},
	}
}

func (f *fakeBookingRepo) blocking(vehicleID int) []model.Booking {
	var out []model.Booking
	for _, b := range f.bookings {
		if b.VehicleID == vehicleID && booking.Blocks(b.Status) {
			out = append(out, b)
		}
	}
	return out
}

func (f *fakeBookingRepo) Create(_ context.Context, b model.Booking, flag *bool, guard repository.AvailabilityGuard) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := guard(f.blocking(b.VehicleID)); err != nil {
		return model.Booking{}, err
	}
	if f.raceNext > 0 {
		f.raceNext--
		f.numbers[b.Number] = true
		return model.Booking{}, errs.ErrNumberTaken
	}
	if f.numbers[b.Number] {
		return model.Booking{}, errs.ErrNumberTaken
	}
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	f.bookings[b.BookingUid] = b
	f.numbers[b.Number] = true
	if flag != nil {
		f.flagWrites = append(f.flagWrites, *flag)
	}
	return b, nil
}

// joined mirrors the SQL repository, whose reads join vehicles and
// customers to populate the uid and name reference fields.
func (f *fakeBookingRepo) joined(b model.Booking) model.Booking {
	if f.vehicles != nil {
		for _, v := range f.vehicles.vehicles {
			if v.ID == b.VehicleID {
				b.VehicleUid = v.VehicleUid
				b.VehicleName = v.Make + " " + v.Model
			}
		}
	}
	if f.customers != nil {
		for _, c := range f.customers.customers {
			if c.ID == b.CustomerID {
				b.CustomerUid = c.CustomerUid
				b.CustomerName = c.FirstName + " " + c.LastName
			}
		}
	}
	return b
}

func (f *fakeBookingRepo) GetByUid(_ context.Context, uid string) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bookings[uid]
	if !ok {
		return model.Booking{}, errs.ErrNotFound
	}
	return f.joined(b), nil
}

func (f *fakeBookingRepo) List(_ context.Context, _ model.BookingFilter) (model.ListBookings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := model.ListBookings{}
	for _, b := range f.bookings {
		out.Items = append(out.Items, b)
	}
	out.TotalElements = len(out.Items)
	return out, nil
}

func (f *fakeBookingRepo) ListForVehicle(_ context.Context, vehicleID int) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.blocking(vehicleID), nil
}

func (f *fakeBookingRepo) Mutate(_ context.Context, uid string, mutate repository.MutateFunc) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	current, ok := f.bookings[uid]
	if !ok {
		return model.Booking{}, errs.ErrNotFound
	}
	updated, flag, err := mutate(current, f.blocking(current.VehicleID))
	if err != nil {
		return model.Booking{}, err
	}
	f.bookings[uid] = updated
	if flag != nil {
		f.flagWrites = append(f.flagWrites, *flag)
	}
	return updated, nil
}

func (f *fakeBookingRepo) NextSeq(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq, nil
}

func (f *fakeBookingRepo) NumberExists(_ context.Context, number string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.numbers[number], nil
}

type fakeVehicleRepo struct {
	vehicles map[string]model.Vehicle
}

func (f *fakeVehicleRepo) Create(_ context.Context, v model.Vehicle) (model.Vehicle, error) {
	return v, nil
}
func (f *fakeVehicleRepo) GetByUid(_ context.Context, uid string) (model.Vehicle, error) {
	v, ok := f.vehicles[uid]
	if !ok {
		return model.Vehicle{}, errs.ErrNotFound
	}
	return v, nil
}
func (f *fakeVehicleRepo) List(_ context.Context, _ model.VehicleFilter) (model.ListVehicles, error) {
	return model.ListVehicles{}, nil
}
func (f *fakeVehicleRepo) Update(_ context.Context, _ string, _ model.UpdateVehicleRequest) (model.Vehicle, error) {
	return model.Vehicle{}, nil
}
func (f *fakeVehicleRepo) Delete(_ context.Context, _ string) error {
	return nil
}
func (f *fakeVehicleRepo) IncTotalRentals(_ context.Context, _ string) error {
	return nil
}
func (f *fakeVehicleRepo) AddImage(_ context.Context, img model.VehicleImage) (model.VehicleImage, error) {
	return img, nil
}
func (f *fakeVehicleRepo) ListImages(_ context.Context, _ int) ([]model.VehicleImage, error) {
	return nil, nil
}
func (f *fakeVehicleRepo) DeleteImage(_ context.Context, _ string, _ int) (string, error) {
	return "", nil
}
func (f *fakeVehicleRepo) ReconcileAvailability(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fakeCustomerRepo struct {
	customers map[string]model.Customer
	byEmail   map[string]string
	creates   int
}

func (f *fakeCustomerRepo) Create(_ context.Context, c model.Customer) (model.Customer, error) {
	f.creates++
	c.ID = 100 + f.creates
	f.customers[c.CustomerUid] = c
	f.byEmail[c.Email] = c.CustomerUid
	return c, nil
}
func (f *fakeCustomerRepo) GetByUid(_ context.Context, uid string) (model.Customer, error) {
	c, ok := f.customers[uid]
	if !ok {
		return model.Customer{}, errs.ErrNotFound
	}
	return c, nil
}
func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (model.Customer, error) {
	uid, ok := f.byEmail[email]
	if !ok {
		return model.Customer{}, errs.ErrNotFound
	}
	return f.customers[uid], nil
}
func (f *fakeCustomerRepo) List(_ context.Context, _ model.CustomerFilter) (model.ListCustomers, error) {
	return model.ListCustomers{}, nil
}
func (f *fakeCustomerRepo) Update(_ context.Context, _ string, _ model.UpdateCustomerRequest) (model.Customer, error) {
	return model.Customer{}, nil
}
func (f *fakeCustomerRepo) Delete(_ context.Context, _ string) error {
	return nil
}
func (f *fakeCustomerRepo) IncTotalBookings(_ context.Context, _ string) error {
	return nil
}

type fakeEnqueuer struct {
	events []model.BookingEvent
}

func (f *fakeEnqueuer) Enqueue(_ string, v any) error {
	f.events = append(f.events, v.(model.BookingEvent))
	return nil
}

type fakeMailer struct {
	received  []string
	confirmed []string
}

func (f *fakeMailer) BookingReceived(b model.Booking, _ model.Customer) error {
	f.received = append(f.received, b.Number)
	return nil
}
func (f *fakeMailer) BookingConfirmed(b model.Booking, _ model.Customer) error {
	f.confirmed = append(f.confirmed, b.Number)
	return nil
}

type bookingFixture struct {
	svc       *BookingService
	bookings  *fakeBookingRepo
	vehicles  *fakeVehicleRepo
	customers *fakeCustomerRepo
	enq       *fakeEnqueuer
	mailer    *fakeMailer
}

func newBookingFixture(policy config.Booking) *bookingFixture {
	fb := newFakeBookingRepo()
	fv := &fakeVehicleRepo{vehicles: map[string]model.Vehicle{
		testVehicleUid: {
			ID:          1,
			VehicleUid:  testVehicleUid,
			Make:        "Toyota",
			Model:       "Corolla",
			Year:        2021,
			PlateNumber: "A123BC",
			DailyRate:   decimal.NewFromInt(50),
			Status:      model.VehicleStatusActive,
			IsAvailable: true,
		},
	}}
	fc := &fakeCustomerRepo{
		customers: map[string]model.Customer{
			testCustomerUid: {
				ID:          1,
				CustomerUid: testCustomerUid,
				FirstName:   "Jane",
				LastName:    "Doe",
				Email:       "jane@example.com",
			},
		},
		byEmail: map[string]string{"jane@example.com": testCustomerUid},
	}
	enq := &fakeEnqueuer{}
	mail := &fakeMailer{}
	fb.vehicles = fv
	fb.customers = fc
	repo := &repository.Repository{Booking: fb, Vehicle: fv, Customer: fc}
	svc := newBookingService(repo, enq, mail, contract.NewRenderer(), policy, zap.NewNop())
	return &bookingFixture{svc: svc, bookings: fb, vehicles: fv, customers: fc, enq: enq, mailer: mail}
}

func defaultPolicy() config.Booking {
	return config.Booking{MinDurationMinutes: 15, WebsiteMinDays: 1}
}

func adminReq(startDate, startTime, endDate, endTime string) model.CreateBookingRequest {
	return model.CreateBookingRequest{
		VehicleUid:  testVehicleUid,
		CustomerUid: testCustomerUid,
		StartDate:   startDate,
		StartTime:   startTime,
		EndDate:     endDate,
		EndTime:     endTime,
	}
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("future pickup confirms without touching the flag", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		created, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "10:00"), "admin")
		require.NoError(t, err)
		require.Equal(t, model.BookingStatusConfirmed, created.Status)
		require.Equal(t, model.BookingSourceAdmin, created.Source)
		require.Equal(t, "BK001", created.Number)
		require.Equal(t, 2, created.ChargedDays)
		require.True(t, decimal.NewFromInt(100).Equal(created.TotalPrice))
		require.Equal(t, "admin", created.CreatedBy)
		require.Equal(t, "Toyota Corolla", created.VehicleName)
		require.Empty(t, fx.bookings.flagWrites)

		require.Len(t, fx.enq.events, 1)
		require.Equal(t, model.BookingEventConfirmed, fx.enq.events[0].Type)
		require.Equal(t, testVehicleUid, fx.enq.events[0].VehicleUid)
	})

	t.Run("pickup already started flips the flag off", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		created, err := fx.svc.Create(ctx, adminReq("2020-01-01", "10:00", "2030-01-03", "10:00"), "admin")
		require.NoError(t, err)
		require.Equal(t, model.BookingStatusConfirmed, created.Status)
		require.Equal(t, []bool{false}, fx.bookings.flagWrites)
	})

	t.Run("overlapping window is rejected with conflicts", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		_, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "10:00"), "admin")
		require.NoError(t, err)

		_, err = fx.svc.Create(ctx, adminReq("2030-05-11", "09:00", "2030-05-13", "09:00"), "admin")
		require.ErrorIs(t, err, errs.ErrConflict)
		var conflictErr *booking.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		require.Len(t, conflictErr.Conflicts, 1)
		require.Equal(t, "BK001", conflictErr.Conflicts[0].Number)
	})

	t.Run("back-to-back window is accepted", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		_, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "10:00"), "admin")
		require.NoError(t, err)

		created, err := fx.svc.Create(ctx, adminReq("2030-05-12", "10:00", "2030-05-14", "10:00"), "admin")
		require.NoError(t, err)
		require.Equal(t, "BK002", created.Number)
	})

	t.Run("below minimum duration", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		_, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-10", "10:10"), "admin")
		require.ErrorIs(t, err, errs.ErrTooShort)
	})

	t.Run("inverted window", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		_, err := fx.svc.Create(ctx, adminReq("2030-05-12", "10:00", "2030-05-10", "10:00"), "admin")
		require.ErrorIs(t, err, errs.ErrInvalidInterval)
	})

	t.Run("raced number retries with a fresh one", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		fx.bookings.raceNext = 1

		created, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "10:00"), "admin")
		require.NoError(t, err)
		require.Equal(t, "BK002", created.Number)
	})

	t.Run("vehicle in maintenance is not rentable", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		v := fx.vehicles.vehicles[testVehicleUid]
		v.Status = model.VehicleStatusMaintenance
		fx.vehicles.vehicles[testVehicleUid] = v

		_, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "10:00"), "admin")
		require.ErrorIs(t, err, errs.ErrVehicleUnavailable)
	})
}

func TestBookingService_CreateFromWebsite(t *testing.T) {
	ctx := context.Background()
	req := model.WebsiteBookingRequest{
		VehicleUid:    testVehicleUid,
		FirstName:     "Sam",
		LastName:      "Smith",
		Email:         "sam@example.com",
		Phone:         "+31612345678",
		LicenseNumber: "DL-42",
		StartDate:     "2030-06-01",
		StartTime:     "09:00",
		EndDate:       "2030-06-01",
		EndTime:       "12:00",
	}

	t.Run("new customer lands pending with minimum charge", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())

		created, err := fx.svc.CreateFromWebsite(ctx, req)
		require.NoError(t, err)
		require.Equal(t, model.BookingStatusPending, created.Status)
		require.Equal(t, model.BookingSourceWebsite, created.Source)
		require.Equal(t, "website", created.CreatedBy)
		require.Equal(t, 1, created.ChargedDays)
		require.True(t, decimal.NewFromInt(50).Equal(created.TotalPrice))
		require.Equal(t, 1, fx.customers.creates)

		// Pending does not block and does not touch the flag.
		require.Empty(t, fx.bookings.flagWrites)
		require.Empty(t, fx.enq.events)
		require.Equal(t, []string{created.Number}, fx.mailer.received)
	})

	t.Run("known email reuses the customer", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		known := req
		known.Email = "jane@example.com"

		created, err := fx.svc.CreateFromWebsite(ctx, known)
		require.NoError(t, err)
		require.Equal(t, testCustomerUid, created.CustomerUid)
		require.Zero(t, fx.customers.creates)
	})

	t.Run("website minimum days floor applies", func(t *testing.T) {
		fx := newBookingFixture(config.Booking{MinDurationMinutes: 15, WebsiteMinDays: 2})

		created, err := fx.svc.CreateFromWebsite(ctx, req)
		require.NoError(t, err)
		require.Equal(t, 2, created.ChargedDays)
		require.True(t, decimal.NewFromInt(100).Equal(created.TotalPrice))
	})
}

func TestBookingService_Confirm(t *testing.T) {
	ctx := context.Background()

	seedPending := func(fx *bookingFixture, uid string, start, end time.Time) {
		fx.bookings.bookings[uid] = model.Booking{
			ID:          len(fx.bookings.bookings) + 1,
			BookingUid:  uid,
			Number:      "BK090",
			VehicleID:   1,
			VehicleUid:  testVehicleUid,
			CustomerID:  1,
			CustomerUid: testCustomerUid,
			Status:      model.BookingStatusPending,
			Source:      model.BookingSourceWebsite,
			StartAt:     start,
			EndAt:       end,
			ChargedDays: 2,
			DailyRate:   decimal.NewFromInt(50),
			TotalPrice:  decimal.NewFromInt(100),
		}
	}

	t.Run("pending confirms and reports the event", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		const uid = "33333333-3333-3333-3333-333333333333"
		start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
		seedPending(fx, uid, start, start.Add(48*time.Hour))

		b, err := fx.svc.Confirm(ctx, uid, "operator")
		require.NoError(t, err)
		require.Equal(t, model.BookingStatusConfirmed, b.Status)
		require.NotNil(t, b.ConfirmedBy)
		require.Equal(t, "operator", *b.ConfirmedBy)
		require.NotNil(t, b.ConfirmedAt)

		require.Len(t, fx.enq.events, 1)
		require.Equal(t, model.BookingEventConfirmed, fx.enq.events[0].Type)
		require.Equal(t, []string{"BK090"}, fx.mailer.confirmed)
	})

	t.Run("window taken since creation", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		const uid = "33333333-3333-3333-3333-333333333333"
		start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
		seedPending(fx, uid, start, start.Add(48*time.Hour))

		_, err := fx.svc.Create(ctx, adminReq("2030-06-01", "12:00", "2030-06-02", "12:00"), "admin")
		require.NoError(t, err)

		_, err = fx.svc.Confirm(ctx, uid, "operator")
		require.ErrorIs(t, err, errs.ErrStillConflicting)
		require.Equal(t, model.BookingStatusPending, fx.bookings.bookings[uid].Status)
	})

	t.Run("already confirmed", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		created, err := fx.svc.Create(ctx, adminReq("2030-06-01", "10:00", "2030-06-03", "10:00"), "admin")
		require.NoError(t, err)

		_, err = fx.svc.Confirm(ctx, created.BookingUid, "operator")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		_, err := fx.svc.Confirm(ctx, "99999999-9999-9999-9999-999999999999", "operator")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("vehicle pulled from service since creation", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		const uid = "33333333-3333-3333-3333-333333333333"
		start := time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)
		seedPending(fx, uid, start, start.Add(48*time.Hour))

		v := fx.vehicles.vehicles[testVehicleUid]
		v.Status = model.VehicleStatusRetired
		fx.vehicles.vehicles[testVehicleUid] = v

		_, err := fx.svc.Confirm(ctx, uid, "operator")
		require.ErrorIs(t, err, errs.ErrVehicleUnavailable)
		require.Equal(t, model.BookingStatusPending, fx.bookings.bookings[uid].Status)
	})
}

func TestBookingService_ReturnSettlement(t *testing.T) {
	ctx := context.Background()
	const uid = "44444444-4444-4444-4444-444444444444"

	seedActive := func(fx *bookingFixture, start time.Time) {
		pickup := start
		fx.bookings.bookings[uid] = model.Booking{
			ID:          1,
			BookingUid:  uid,
			Number:      "BK007",
			VehicleID:   1,
			VehicleUid:  testVehicleUid,
			CustomerID:  1,
			CustomerUid: testCustomerUid,
			Status:      model.BookingStatusActive,
			Source:      model.BookingSourceAdmin,
			StartAt:     start,
			EndAt:       start.Add(48 * time.Hour),
			ChargedDays: 2,
			DailyRate:   decimal.NewFromInt(50),
			TotalPrice:  decimal.NewFromInt(100),
			PickupAt:    &pickup,
		}
	}

	t.Run("late return bills the surplus days", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		seedActive(fx, time.Now().Add(-(48*time.Hour + 100*time.Minute)))

		b, err := fx.svc.Return(ctx, uid, "operator", model.ReturnBookingRequest{Notes: "scratch on left door"})
		require.NoError(t, err)
		require.Equal(t, model.BookingStatusCompleted, b.Status)
		require.Equal(t, 3, b.ChargedDays)
		require.True(t, decimal.NewFromInt(150).Equal(b.TotalPrice))
		require.True(t, decimal.NewFromInt(50).Equal(b.LateFee))
		require.NotNil(t, b.ReturnAt)
		require.Contains(t, b.Notes, "scratch on left door")

		require.Equal(t, []bool{true}, fx.bookings.flagWrites)
		require.Len(t, fx.enq.events, 1)
		require.Equal(t, model.BookingEventReturned, fx.enq.events[0].Type)
	})

	t.Run("on-time return keeps the booked amount", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		seedActive(fx, time.Now().Add(-(48*time.Hour + 30*time.Minute)))

		b, err := fx.svc.Return(ctx, uid, "operator", model.ReturnBookingRequest{})
		require.NoError(t, err)
		require.Equal(t, 2, b.ChargedDays)
		require.True(t, decimal.NewFromInt(100).Equal(b.TotalPrice))
		require.True(t, b.LateFee.IsZero())
	})

	t.Run("return requires an active rental", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		created, err := fx.svc.Create(ctx, adminReq("2030-06-01", "10:00", "2030-06-03", "10:00"), "admin")
		require.NoError(t, err)

		_, err = fx.svc.Return(ctx, created.BookingUid, "operator", model.ReturnBookingRequest{})
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctx := context.Background()
	fx := newBookingFixture(defaultPolicy())

	created, err := fx.svc.Create(ctx, adminReq("2030-06-01", "10:00", "2030-06-03", "10:00"), "admin")
	require.NoError(t, err)

	b, err := fx.svc.Cancel(ctx, created.BookingUid, "operator")
	require.NoError(t, err)
	require.Equal(t, model.BookingStatusCancelled, b.Status)
	require.NotNil(t, b.CancelledBy)
	require.Equal(t, "operator", *b.CancelledBy)
	require.Equal(t, []bool{true}, fx.bookings.flagWrites)

	_, err = fx.svc.Cancel(ctx, created.BookingUid, "operator")
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestBookingService_UpdateDates(t *testing.T) {
	ctx := context.Background()
	datesReq := func(startDate, startTime, endDate, endTime string) model.UpdateBookingDatesRequest {
		return model.UpdateBookingDatesRequest{
			StartDate: startDate, StartTime: startTime, EndDate: endDate, EndTime: endTime,
		}
	}

	t.Run("reschedule recomputes the charge at the frozen rate", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		created, err := fx.svc.Create(ctx, adminReq("2030-06-01", "10:00", "2030-06-03", "10:00"), "admin")
		require.NoError(t, err)

		b, err := fx.svc.UpdateDates(ctx, created.BookingUid, datesReq("2030-06-05", "10:00", "2030-06-08", "11:30"))
		require.NoError(t, err)
		require.Equal(t, 4, b.ChargedDays) // 3 days + 90 min lateness
		require.True(t, decimal.NewFromInt(200).Equal(b.TotalPrice))
		require.Equal(t, model.BookingStatusConfirmed, b.Status)
	})

	t.Run("reschedule onto another booking conflicts", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		first, err := fx.svc.Create(ctx, adminReq("2030-06-01", "10:00", "2030-06-03", "10:00"), "admin")
		require.NoError(t, err)
		_, err = fx.svc.Create(ctx, adminReq("2030-06-10", "10:00", "2030-06-12", "10:00"), "admin")
		require.NoError(t, err)

		_, err = fx.svc.UpdateDates(ctx, first.BookingUid, datesReq("2030-06-11", "10:00", "2030-06-13", "10:00"))
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("own window does not conflict with itself", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		created, err := fx.svc.Create(ctx, adminReq("2030-06-01", "10:00", "2030-06-03", "10:00"), "admin")
		require.NoError(t, err)

		b, err := fx.svc.UpdateDates(ctx, created.BookingUid, datesReq("2030-06-02", "10:00", "2030-06-04", "10:00"))
		require.NoError(t, err)
		require.Equal(t, 2, b.ChargedDays)
	})

	t.Run("completed booking cannot move", func(t *testing.T) {
		fx := newBookingFixture(defaultPolicy())
		const uid = "55555555-5555-5555-5555-555555555555"
		fx.bookings.bookings[uid] = model.Booking{
			ID: 1, BookingUid: uid, VehicleID: 1, Status: model.BookingStatusCompleted,
			StartAt: time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2030, 6, 3, 10, 0, 0, 0, time.UTC),
		}

		_, err := fx.svc.UpdateDates(ctx, uid, datesReq("2030-06-05", "10:00", "2030-06-07", "10:00"))
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestBookingService_Quote(t *testing.T) {
	ctx := context.Background()
	fx := newBookingFixture(defaultPolicy())

	q, err := fx.svc.Quote(ctx, model.QuoteRequest{
		VehicleUid: testVehicleUid,
		StartDate:  "2030-05-10", StartTime: "10:00",
		EndDate: "2030-05-11", EndTime: "11:30",
	})
	require.NoError(t, err)
	require.Equal(t, 1530, q.DurationMinutes)
	require.Equal(t, 1, q.FullDays)
	require.Equal(t, 90, q.LatenessMinutes)
	require.Equal(t, 2, q.ChargedDays)
	require.True(t, decimal.NewFromInt(100).Equal(q.TotalPrice))

	_, err = fx.svc.Quote(ctx, model.QuoteRequest{
		VehicleUid: testVehicleUid,
		StartDate:  "2030-05-10", StartTime: "10:00",
		EndDate: "2030-05-10", EndTime: "10:00",
	})
	require.ErrorIs(t, err, errs.ErrInvalidInterval)
}

func TestBookingService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	fx := newBookingFixture(defaultPolicy())

	_, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "11:00"), "admin")
	require.NoError(t, err)

	res, err := fx.svc.CheckAvailability(ctx, model.QuoteRequest{
		VehicleUid: testVehicleUid,
		StartDate:  "2030-05-12", StartTime: "11:00",
		EndDate: "2030-05-14", EndTime: "11:00",
	}, "")
	require.NoError(t, err)
	require.True(t, res.Available)
	require.Empty(t, res.Conflicts)

	res, err = fx.svc.CheckAvailability(ctx, model.QuoteRequest{
		VehicleUid: testVehicleUid,
		StartDate:  "2030-05-12", StartTime: "10:59",
		EndDate: "2030-05-14", EndTime: "11:00",
	}, "")
	require.NoError(t, err)
	require.False(t, res.Available)
	require.Len(t, res.Conflicts, 1)
}

func TestBookingService_Contract(t *testing.T) {
	ctx := context.Background()
	fx := newBookingFixture(defaultPolicy())

	created, err := fx.svc.Create(ctx, adminReq("2030-05-10", "10:00", "2030-05-12", "10:00"), "admin")
	require.NoError(t, err)

	pdf, err := fx.svc.Contract(ctx, created.BookingUid)
	require.NoError(t, err)
	require.True(t, len(pdf) > 500)
	require.Equal(t, "%PDF", string(pdf[:4]))
}
