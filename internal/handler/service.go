package handler

import (
	"context"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/model"
	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthService interface {
	Login(ctx context.Context, req model.LoginRequest) (model.LoginResponse, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Me(ctx context.Context, username string) (model.User, error)
}

type VehicleService interface {
	Create(ctx context.Context, req model.CreateVehicleRequest) (model.Vehicle, error)
	Get(ctx context.Context, vehicleUid string) (model.Vehicle, error)
	List(ctx context.Context, f model.VehicleFilter) (model.ListVehicles, error)
	Update(ctx context.Context, vehicleUid string, req model.UpdateVehicleRequest) (model.Vehicle, error)
	Delete(ctx context.Context, vehicleUid string) error
	UploadImage(ctx context.Context, vehicleUid, filename string, data []byte, isPrimary bool) (model.VehicleImage, error)
	DeleteImage(ctx context.Context, vehicleUid string, imageID int) error
}

type CustomerService interface {
	Create(ctx context.Context, req model.CreateCustomerRequest) (model.Customer, error)
	Get(ctx context.Context, customerUid string) (model.Customer, error)
	List(ctx context.Context, f model.CustomerFilter) (model.ListCustomers, error)
	Update(ctx context.Context, customerUid string, req model.UpdateCustomerRequest) (model.Customer, error)
	Delete(ctx context.Context, customerUid string) error
}

type BookingService interface {
	Quote(ctx context.Context, req model.QuoteRequest) (model.Quote, error)
	CheckAvailability(ctx context.Context, req model.QuoteRequest, excludeUid string) (model.AvailabilityResponse, error)
	Create(ctx context.Context, req model.CreateBookingRequest, actor string) (model.Booking, error)
	CreateFromWebsite(ctx context.Context, req model.WebsiteBookingRequest) (model.Booking, error)
	Get(ctx context.Context, bookingUid string) (model.Booking, error)
	List(ctx context.Context, f model.BookingFilter) (model.ListBookings, error)
	Confirm(ctx context.Context, bookingUid, actor string) (model.Booking, error)
	Pickup(ctx context.Context, bookingUid, actor string) (model.Booking, error)
	Return(ctx context.Context, bookingUid, actor string, req model.ReturnBookingRequest) (model.Booking, error)
	Cancel(ctx context.Context, bookingUid, actor string) (model.Booking, error)
	UpdateDates(ctx context.Context, bookingUid string, req model.UpdateBookingDatesRequest) (model.Booking, error)
	Contract(ctx context.Context, bookingUid string) ([]byte, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (model.DashboardStats, error)
	RecentEvents(ctx context.Context) ([]model.BookingEvent, error)
}

var (
	_ AuthService     = (*service.AuthService)(nil)
	_ VehicleService  = (*service.VehicleService)(nil)
	_ CustomerService = (*service.CustomerService)(nil)
	_ BookingService  = (*service.BookingService)(nil)
	_ StatsService    = (*service.StatsService)(nil)
)
