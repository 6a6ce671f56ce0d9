package repository

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	usersTableName         = `users`
	customersTableName     = `customers`
	vehiclesTableName      = `vehicles`
	vehicleImagesTableName = `vehicle_images`
	bookingsTableName      = `bookings`
	bookingEventsTableName = `booking_events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	User     UserRepository
	Vehicle  VehicleRepository
	Customer CustomerRepository
	Booking  BookingRepository
	Stats    StatsRepository
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*Repository, error) {
	log = log.Named("repo")
	return &Repository{
		User:     newUserRepository(db, log),
		Vehicle:  newVehicleRepository(db, log),
		Customer: newCustomerRepository(db, log),
		Booking:  newBookingRepository(db, log),
		Stats:    newStatsRepository(db, log),
	}, nil
}
