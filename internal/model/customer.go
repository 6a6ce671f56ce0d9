package model

import (
	"time"
)

type Customer struct {
	ID            int       `json:"-" db:"id"`
	CustomerUid   string    `json:"customerUid" db:"customer_uid"`
	FirstName     string    `json:"firstName" db:"first_name"`
	LastName      string    `json:"lastName" db:"last_name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	LicenseNumber string    `json:"licenseNumber" db:"license_number"`
	TotalBookings int       `json:"totalBookings" db:"total_bookings"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type CreateCustomerRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,e164"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

type UpdateCustomerRequest struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,e164"`
	LicenseNumber *string `json:"licenseNumber"`
}

type CustomerFilter struct {
	Search   string
	Page     int
	PageSize int
}
