package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type BookingSource string

const (
	BookingSourceAdmin   BookingSource = "admin"
	BookingSourceWebsite BookingSource = "website"
)

type Booking struct {
	ID           int             `json:"-" db:"id"`
	BookingUid   string          `json:"bookingUid" db:"booking_uid"`
	Number       string          `json:"number" db:"number"`
	VehicleID    int             `json:"-" db:"vehicle_id"`
	VehicleUid   string          `json:"vehicleUid" db:"vehicle_uid"`
	VehicleName  string          `json:"vehicleName,omitempty" db:"vehicle_name"`
	CustomerID   int             `json:"-" db:"customer_id"`
	CustomerUid  string          `json:"customerUid" db:"customer_uid"`
	CustomerName string          `json:"customerName,omitempty" db:"customer_name"`
	Status       BookingStatus   `json:"status" db:"status"`
	Source       BookingSource   `json:"source" db:"source"`
	StartAt      time.Time       `json:"startAt" db:"start_at"`
	EndAt        time.Time       `json:"endAt" db:"end_at"`
	ChargedDays  int             `json:"chargedDays" db:"charged_days"`
	DailyRate    decimal.Decimal `json:"dailyRate" db:"daily_rate"`
	TotalPrice   decimal.Decimal `json:"totalPrice" db:"total_price"`
	LateFee      decimal.Decimal `json:"lateFee" db:"late_fee"`
	PickupAt     *time.Time      `json:"pickupAt,omitempty" db:"pickup_at"`
	ReturnAt     *time.Time      `json:"returnAt,omitempty" db:"return_at"`
	Notes        string          `json:"notes,omitempty" db:"notes"`
	CreatedBy    string          `json:"createdBy,omitempty" db:"created_by"`
	ConfirmedBy  *string         `json:"confirmedBy,omitempty" db:"confirmed_by"`
	ConfirmedAt  *time.Time      `json:"confirmedAt,omitempty" db:"confirmed_at"`
	CancelledBy  *string         `json:"cancelledBy,omitempty" db:"cancelled_by"`
	CancelledAt  *time.Time      `json:"cancelledAt,omitempty" db:"cancelled_at"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type CreateBookingRequest struct {
	VehicleUid  string `json:"vehicleUid" validate:"required,uuid"`
	CustomerUid string `json:"customerUid" validate:"required,uuid"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" validate:"required,datetime=15:04"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
	EndTime     string `json:"endTime" validate:"required,datetime=15:04"`
	Notes       string `json:"notes"`
}

type WebsiteBookingRequest struct {
	VehicleUid    string `json:"vehicleUid" validate:"required,uuid"`
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,e164"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
	StartDate     string `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"startTime" validate:"required,datetime=15:04"`
	EndDate       string `json:"endDate" validate:"required,datetime=2006-01-02"`
	EndTime       string `json:"endTime" validate:"required,datetime=15:04"`
	Notes         string `json:"notes"`
}

type UpdateBookingDatesRequest struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

type QuoteRequest struct {
	VehicleUid string `json:"vehicleUid" validate:"required,uuid"`
	StartDate  string `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"startTime" validate:"required,datetime=15:04"`
	EndDate    string `json:"endDate" validate:"required,datetime=2006-01-02"`
	EndTime    string `json:"endTime" validate:"required,datetime=15:04"`
}

type Quote struct {
	DurationMinutes int             `json:"durationMinutes"`
	FullDays        int             `json:"fullDays"`
	LatenessMinutes int             `json:"latenessMinutes"`
	ChargedDays     int             `json:"chargedDays"`
	DailyRate       decimal.Decimal `json:"dailyRate"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
}

type ReturnBookingRequest struct {
	Notes string `json:"notes"`
}

type AvailabilityResponse struct {
	Available bool      `json:"available"`
	Conflicts []Booking `json:"conflicts,omitempty"`
}

type ConflictResponse struct {
	Message   string    `json:"message"`
	Conflicts []Booking `json:"conflicts"`
}

type BookingFilter struct {
	VehicleUid  string
	CustomerUid string
	Status      BookingStatus
	From        *time.Time
	To          *time.Time
	Page        int
	PageSize    int
}

const (
	BookingEventConfirmed = "booking.confirmed"
	BookingEventReturned  = "booking.returned"
)

type BookingEvent struct {
	Type        string    `json:"type" db:"type"`
	BookingUid  string    `json:"bookingUid" db:"booking_uid"`
	Number      string    `json:"number" db:"number"`
	VehicleUid  string    `json:"vehicleUid" db:"vehicle_uid"`
	CustomerUid string    `json:"customerUid" db:"customer_uid"`
	OccurredAt  time.Time `json:"occurredAt" db:"occurred_at"`
}
