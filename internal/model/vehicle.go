package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusRetired     VehicleStatus = "retired"
)

type Vehicle struct {
	ID           int             `json:"-" db:"id"`
	VehicleUid   string          `json:"vehicleUid" db:"vehicle_uid"`
	Make         string          `json:"make" db:"make"`
	Model        string          `json:"model" db:"model"`
	Year         int             `json:"year" db:"year"`
	PlateNumber  string          `json:"plateNumber" db:"plate_number"`
	Category     string          `json:"category" db:"category"`
	Transmission string          `json:"transmission" db:"transmission"`
	Seats        int             `json:"seats" db:"seats"`
	DailyRate    decimal.Decimal `json:"dailyRate" db:"daily_rate"`
	Status       VehicleStatus   `json:"status" db:"status"`
	IsAvailable  bool            `json:"isAvailable" db:"is_available"`
	TotalRentals int             `json:"totalRentals" db:"total_rentals"`
	Description  string          `json:"description,omitempty" db:"description"`
	Images       []VehicleImage  `json:"images,omitempty"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type VehicleImage struct {
	ID        int       `json:"id" db:"id"`
	VehicleID int       `json:"-" db:"vehicle_id"`
	Path      string    `json:"path" db:"path"`
	IsPrimary bool      `json:"isPrimary" db:"is_primary"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateVehicleRequest struct {
	Make         string          `json:"make" validate:"required"`
	Model        string          `json:"model" validate:"required"`
	Year         int             `json:"year" validate:"required,gte=1980,lte=2100"`
	PlateNumber  string          `json:"plateNumber" validate:"required"`
	Category     string          `json:"category" validate:"required"`
	Transmission string          `json:"transmission" validate:"required,oneof=manual automatic"`
	Seats        int             `json:"seats" validate:"required,gte=1,lte=9"`
	DailyRate    decimal.Decimal `json:"dailyRate" validate:"required"`
	Description  string          `json:"description"`
}

type UpdateVehicleRequest struct {
	Make         *string          `json:"make"`
	Model        *string          `json:"model"`
	Year         *int             `json:"year" validate:"omitempty,gte=1980,lte=2100"`
	PlateNumber  *string          `json:"plateNumber"`
	Category     *string          `json:"category"`
	Transmission *string          `json:"transmission" validate:"omitempty,oneof=manual automatic"`
	Seats        *int             `json:"seats" validate:"omitempty,gte=1,lte=9"`
	DailyRate    *decimal.Decimal `json:"dailyRate"`
	Status       *VehicleStatus   `json:"status" validate:"omitempty,oneof=active maintenance retired"`
	Description  *string          `json:"description"`
}

type VehicleFilter struct {
	Category      string
	Transmission  string
	Status        VehicleStatus
	OnlyAvailable bool
	Search        string
	Page          int
	PageSize      int
}
