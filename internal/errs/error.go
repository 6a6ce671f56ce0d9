package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInterval    = errors.New("end date/time must be after start date/time")
	ErrConflict           = errors.New("vehicle is already booked for the selected dates")
	ErrStillConflicting   = errors.New("dates conflict with another confirmed booking")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrCapacityExhausted  = errors.New("no available booking numbers")
	ErrNumberTaken        = errors.New("booking number already taken")
	ErrVehicleUnavailable = errors.New("vehicle is not available")
	ErrTooShort           = errors.New("rental period is too short")
	ErrUnsupportedMedia   = errors.New("unsupported image type")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
