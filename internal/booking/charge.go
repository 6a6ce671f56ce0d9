package booking

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	minutesPerDay = 24 * 60

	// lateGraceMinutes is a pricing rule: a return running 90 minutes or
	// more past a full-day boundary bills one additional day, anything
	// under is forgiven. The threshold is inclusive.
	lateGraceMinutes = 90
)

// Charge is the billing breakdown of a rental window.
type Charge struct {
	DurationMinutes int `json:"durationMinutes"`
	FullDays        int `json:"fullDays"`
	LatenessMinutes int `json:"latenessMinutes"`
	ChargedDays     int `json:"chargedDays"`
}

// CalculateCharge combines the four date/time fields and derives the
// billing breakdown. Malformed input or a non-positive window yields
// ErrInvalidInterval.
func CalculateCharge(startDate, startTime, endDate, endTime string) (Charge, error) {
	iv, err := NewInterval(startDate, startTime, endDate, endTime)
	if err != nil {
		return Charge{}, err
	}
	return iv.Charge(), nil
}

func (iv Interval) Charge() Charge {
	return chargeFor(iv.Duration())
}

// SettleCharge recomputes the charge for the actual rental window, the
// scheduled pickup instant through the recorded return. A return before
// the scheduled pickup counts as zero duration.
func SettleCharge(start, returnedAt time.Time) Charge {
	d := returnedAt.Sub(start)
	if d < 0 {
		d = 0
	}
	return chargeFor(d)
}

func chargeFor(d time.Duration) Charge {
	minutes := int(d / time.Minute)
	c := Charge{
		DurationMinutes: minutes,
		FullDays:        minutes / minutesPerDay,
	}
	c.LatenessMinutes = minutes - c.FullDays*minutesPerDay
	c.ChargedDays = c.FullDays
	if c.LatenessMinutes >= lateGraceMinutes {
		c.ChargedDays++
	}
	if c.ChargedDays < 1 {
		c.ChargedDays = 1
	}
	return c
}

func (c Charge) Total(dailyRate decimal.Decimal) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(c.ChargedDays)))
}
