package booking

import (
	"time"

	"github.com/pkg/errors"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Interval is a rental window normalized to a start and end instant.
// Date and time-of-day are combined in one frame, without timezone
// conversion.
type Interval struct {
	StartAt time.Time
	EndAt   time.Time
}

func NewInterval(startDate, startTime, endDate, endTime string) (Interval, error) {
	start, err := combine(startDate, startTime)
	if err != nil {
		return Interval{}, errors.Wrapf(errs.ErrInvalidInterval, "start %s %s", startDate, startTime)
	}
	end, err := combine(endDate, endTime)
	if err != nil {
		return Interval{}, errors.Wrapf(errs.ErrInvalidInterval, "end %s %s", endDate, endTime)
	}
	return NewInstantInterval(start, end)
}

// NewInstantInterval rejects zero-length and inverted windows, they are
// never coerced to a minimum charge.
func NewInstantInterval(start, end time.Time) (Interval, error) {
	if !end.After(start) {
		return Interval{}, errs.ErrInvalidInterval
	}
	return Interval{StartAt: start, EndAt: end}, nil
}

func (iv Interval) Duration() time.Duration {
	return iv.EndAt.Sub(iv.StartAt)
}

func combine(date, clock string) (time.Time, error) {
	return time.Parse(dateLayout+" "+timeLayout, date+" "+clock)
}
