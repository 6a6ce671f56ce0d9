package booking

import (
	"context"
	"fmt"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
)

const (
	numberPrefix = "BK"
	numberWidth  = 3

	// maxAllocateAttempts terminates the uniqueness loop, concurrent
	// allocation must never spin forever.
	maxAllocateAttempts = 999999
)

// FormatNumber renders a sequence value as a display booking number,
// BK003 style. Padding grows past the width, numbers are never reused.
func FormatNumber(seq int64) string {
	return fmt.Sprintf("%s%0*d", numberPrefix, numberWidth, seq)
}

// Source hands out candidate sequence values and answers uniqueness
// probes. The production source is a database sequence, so candidates
// are race-free by construction; the existence probe covers numbers
// that predate the sequence.
type Source interface {
	NextSeq(ctx context.Context) (int64, error)
	NumberExists(ctx context.Context, number string) (bool, error)
}

type Allocator struct {
	src Source
}

func NewAllocator(src Source) *Allocator {
	return &Allocator{src: src}
}

// Allocate returns the next free booking number, drawing candidates from
// the source until an unused one comes up. The retry bound turns a
// pathological source into ErrCapacityExhausted instead of a hang.
func (a *Allocator) Allocate(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAllocateAttempts; attempt++ {
		seq, err := a.src.NextSeq(ctx)
		if err != nil {
			return "", err
		}
		number := FormatNumber(seq)
		exists, err := a.src.NumberExists(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", errs.ErrCapacityExhausted
}
