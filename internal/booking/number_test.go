package booking

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/YAHYA280/RMQ-BackEnd-sub000/internal/errs"
)

type fakeSource struct {
	next   int64
	taken  map[string]bool
	seqErr error
}

func (f *fakeSource) NextSeq(_ context.Context) (int64, error) {
	if f.seqErr != nil {
		return 0, f.seqErr
	}
	f.next++
	return f.next, nil
}

func (f *fakeSource) NumberExists(_ context.Context, number string) (bool, error) {
	return f.taken[number], nil
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "BK001"},
		{42, "BK042"},
		{999, "BK999"},
		{1000, "BK1000"},
		{123456, "BK123456"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatNumber(tt.seq))
	}
}

func TestAllocator_SkipsTakenNumbers(t *testing.T) {
	src := &fakeSource{taken: map[string]bool{"BK001": true, "BK002": true}}
	a := NewAllocator(src)

	number, err := a.Allocate(context.Background())
	require.NoError(t, err)
	require.Equal(t, "BK003", number)
}

func TestAllocator_NeverDuplicates(t *testing.T) {
	src := &fakeSource{taken: map[string]bool{}}
	a := NewAllocator(src)

	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		number, err := a.Allocate(context.Background())
		require.NoError(t, err)
		require.False(t, seen[number], "duplicate %s at allocation %d", number, i)
		seen[number] = true
		src.taken[number] = true
	}
	require.Len(t, seen, 10000)
}

func TestAllocator_CapacityExhausted(t *testing.T) {
	a := NewAllocator(allTakenSource{})

	_, err := a.Allocate(context.Background())
	require.ErrorIs(t, err, errs.ErrCapacityExhausted)
}

func TestAllocator_SourceError(t *testing.T) {
	wantErr := errors.New("sequence unavailable")
	a := NewAllocator(&fakeSource{seqErr: wantErr})

	_, err := a.Allocate(context.Background())
	require.ErrorIs(t, err, wantErr)
}

type allTakenSource struct{}

func (allTakenSource) NextSeq(_ context.Context) (int64, error) {
	return 1, nil
}

func (allTakenSource) NumberExists(_ context.Context, _ string) (bool, error) {
	return true, nil
}
