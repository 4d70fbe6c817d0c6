package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sliceFetcher(rows []int) func(offset, limit int) ([]int, error) {
	return func(offset, limit int) ([]int, error) {
		if offset >= len(rows) {
			return nil, nil
		}
		end := offset + limit
		if end > len(rows) {
			end = len(rows)
		}
		return rows[offset:end], nil
	}
}

func TestFetchAllPagesDrainsAcrossBatches(t *testing.T) {
	rows := make([]int, 2500)
	for i := range rows {
		rows[i] = i
	}

	calls := 0
	got, err := FetchAllPages(1000, 50_000, func(offset, limit int) ([]int, error) {
		calls++
		return sliceFetcher(rows)(offset, limit)
	})
	require.NoError(t, err)
	assert.Len(t, got, 2500)
	assert.Equal(t, 0, got[0])
	assert.Equal(t, 2499, got[2499])
	// 1000 + 1000 + 500; the short third batch stops iteration.
	assert.Equal(t, 3, calls)
}

func TestFetchAllPagesExactMultiple(t *testing.T) {
	rows := make([]int, 2000)
	got, err := FetchAllPages(1000, 50_000, sliceFetcher(rows))
	require.NoError(t, err)
	// The empty third batch is what signals exhaustion here.
	assert.Len(t, got, 2000)
}

func TestFetchAllPagesErrorDiscardsPartial(t *testing.T) {
	boom := errors.New("boom")
	got, err := FetchAllPages(10, 50_000, func(offset, limit int) ([]int, error) {
		if offset >= 10 {
			return nil, boom
		}
		return make([]int, limit), nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "offset 10")
	assert.Nil(t, got)
}

func TestFetchAllPagesHardCap(t *testing.T) {
	got, err := FetchAllPages(10, 30, func(offset, limit int) ([]int, error) {
		return make([]int, limit), nil // never a short batch
	})
	require.NoError(t, err)
	assert.Len(t, got, 30)
}

func TestFetchAllPagesDefaultsOnBadArgs(t *testing.T) {
	rows := make([]int, 5)
	got, err := FetchAllPages(0, 0, sliceFetcher(rows))
	require.NoError(t, err)
	assert.Len(t, got, 5)
}
