package helper

import "fmt"

// Paged fetch defaults. The store caps rows per query, so every "fetch all"
// site pages in fixed batches until a short batch signals exhaustion. The hard
// cap guards against runaway offsets.
const (
	FetchBatchSize   = 1000
	FetchHardCapRows = 50_000
)

// FetchAllPages drains a paginated source. fetch is called with increasing
// offsets; iteration stops when a batch comes back shorter than limit. Any
// batch error aborts the whole operation and discards partial results.
func FetchAllPages[T any](batchSize, hardCap int, fetch func(offset, limit int) ([]T, error)) ([]T, error) {
	if batchSize <= 0 {
		batchSize = FetchBatchSize
	}
	if hardCap <= 0 {
		hardCap = FetchHardCapRows
	}

	var all []T
	for offset := 0; ; offset += batchSize {
		if offset >= hardCap {
			break
		}
		batch, err := fetch(offset, batchSize)
		if err != nil {
			return nil, fmt.Errorf("paged fetch at offset %d: %w", offset, err)
		}
		all = append(all, batch...)
		if len(batch) < batchSize {
			break
		}
	}
	return all, nil
}
