package digest

import "github.com/briefwire/briefwire/pkg/domain"

// PartitionPool splits the pool into contiguous fixed-capacity batches,
// preserving original order. The last batch may be smaller.
func PartitionPool(pool []domain.CandidateDocument, capacity int) []domain.Batch {
	if len(pool) == 0 || capacity < 1 {
		return nil
	}

	total := (len(pool) + capacity - 1) / capacity
	batches := make([]domain.Batch, 0, total)

	for i := 0; i < len(pool); i += capacity {
		end := i + capacity
		if end > len(pool) {
			end = len(pool)
		}
		batches = append(batches, domain.Batch{
			Documents: pool[i:end],
			Index:     len(batches),
			Total:     total,
		})
	}

	return batches
}
