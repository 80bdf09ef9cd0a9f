package lotto

import "runtime"

// ValidateCount validates a ticket count
func ValidateCount(count int) error {
	if count <= 0 {
		return ErrInvalidCount
	}
	return nil
}

// calculateWorkerCount determines how many shards a batch of totalCount tickets is split into
func calculateWorkerCount(totalCount, maxWorkers int) int {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	// Small shards cost more in goroutine overhead than they save
	workers := totalCount / MinShardSize
	if workers < 1 {
		return 1
	}
	if workers > maxWorkers {
		return maxWorkers
	}
	return workers
}
