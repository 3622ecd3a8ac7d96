package utility

import (
	"sync"

	"github.com/google/uuid"
)

// RunID identifies one analysis or backtest run. IDs are time-ordered so
// runs sort chronologically in logs and reports.
type RunID = uuid.UUID

var (
	runID     RunID
	runIDOnce sync.Once
	runIDMu   sync.RWMutex
)

func GetRunID() RunID {
	// The initial write competes with ResetRunID, so it takes the same lock.
	runIDOnce.Do(func() {
		runIDMu.Lock()
		defer runIDMu.Unlock()
		runID = uuid.Must(uuid.NewV7())
	})

	runIDMu.RLock()
	defer runIDMu.RUnlock()
	return runID
}

func ResetRunID() RunID {
	runIDMu.Lock()
	defer runIDMu.Unlock()

	runID = uuid.Must(uuid.NewV7())
	return runID
}
