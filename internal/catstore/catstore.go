// Package catstore persists aggregation snapshots across runs.
package catstore

import (
	"fmt"
	"sync"

	"github.com/gbb-community/showcase/internal/contract"
	"github.com/gbb-community/showcase/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &SnapshotStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// SnapshotStoreManager holds the process-wide snapshot store.
type SnapshotStoreManager struct {
	sync.Mutex
	store contract.SnapshotStore
}

var _ contract.SnapshotManager = &SnapshotStoreManager{} // Compile-time check

// GetSnapshotStore returns the configured store. It is nil until InitStore
// has run.
func (m *SnapshotStoreManager) GetSnapshotStore() contract.SnapshotStore {
	m.Lock()
	defer m.Unlock()
	return m.store
}

// InitStore initializes the global snapshot store. An empty backend
// disables persistence entirely.
func InitStore(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		if backend == "" {
			return
		}
		store, err := NewSnapshotStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize snapshot store: %w", err)
			return
		}
		Manager.Lock()
		Manager.store = store
		Manager.Unlock()
	})

	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			if err := Manager.store.Close(); err != nil {
				contract.LogWarn("closing snapshot store", err)
			}
			Manager.store = nil
		}
	})
}
