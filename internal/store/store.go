// Package store caches the loaded transaction dataset for the process
// lifetime. It replaces the usual hidden module-level cache with an
// explicitly constructed object whose reload is a visible operation.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tdnguyen/finsight/internal/source"
	"github.com/tdnguyen/finsight/internal/transaction"
)

type Store struct {
	src source.Source

	mu         sync.RWMutex
	txs        []transaction.Transaction
	snapshotID uuid.UUID
	loaded     bool
}

func New(src source.Source) *Store {
	return &Store{src: src}
}

// Transactions returns the cached dataset, loading it on first use.
// Callers receive a copy: report pipelines are free to sort and slice
// without coordinating with each other.
func (s *Store) Transactions(ctx context.Context) ([]transaction.Transaction, error) {
	s.mu.RLock()
	if s.loaded {
		out := make([]transaction.Transaction, len(s.txs))
		copy(out, s.txs)
		s.mu.RUnlock()

		return out, nil
	}
	s.mu.RUnlock()

	if _, err := s.Reload(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]transaction.Transaction, len(s.txs))
	copy(out, s.txs)

	return out, nil
}

// Reload fetches a fresh snapshot from the source and swaps it in,
// returning the new snapshot's ID. On failure the previous snapshot
// stays in place.
func (s *Store) Reload(ctx context.Context) (uuid.UUID, error) {
	txs, err := s.src.Load(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("loading snapshot: %w", err)
	}

	id := uuid.New()

	s.mu.Lock()
	s.txs = txs
	s.snapshotID = id
	s.loaded = true
	s.mu.Unlock()

	slog.Info("loaded transaction snapshot", "snapshot_id", id, "rows", len(txs))

	return id, nil
}

// SnapshotID returns the ID of the currently cached snapshot, or
// uuid.Nil before the first load.
func (s *Store) SnapshotID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotID
}
