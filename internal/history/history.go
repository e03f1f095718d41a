// history.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file defines the Store interface: a pluggable persistence
// layer recording each accepted Generate call, independent of the
// search/generation core. A nil store is a valid no-op; history is
// optional.

package history

import (
	"context"
	"time"
)

// Record is one row of generation history.
type Record struct {
	DiceSetName string
	Width       int
	Height      int
	Layout      string
	NumWords    int
	Score       int
	Longest     int
	Tries       int
	CreatedAt   time.Time
}

// Store persists and retrieves generation history. Implementations
// must be safe for concurrent use.
type Store interface {
	Record(ctx context.Context, rec Record) error
	Recent(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// noopStore discards every record; it backs HISTORY_BACKEND=none.
type noopStore struct{}

func (noopStore) Record(ctx context.Context, rec Record) error { return nil }
func (noopStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	return nil, nil
}
func (noopStore) Close() error { return nil }

// Noop returns a Store that discards every record.
func Noop() Store {
	return noopStore{}
}
