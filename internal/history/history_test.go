// history_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNoopStoreDiscardsRecords(t *testing.T) {
	store := Noop()
	ctx := context.Background()

	if err := store.Record(ctx, Record{DiceSetName: "standard"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	recs, err := store.Recent(ctx, 20)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("Recent() = %v, want none", recs)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestSqliteStoreRecordsAndRecallsInOrder(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "history.db")
	store, err := NewSqliteStore(dsn)
	if err != nil {
		t.Fatalf("NewSqliteStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	want := []Record{
		{DiceSetName: "standard", Width: 4, Height: 4, Layout: "ABCDEFGHIJKLMNOP", NumWords: 10, Score: 20, Longest: 6, Tries: 3, CreatedAt: base},
		{DiceSetName: "standard", Width: 4, Height: 4, Layout: "PONMLKJIHGFEDCBA", NumWords: 12, Score: 25, Longest: 7, Tries: 1, CreatedAt: base.Add(time.Minute)},
	}
	for _, rec := range want {
		if err := store.Record(ctx, rec); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Recent() returned %d records, want %d", len(got), len(want))
	}
	// Recent orders newest first.
	if diff := cmp.Diff(want[1], got[0], cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("most recent record mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want[0], got[1], cmpopts.EquateApproxTime(time.Second)); diff != "" {
		t.Errorf("second record mismatch (-want +got):\n%s", diff)
	}
}

func TestSqliteStoreRecentDefaultsLimit(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "history.db")
	store, err := NewSqliteStore(dsn)
	if err != nil {
		t.Fatalf("NewSqliteStore: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Record(ctx, Record{DiceSetName: "standard", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	got, err := store.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("Recent(0) = %d records, want 1", len(got))
	}
}
