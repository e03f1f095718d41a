// datastore.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the durable generation-history backend on top
// of Cloud Datastore, the teacher's own persistence dependency,
// repurposed here to store generation history instead of game state.

package history

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/datastore"
)

const datastoreKind = "BoggleGenerationRecord"

// datastoreRecord is the Datastore entity shape for Record; kept as a
// plain mirror of the public Record type.
type datastoreRecord struct {
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

type DatastoreStore struct {
	client    *datastore.Client
	namespace string
}

// NewDatastoreStore connects to the given Google Cloud project's
// Datastore, optionally scoped to namespace (pass "" for the default
// namespace).
func NewDatastoreStore(ctx context.Context, projectID, namespace string) (*DatastoreStore, error) {
	client, err := datastore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("history: connect to datastore: %w", err)
	}
	return &DatastoreStore{client: client, namespace: namespace}, nil
}

func (s *DatastoreStore) key() *datastore.Key {
	k := datastore.IncompleteKey(datastoreKind, nil)
	k.Namespace = s.namespace
	return k
}

func (s *DatastoreStore) Record(ctx context.Context, rec Record) error {
	dr := datastoreRecord{
		DiceSetName: rec.DiceSetName,
		Width:       rec.Width,
		Height:      rec.Height,
		Layout:      rec.Layout,
		NumWords:    rec.NumWords,
		Score:       rec.Score,
		Longest:     rec.Longest,
		Tries:       rec.Tries,
		CreatedAt:   rec.CreatedAt,
	}
	_, err := s.client.Put(ctx, s.key(), &dr)
	if err != nil {
		return fmt.Errorf("history: put record: %w", err)
	}
	return nil
}

func (s *DatastoreStore) Recent(ctx context.Context, limit int) ([]Record, error) {
	q := datastore.NewQuery(datastoreKind).Namespace(s.namespace).Order("-CreatedAt").Limit(limit)
	var rows []datastoreRecord
	if _, err := s.client.GetAll(ctx, q, &rows); err != nil {
		return nil, fmt.Errorf("history: query recent: %w", err)
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = Record{
			DiceSetName: r.DiceSetName,
			Width:       r.Width,
			Height:      r.Height,
			Layout:      r.Layout,
			NumWords:    r.NumWords,
			Score:       r.Score,
			Longest:     r.Longest,
			Tries:       r.Tries,
			CreatedAt:   r.CreatedAt,
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *DatastoreStore) Close() error {
	return s.client.Close()
}
