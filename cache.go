// cache.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements a small LRU cache in front of Analyse, keyed
// by dictionary identity and layout string, in the same style as the
// teacher's crossCache in dawg.go.

package boggle

import (
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// AnalyseCache memoizes Analyse results for repeated lookups of the
// same fixed layout. It never affects Generate, whose board-to-board
// search always runs in full.
type AnalyseCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// NewAnalyseCache builds an AnalyseCache holding up to size entries.
func NewAnalyseCache(size int) *AnalyseCache {
	lru, _ := simplelru.NewLRU(size, nil)
	return &AnalyseCache{lru: lru}
}

// Analyse returns the cached word list for (dict, width, height,
// layout) if present, otherwise computes it via Analyse, caches it,
// and returns it.
func (c *AnalyseCache) Analyse(dict *Dictionary, scoreTable ScoreTable, width, height int, layout string) ([]string, error) {
	key := fmt.Sprintf("%p|%d|%d|%s", dict, width, height, layout)

	c.mux.Lock()
	if cached, ok := c.lru.Get(key); ok {
		c.mux.Unlock()
		return cached.([]string), nil
	}
	c.mux.Unlock()

	words, err := Analyse(dict, scoreTable, width, height, layout)
	if err != nil {
		return nil, err
	}

	c.mux.Lock()
	c.lru.Add(key, words)
	c.mux.Unlock()
	return words, nil
}
