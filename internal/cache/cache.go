// Package cache keeps a bounded, in-memory history of generated reports.
// Nothing is written to disk; history is lost on restart.
package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/scoutedge/scoutedge-api/internal/models"
)

// entry wraps a stored report with expiry and insertion order tracking.
type entry struct {
	report    *models.Report
	expiry    time.Time
	insertIdx int64
}

// ReportHistory stores recently generated reports keyed by report ID.
// Regenerating a report with the same ID replaces the stored copy.
// Thread-safe with sync.RWMutex.
type ReportHistory struct {
	mu         sync.RWMutex
	items      map[string]entry
	ttl        time.Duration
	maxEntries int
	nextIdx    int64
	now        func() time.Time
}

// New creates a ReportHistory with the given TTL and max entry count.
// A maxEntries of zero disables the history.
func New(ttl time.Duration, maxEntries int) *ReportHistory {
	return &ReportHistory{
		items:      make(map[string]entry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Put records a report. Evicts the oldest entry if at capacity.
func (c *ReportHistory) Put(r *models.Report) {
	if r == nil || c.maxEntries <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := r.Metadata.ReportID
	e := entry{
		report:    r,
		expiry:    c.now().Add(c.ttl),
		insertIdx: c.nextIdx,
	}
	c.nextIdx++

	if _, exists := c.items[key]; exists {
		c.items[key] = e
		return
	}

	if len(c.items) >= c.maxEntries {
		c.evictOldest()
	}

	c.items[key] = e
}

// Get returns a stored report if found and not expired.
func (c *ReportHistory) Get(reportID string) (*models.Report, bool) {
	c.mu.RLock()
	e, ok := c.items[reportID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if c.now().After(e.expiry) {
		c.mu.Lock()
		if e2, ok2 := c.items[reportID]; ok2 && c.now().After(e2.expiry) {
			delete(c.items, reportID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return e.report, true
}

// List returns summaries of unexpired reports, most recently stored first.
func (c *ReportHistory) List() []models.ReportSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	live := make([]entry, 0, len(c.items))
	for key, e := range c.items {
		if now.After(e.expiry) {
			delete(c.items, key)
			continue
		}
		live = append(live, e)
	}
	sort.Slice(live, func(i, j int) bool { return live[i].insertIdx > live[j].insertIdx })

	out := make([]models.ReportSummary, len(live))
	for i, e := range live {
		out[i] = e.report.Summary()
	}
	return out
}

// Len returns the number of stored entries, including expired ones not yet purged.
func (c *ReportHistory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// evictOldest removes the entry with the lowest insertIdx. Must be called with mu held.
func (c *ReportHistory) evictOldest() {
	var oldestKey string
	var oldestIdx int64 = -1

	for key, e := range c.items {
		if oldestIdx == -1 || e.insertIdx < oldestIdx {
			oldestIdx = e.insertIdx
			oldestKey = key
		}
	}

	if oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
