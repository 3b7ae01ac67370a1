// Package refresh implements change detection and the single-slot dataset
// cache that backs the dashboard's live reload behavior.
package refresh

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"spendlive/internal/core"
)

// Fingerprint is a cheap comparable proxy for "has the underlying data
// changed". Equal fingerprints mean the memoized dataset is still valid.
type Fingerprint string

// Detector produces the current fingerprint. It is evaluated on every UI
// interaction, so implementations must not touch the data itself.
type Detector interface {
	Fingerprint() Fingerprint
}

// DetectorFunc adapts a function to the Detector interface.
type DetectorFunc func() Fingerprint

func (f DetectorFunc) Fingerprint() Fingerprint { return f() }

// TimeBucket is a Detector for sources with no external change signal. It
// divides wall-clock time into fixed-width windows, bounding staleness by the
// window width.
func TimeBucket(window time.Duration) Detector {
	if window <= 0 {
		window = 5 * time.Second
	}
	return DetectorFunc(func() Fingerprint {
		bucket := time.Now().UnixNano() / int64(window)
		return Fingerprint("ttl:" + strconv.FormatInt(bucket, 10))
	})
}

// LoadFunc fetches and normalizes a fresh dataset. On failure it returns an
// empty dataset plus the error; the caller degrades to "no data".
type LoadFunc func(ctx context.Context) (core.Dataset, error)

// Cache memoizes the last (fingerprint, dataset) pair. Exactly one dataset is
// live per process, so a single slot suffices; there is no eviction beyond
// replacement and explicit invalidation.
type Cache struct {
	detector Detector
	load     LoadFunc

	mu      sync.Mutex
	valid   bool
	last    Fingerprint
	dataset core.Dataset

	group singleflight.Group
}

// NewCache builds a cache around a detector and a load function. Independent
// instances share nothing, so tests can construct their own.
func NewCache(detector Detector, load LoadFunc) *Cache {
	return &Cache{detector: detector, load: load}
}

// Load returns the memoized dataset when the current fingerprint matches the
// last seen one, otherwise fetches a fresh dataset and memoizes it. Failed
// fetches are never memoized; the next call retries from scratch.
func (c *Cache) Load(ctx context.Context) (core.Dataset, error) {
	fp := c.detector.Fingerprint()

	c.mu.Lock()
	if c.valid && c.last == fp {
		ds := c.dataset
		c.mu.Unlock()
		return ds, nil
	}
	c.mu.Unlock()

	// Collapse overlapping reloads for the same fingerprint into one fetch.
	v, err, _ := c.group.Do(string(fp), func() (any, error) {
		ds, err := c.load(ctx)
		if err != nil {
			return core.Dataset{}, err
		}
		c.mu.Lock()
		c.valid = true
		c.last = fp
		c.dataset = ds
		c.mu.Unlock()
		slog.Debug("dataset reloaded", "fingerprint", string(fp), "rows", ds.Len())
		return ds, nil
	})
	if err != nil {
		return core.Dataset{}, err
	}
	return v.(core.Dataset), nil
}

// Invalidate drops the memoized entry so the next Load always fetches,
// regardless of fingerprint equality. This backs the manual "refresh now"
// action.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.dataset = core.Dataset{}
	c.mu.Unlock()
}

// Fingerprint exposes the detector's current value for display.
func (c *Cache) Fingerprint() Fingerprint {
	return c.detector.Fingerprint()
}
