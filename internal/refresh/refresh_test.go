package refresh

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlive/internal/core"
)

// countingLoader records how often the load function runs.
type countingLoader struct {
	calls int
	ds    core.Dataset
	err   error
}

func (l *countingLoader) load(ctx context.Context) (core.Dataset, error) {
	l.calls++
	return l.ds, l.err
}

func fixedDetector(fp string) Detector {
	return DetectorFunc(func() Fingerprint { return Fingerprint(fp) })
}

func sampleDataset() core.Dataset {
	return core.Dataset{Transactions: []core.Transaction{
		{ID: 1, Category: "food", Amount: decimal.NewFromInt(10), Date: core.ParseDate("2024-01-01")},
	}}
}

func TestCache_EqualFingerprintServesMemo(t *testing.T) {
	loader := &countingLoader{ds: sampleDataset()}
	cache := NewCache(fixedDetector("mtime:42"), loader.load)

	first, err := cache.Load(context.Background())
	require.NoError(t, err)

	second, err := cache.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, loader.calls, "second call with equal fingerprint must not fetch")
	assert.Equal(t, first, second)
}

func TestCache_NewFingerprintRefetches(t *testing.T) {
	loader := &countingLoader{ds: sampleDataset()}
	fp := "mtime:1"
	cache := NewCache(DetectorFunc(func() Fingerprint { return Fingerprint(fp) }), loader.load)

	_, err := cache.Load(context.Background())
	require.NoError(t, err)

	fp = "mtime:2"
	_, err = cache.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, loader.calls)
}

func TestCache_InvalidateForcesFetch(t *testing.T) {
	loader := &countingLoader{ds: sampleDataset()}
	cache := NewCache(fixedDetector("mtime:42"), loader.load)

	_, err := cache.Load(context.Background())
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls, "load after invalidation must fetch despite equal fingerprint")

	_, err = cache.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls, "fingerprint memoization resumes after the forced fetch")
}

func TestCache_FailedLoadIsNotMemoized(t *testing.T) {
	loader := &countingLoader{err: errors.New("store unreachable")}
	cache := NewCache(fixedDetector("mtime:42"), loader.load)

	ds, err := cache.Load(context.Background())
	assert.Error(t, err)
	assert.True(t, ds.Empty(), "failed load degrades to an empty dataset")

	loader.err = nil
	loader.ds = sampleDataset()

	ds, err = cache.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, 2, loader.calls, "failure must not poison the cache slot")
}

func TestTimeBucket_StableWithinWindow(t *testing.T) {
	det := TimeBucket(time.Hour)
	first := det.Fingerprint()
	second := det.Fingerprint()
	assert.Equal(t, first, second, "fingerprint must be stable inside one staleness window")
	assert.Contains(t, string(first), "ttl:")
}

func TestTimeBucket_DistinguishesWindows(t *testing.T) {
	narrow := TimeBucket(time.Nanosecond)
	first := narrow.Fingerprint()
	time.Sleep(time.Millisecond)
	second := narrow.Fingerprint()
	assert.NotEqual(t, first, second)
}
