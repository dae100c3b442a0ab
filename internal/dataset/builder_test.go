package dataset

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlinaYaremko/lab-3-ad/internal/logger"
	"github.com/AlinaYaremko/lab-3-ad/internal/observability"
	"github.com/AlinaYaremko/lab-3-ad/internal/storage"
)

func newTestBuilder(t *testing.T) (*Builder, storage.RawStore) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	log := logger.New(logger.Config{Level: logger.ERROR, Format: logger.TextFormat, Output: io.Discard})
	return NewBuilder(store, observability.NewMetricsForTesting(), log), store
}

func rawFileContent(rows string) []byte {
	return []byte("year,week,SMN,SMT,VCI,TCI,VHI,\n" + rows + "</pre></tt>")
}

func storeRaw(t *testing.T, store storage.RawStore, localID int, at time.Time, rows string) {
	t.Helper()
	name := storage.RawFileName(localID, at)
	require.NoError(t, store.StoreFile(context.Background(), name, rawFileContent(rows)))
}

func TestBuildEmptyStore(t *testing.T) {
	builder, _ := newTestBuilder(t)

	ds, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.True(t, ds.Empty())
	assert.Equal(t, 0, ds.Sources)
}

func TestBuildReconcilesAndExcludes(t *testing.T) {
	builder, store := newTestBuilder(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Local 5 remaps to canonical 3, local 23 to canonical 6.
	storeRaw(t, store, 5, now,
		"1982,1,0.05,250.0,40.0,41.0,42.0,\n1982,2,0.05,250.0,40.0,41.0,-1.0,\n")
	storeRaw(t, store, 23, now,
		"1982,1,0.06,251.0,44.0,45.0,46.0,\n")
	// Local 9 remaps to canonical 20, which is excluded entirely.
	storeRaw(t, store, 9, now,
		"1982,1,0.07,252.0,47.0,48.0,49.0,\n")
	// Local 12 has no remap entry, passes through to 12, also excluded.
	storeRaw(t, store, 12, now,
		"1982,1,0.08,253.0,50.0,51.0,52.0,\n")

	ds, err := builder.Build(context.Background())
	require.NoError(t, err)

	regionIDs := map[int]bool{}
	for _, rec := range ds.Records {
		regionIDs[rec.RegionID] = true
		assert.NotEqual(t, float64(-1), rec.VHI)
	}
	assert.Equal(t, map[int]bool{3: true, 6: true}, regionIDs)
	assert.Equal(t, 4, ds.Sources, "excluded files still parse successfully")
}

func TestBuildDeduplicatesAcrossDownloads(t *testing.T) {
	builder, store := newTestBuilder(t)

	rows := "1982,1,0.05,250.0,40.0,41.0,42.0,\n1982,2,0.05,250.0,40.0,41.0,43.0,\n"
	// The same region downloaded twice lands under two timestamps.
	storeRaw(t, store, 5, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), rows)
	storeRaw(t, store, 5, time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC), rows)

	ds, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Records, 2, "re-downloaded files must not duplicate records")
}

func TestBuildDeduplicatesConvergingLocals(t *testing.T) {
	builder, store := newTestBuilder(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// Locals 23 and 26 both reconcile to canonical 6.
	rows := "1982,1,0.06,251.0,44.0,45.0,46.0,\n"
	storeRaw(t, store, 23, now, rows)
	storeRaw(t, store, 26, now, rows)

	ds, err := builder.Build(context.Background())
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)
	assert.Equal(t, 6, ds.Records[0].RegionID)
}

func TestBuildSkipsMalformedFiles(t *testing.T) {
	builder, store := newTestBuilder(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	storeRaw(t, store, 5, now, "1982,1,0.05,250.0,40.0,41.0,42.0,\n")
	require.NoError(t, store.StoreFile(context.Background(),
		storage.RawFileName(23, now), []byte("year,week\ntotal,garbage\n</pre></tt>")))

	ds, err := builder.Build(context.Background())
	require.NoError(t, err, "a malformed file must not abort the build")
	require.Len(t, ds.Records, 1)
	assert.Equal(t, 3, ds.Records[0].RegionID)
	assert.Equal(t, 1, ds.Sources)
}
