package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSummaryEmpty(t *testing.T) {
	store := openTestStore(t)

	sum, err := store.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Games)
	assert.Zero(t, sum.Wins)
	assert.Zero(t, sum.Streak)
	assert.Empty(t, sum.Distribution)
}

func TestRecordAndSummary(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	plays := []Play{
		{Word: "crane", Won: true, Guesses: 4, PlayedAt: base},
		{Word: "slate", Won: false, Guesses: 6, PlayedAt: base.Add(time.Hour)},
		{Word: "apple", Won: true, Guesses: 3, PlayedAt: base.Add(2 * time.Hour)},
		{Word: "angle", Won: true, Guesses: 3, Hard: true, PlayedAt: base.Add(3 * time.Hour)},
	}
	for _, p := range plays {
		require.NoError(t, store.RecordPlay(ctx, p))
	}

	sum, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, sum.Games)
	assert.Equal(t, 3, sum.Wins)
	// The loss in the middle resets the streak; two wins follow it.
	assert.Equal(t, 2, sum.Streak)
	assert.Equal(t, map[int]int{3: 2, 4: 1}, sum.Distribution)
}

func TestRecordPlayFillsDefaults(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordPlay(ctx, Play{Word: "crane", Won: true, Guesses: 2}))
	require.NoError(t, store.RecordPlay(ctx, Play{Word: "crane", Won: true, Guesses: 2}))

	sum, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Games, "generated ids must not collide")
}
