package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, store.Close()) })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestRecordAndRecent(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := Entry{SessionID: uuid.New(), Outcome: OutcomeFiredFast, Hold: 120 * time.Millisecond, Cost: 3}
	second := Entry{SessionID: uuid.New(), Outcome: OutcomeCancelled, Reason: "commit_broken", Hold: 1400 * time.Millisecond}
	require.NoError(t, store.Record(ctx, first))
	require.NoError(t, store.Record(ctx, second))

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, second.SessionID, recent[0].SessionID)
	assert.Equal(t, OutcomeCancelled, recent[0].Outcome)
	assert.Equal(t, "commit_broken", recent[0].Reason)
	assert.Equal(t, 1400*time.Millisecond, recent[0].Hold)
	assert.False(t, recent[0].RecordedAt.IsZero())

	assert.Equal(t, first.SessionID, recent[1].SessionID)
	assert.Equal(t, 3.0, recent[1].Cost)

	limited, err := store.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecordDuplicateIgnored(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	e := Entry{SessionID: uuid.New(), Outcome: OutcomeFiredFull, Hold: time.Second, Cost: 5}

	require.NoError(t, store.Record(ctx, e))
	require.NoError(t, store.Record(ctx, e))

	sum, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
}

func TestRecordValidation(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	assert.Error(t, store.Record(ctx, Entry{SessionID: uuid.New(), Outcome: "exploded"}))
	assert.Error(t, store.Record(ctx, Entry{Outcome: OutcomeFiredFull}))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, store.Record(cancelled, Entry{SessionID: uuid.New(), Outcome: OutcomeFiredFull}), context.Canceled)
}

func TestSummary(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, e := range []Entry{
		{Outcome: OutcomeFiredFull, Hold: 1800 * time.Millisecond, Cost: 5},
		{Outcome: OutcomeFiredFull, Hold: 2200 * time.Millisecond, Cost: 5},
		{Outcome: OutcomeFiredFast, Hold: 100 * time.Millisecond, Cost: 3},
		{Outcome: OutcomeCancelled, Reason: "released_early", Hold: 600 * time.Millisecond},
		{Outcome: OutcomeCancelled, Reason: "released_early", Hold: 700 * time.Millisecond},
		{Outcome: OutcomeCancelled, Reason: "depleted", Hold: 900 * time.Millisecond},
	} {
		e.SessionID = uuid.New()
		require.NoError(t, store.Record(ctx, e))
	}

	sum, err := store.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 2, sum.FiredFull)
	assert.Equal(t, 1, sum.FiredFast)
	assert.Equal(t, 3, sum.Cancelled)
	assert.Equal(t, map[string]int{"released_early": 2, "depleted": 1}, sum.CancelledBy)
	assert.Equal(t, 2*time.Second, sum.AvgFullHold)
	assert.InDelta(t, 13.0, sum.EnergySpent, 1e-9)
}

func TestClosedStore(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())

	ctx := context.Background()
	assert.ErrorIs(t, store.Record(ctx, Entry{SessionID: uuid.New(), Outcome: OutcomeFiredFast}), ErrClosed)
	_, err = store.Summary(ctx)
	assert.ErrorIs(t, err, ErrClosed)
	_, err = store.Recent(ctx, 1)
	assert.ErrorIs(t, err, ErrClosed)
}
