// Package testsuite runs the same behavioural checks against every high score
// backend.
package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/snake/highscore"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func testStoreMissingSlot(t *testing.T, s highscore.Store) {
	slot := uuid.NewV4().String()

	score, err := s.Load(context.Background(), slot)
	require.Equal(t, highscore.ErrNotFound, errors.Cause(err))
	require.Zero(t, score)
}

func testStoreRoundTrip(t *testing.T, s highscore.Store) {
	slot := uuid.NewV4().String()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, slot, 12))
	score, err := s.Load(ctx, slot)
	require.NoError(t, err)
	require.Equal(t, 12, score)

	// Overwrite, lower values are allowed, the engine decides what to keep.
	require.NoError(t, s.Save(ctx, slot, 3))
	score, err = s.Load(ctx, slot)
	require.NoError(t, err)
	require.Equal(t, 3, score)

	// Zero is a value, not a missing slot.
	require.NoError(t, s.Save(ctx, slot, 0))
	score, err = s.Load(ctx, slot)
	require.NoError(t, err)
	require.Zero(t, score)
}

func testStoreSlotsAreIndependent(t *testing.T, s highscore.Store) {
	a := uuid.NewV4().String()
	b := uuid.NewV4().String()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, a, 5))
	require.NoError(t, s.Save(ctx, b, 9))

	score, err := s.Load(ctx, a)
	require.NoError(t, err)
	require.Equal(t, 5, score)
	score, err = s.Load(ctx, b)
	require.NoError(t, err)
	require.Equal(t, 9, score)
}

func testStoreRejectsNegative(t *testing.T, s highscore.Store) {
	slot := uuid.NewV4().String()
	err := s.Save(context.Background(), slot, -1)
	require.Equal(t, highscore.ErrInvalidScore, errors.Cause(err))

	_, err = s.Load(context.Background(), slot)
	require.Equal(t, highscore.ErrNotFound, errors.Cause(err))
}

func testStoreConcurrentWriters(t *testing.T, s highscore.Store) {
	slot := uuid.NewV4().String()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func(i int) {
			defer wg.Done()
			if err := s.Save(ctx, slot, i); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	score, err := s.Load(ctx, slot)
	require.NoError(t, err)
	require.True(t, score >= 0 && score < 20, "unexpected score %d", score)
}

func testKeeper(t *testing.T, s highscore.Store) {
	k := highscore.NewKeeper(s, uuid.NewV4().String(), 0)
	require.Zero(t, k.LoadHighScore())
	k.SaveHighScore(42)
	require.Equal(t, 42, k.LoadHighScore())
}

// Suite will execute the store testsuite.
func Suite(t *testing.T, s highscore.Store, pretest func()) {
	s = highscore.InstrumentStore(s)
	t.Run("MissingSlot", func(t *testing.T) { pretest(); testStoreMissingSlot(t, s) })
	t.Run("RoundTrip", func(t *testing.T) { pretest(); testStoreRoundTrip(t, s) })
	t.Run("SlotsAreIndependent", func(t *testing.T) { pretest(); testStoreSlotsAreIndependent(t, s) })
	t.Run("RejectsNegative", func(t *testing.T) { pretest(); testStoreRejectsNegative(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
	t.Run("Keeper", func(t *testing.T) { pretest(); testKeeper(t, s) })
}
