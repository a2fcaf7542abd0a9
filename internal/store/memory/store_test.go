package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathstar/internal/store"
)

func TestLoadSaveDelete(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Load(ctx, store.KeyPlayerProgress)
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Save(ctx,
		store.Record{Key: store.KeyPlayerProgress, Value: []byte("p")},
		store.Record{Key: store.KeyDailyMissions, Value: []byte("m")},
	))

	got, err := s.Load(ctx, store.KeyPlayerProgress)
	require.NoError(t, err)
	assert.Equal(t, "p", string(got))

	require.NoError(t, s.Delete(ctx, store.KeyPlayerProgress))
	_, err = s.Load(ctx, store.KeyPlayerProgress)
	assert.ErrorIs(t, err, store.ErrNotFound)

	got, err = s.Load(ctx, store.KeyDailyMissions)
	require.NoError(t, err)
	assert.Equal(t, "m", string(got))
}

func TestValuesAreCopied(t *testing.T) {
	s := New()
	ctx := context.Background()

	v := []byte("abc")
	require.NoError(t, s.Save(ctx, store.Record{Key: "k", Value: v}))
	v[0] = 'x'

	got, err := s.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	got[0] = 'y'
	again, _ := s.Load(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestSaveCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.Error(t, s.Save(ctx, store.Record{Key: "k", Value: []byte("v")}))
	_, err := s.Load(context.Background(), "k")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHistory(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	for i := range 3 {
		require.NoError(t, s.AppendSession(ctx, store.SessionEventData{
			SessionID: fmt.Sprintf("s%d", i),
			EndedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, s.AppendSession(ctx, store.SessionEventData{SessionID: "s1"}))

	all, err := s.RecentSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "s2", all[0].SessionID)

	two, err := s.RecentSessions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, two, 2)
}

func TestHistoryCapped(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i := range store.MaxHistory + 5 {
		require.NoError(t, s.AppendSession(ctx, store.SessionEventData{SessionID: fmt.Sprintf("s%d", i)}))
	}

	all, err := s.RecentSessions(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, store.MaxHistory)
	assert.Equal(t, fmt.Sprintf("s%d", store.MaxHistory+4), all[0].SessionID)
}
