package prefs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newAlertStore(t *testing.T, now time.Time) *AlertStore {
	t.Helper()
	s := NewAlertStore(setupDB(t))
	s.now = func() time.Time { return now }
	return s
}

func TestAlertStore_MarkAndRead(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	s := newAlertStore(t, now)
	ctx := context.Background()

	read, err := s.ReadToday(ctx, "u1")
	require.NoError(t, err)
	require.False(t, read)

	require.NoError(t, s.MarkRead(ctx, "u1"))

	read, err = s.ReadToday(ctx, "u1")
	require.NoError(t, err)
	require.True(t, read)

	// other users are unaffected
	read, err = s.ReadToday(ctx, "u2")
	require.NoError(t, err)
	require.False(t, read)

	require.NoError(t, s.MarkUnread(ctx, "u1"))
	read, err = s.ReadToday(ctx, "u1")
	require.NoError(t, err)
	require.False(t, read)
}

func TestAlertStore_PrunesOtherDays(t *testing.T) {
	yesterday := time.Date(2025, time.March, 9, 23, 0, 0, 0, time.Local)
	s := newAlertStore(t, yesterday)
	ctx := context.Background()

	require.NoError(t, s.MarkRead(ctx, "u1"))

	// next day the old marker no longer counts and gets pruned
	s.now = func() time.Time { return yesterday.AddDate(0, 0, 1) }

	read, err := s.ReadToday(ctx, "u1")
	require.NoError(t, err)
	require.False(t, read)

	raw, err := NewSQLiteRepository(s.db).Get(ctx, alertsKey)
	require.NoError(t, err)
	require.JSONEq(t, `{}`, raw)
}

func TestAlertStore_CorruptStateStartsOver(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.Local)
	s := newAlertStore(t, now)
	ctx := context.Background()

	require.NoError(t, NewSQLiteRepository(s.db).Set(ctx, alertsKey, "{not json"))

	read, err := s.ReadToday(ctx, "u1")
	require.NoError(t, err)
	require.False(t, read)

	require.NoError(t, s.MarkRead(ctx, "u1"))
	read, err = s.ReadToday(ctx, "u1")
	require.NoError(t, err)
	require.True(t, read)
}
