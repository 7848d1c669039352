package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pablomagana/recomenzar/internal/dbx"
	"github.com/pablomagana/recomenzar/internal/timex"
)

const alertsKey = "admin_alerts_read"

// AlertStore tracks which daily admin alerts the user has already read.
// The whole map lives under one preference key as JSON, keyed
// "<userId>:<ISO date>". Entries for days other than today are pruned
// lazily whenever the map is read.
type AlertStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewAlertStore(db *sql.DB) *AlertStore {
	return &AlertStore{db: db, now: time.Now}
}

func (s *AlertStore) todayKey(userID string) string {
	return userID + ":" + timex.FormatISODate(s.now())
}

// ReadToday reports whether today's alert is marked read for the user.
// Stale entries are persisted away as a side effect.
func (s *AlertStore) ReadToday(ctx context.Context, userID string) (bool, error) {
	var read bool
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		data, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		pruned := s.prune(data)
		if len(pruned) != len(data) {
			if err := s.save(ctx, tx, pruned); err != nil {
				return err
			}
		}
		read = pruned[s.todayKey(userID)]
		return nil
	})
	return read, err
}

// MarkRead records that the user has seen today's alert.
func (s *AlertStore) MarkRead(ctx context.Context, userID string) error {
	return s.update(ctx, func(data map[string]bool) {
		data[s.todayKey(userID)] = true
	})
}

// MarkUnread clears today's read marker for the user.
func (s *AlertStore) MarkUnread(ctx context.Context, userID string) error {
	return s.update(ctx, func(data map[string]bool) {
		delete(data, s.todayKey(userID))
	})
}

func (s *AlertStore) update(ctx context.Context, mutate func(map[string]bool)) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		data, err := s.load(ctx, tx)
		if err != nil {
			return err
		}
		pruned := s.prune(data)
		mutate(pruned)
		return s.save(ctx, tx, pruned)
	})
}

func (s *AlertStore) load(ctx context.Context, tx dbx.DBTX) (map[string]bool, error) {
	repo := NewSQLiteRepository(tx)
	raw, err := repo.Get(ctx, alertsKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return map[string]bool{}, nil
	}
	var data map[string]bool
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		// Corrupt state starts over rather than wedging the alerts UI.
		return map[string]bool{}, nil
	}
	return data, nil
}

func (s *AlertStore) save(ctx context.Context, tx dbx.DBTX, data map[string]bool) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode alert map: %w", err)
	}
	return NewSQLiteRepository(tx).Set(ctx, alertsKey, string(raw))
}

// prune keeps only entries whose date part is today.
func (s *AlertStore) prune(data map[string]bool) map[string]bool {
	today := timex.FormatISODate(s.now())
	pruned := make(map[string]bool, len(data))
	for key, v := range data {
		parts := strings.Split(key, ":")
		if parts[len(parts)-1] == today {
			pruned[key] = v
		}
	}
	return pruned
}
