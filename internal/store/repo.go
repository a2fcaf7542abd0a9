package store

import (
	"context"
	"errors"
	"time"
)

// Record keys used by the game.
const (
	KeyPlayerProgress  = "player_progress"
	KeyDailyMissions   = "daily_missions"
	KeyLastMissionDate = "last_mission_date"
)

// MaxHistory is the number of session events a backend keeps.
const MaxHistory = 500

// ErrNotFound is returned by Load when no record exists for a key.
var ErrNotFound = errors.New("record not found")

// Record is a named blob replaced as a whole on every save.
type Record struct {
	Key   string
	Value []byte
}

// RecordStore is the load/save contract the game persists through.
type RecordStore interface {
	// Load returns the stored value for key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces all given records atomically: either every record is
	// written or none is.
	Save(ctx context.Context, records ...Record) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	Close() error
}

// SessionEventData captures one finished session for the history log.
type SessionEventData struct {
	SessionID string    `json:"session_id"`
	Mode      string    `json:"mode"`
	Questions int       `json:"questions"`
	Correct   int       `json:"correct"`
	Score     int       `json:"score"`
	Stars     int       `json:"stars"`
	Coins     int       `json:"coins"`
	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// DurationSecs returns the session length in whole seconds.
func (d SessionEventData) DurationSecs() int {
	return int(d.EndedAt.Sub(d.StartedAt).Seconds())
}

// HistoryRepo keeps a log of finished sessions.
type HistoryRepo interface {
	// AppendSession records a finished session.
	AppendSession(ctx context.Context, data SessionEventData) error

	// RecentSessions returns up to limit sessions, newest first. A limit of
	// 0 returns everything kept.
	RecentSessions(ctx context.Context, limit int) ([]SessionEventData, error)
}
