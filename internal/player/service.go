// Package player owns the live player state: progress, today's missions and
// the bookkeeping that folds finished sessions into them.
package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/abhisek/mathstar/internal/missions"
	"github.com/abhisek/mathstar/internal/problemgen"
	"github.com/abhisek/mathstar/internal/progress"
	"github.com/abhisek/mathstar/internal/session"
	"github.com/abhisek/mathstar/internal/store"
)

// ErrAlreadyApplied is returned when the same session is finished twice.
var ErrAlreadyApplied = errors.New("session already applied")

// Option configures a Service.
type Option func(*Service)

// WithHistory records every finished session in h.
func WithHistory(h store.HistoryRepo) Option {
	return func(s *Service) { s.history = h }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand sets the random source for questions and missions.
func WithRand(rng *rand.Rand) Option {
	return func(s *Service) { s.rng = rng }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// Service holds the in-memory player state and persists it through a
// RecordStore. In-memory state is authoritative; persistence failures are
// logged and never lose what the player earned this run.
type Service struct {
	records store.RecordStore
	history store.HistoryRepo
	now     func() time.Time
	rng     *rand.Rand
	log     *slog.Logger
	gen     *problemgen.Generator

	mu          sync.Mutex
	progress    progress.PlayerProgress
	missions    []missions.Mission
	missionDate string
	applied     map[string]bool
}

// NewService creates a Service with default state. Call Load to read the
// stored state.
func NewService(records store.RecordStore, opts ...Option) *Service {
	s := &Service{
		records:  records,
		now:      time.Now,
		log:      slog.New(slog.DiscardHandler),
		progress: progress.Default(),
		applied:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gen = problemgen.New(s.rng)
	s.rng = s.gen.Rand()
	return s
}

// Load reads progress and missions from the store. Missing or malformed
// records fall back to defaults; missions are regenerated when the stored
// set is not from today.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress = s.loadProgress(ctx)
	s.missions, s.missionDate = s.loadMissions(ctx)
	s.rolloverLocked(ctx, s.now())
}

func (s *Service) loadProgress(ctx context.Context) progress.PlayerProgress {
	raw, err := s.records.Load(ctx, store.KeyPlayerProgress)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return progress.Default()
	case err != nil:
		s.log.Warn("load progress failed, using defaults", "error", err)
		return progress.Default()
	}

	var p progress.PlayerProgress
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.Warn("malformed progress record, using defaults", "error", err)
		return progress.Default()
	}
	return p
}

// loadMissions returns the stored missions and their date marker. Any
// problem yields an empty date, which forces regeneration.
func (s *Service) loadMissions(ctx context.Context) ([]missions.Mission, string) {
	date, err := s.records.Load(ctx, store.KeyLastMissionDate)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("load mission date failed", "error", err)
		}
		return nil, ""
	}

	raw, err := s.records.Load(ctx, store.KeyDailyMissions)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Warn("load missions failed", "error", err)
		}
		return nil, ""
	}

	var ms []missions.Mission
	if err := json.Unmarshal(raw, &ms); err != nil || len(ms) == 0 {
		s.log.Warn("malformed missions record, regenerating", "error", err)
		return nil, ""
	}
	return ms, string(date)
}

// rolloverLocked replaces the missions when they are not from today.
func (s *Service) rolloverLocked(ctx context.Context, now time.Time) {
	today := progress.DateKey(now)
	if s.missionDate == today && len(s.missions) > 0 {
		return
	}

	s.missions = missions.Generate(s.rng, now)
	s.missionDate = today
	s.log.Info("generated daily missions", "date", today, "count", len(s.missions))

	recs, err := s.missionRecords()
	if err == nil {
		err = s.records.Save(ctx, recs...)
	}
	if err != nil {
		s.log.Error("save missions failed", "error", err)
	}
}

func (s *Service) missionRecords() ([]store.Record, error) {
	b, err := json.Marshal(s.missions)
	if err != nil {
		return nil, fmt.Errorf("encode missions: %w", err)
	}
	return []store.Record{
		{Key: store.KeyDailyMissions, Value: b},
		{Key: store.KeyLastMissionDate, Value: []byte(s.missionDate)},
	}, nil
}

// Progress returns a copy of the current progress.
func (s *Service) Progress() progress.PlayerProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress.Clone()
}

// Missions returns a copy of today's missions.
func (s *Service) Missions() []missions.Mission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return missions.Clone(s.missions)
}

// StartSession builds a new session for the named mode. Unknown names
// start a learning session.
func (s *Service) StartSession(mode string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return session.New(s.gen, session.ParseMode(mode), s.now())
}

// FinishSession applies a finished session exactly once and persists the
// new state. The returned Outcome is valid even when saving failed.
func (s *Service) FinishSession(ctx context.Context, sess session.Session) (progress.Outcome, error) {
	r := sess.Result()
	if !r.Finished {
		return progress.Outcome{}, progress.ErrSessionNotFinished
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applied[r.SessionID] {
		return progress.Outcome{}, ErrAlreadyApplied
	}

	now := s.now()
	s.rolloverLocked(ctx, now)

	out, err := progress.ApplySessionResult(s.progress, s.missions, r, now)
	if err != nil {
		return progress.Outcome{}, err
	}
	s.progress = out.Progress
	s.missions = out.Missions
	s.applied[r.SessionID] = true

	s.log.Info("session applied",
		"session", r.SessionID,
		"mode", string(r.Mode),
		"correct", r.Correct,
		"total", r.Total,
		"stars", out.Rewards.Stars,
		"coins", out.Rewards.Coins,
		"missions_completed", len(out.CompletedMissions),
	)

	if err := s.saveLocked(ctx); err != nil {
		s.log.Error("save progress failed", "session", r.SessionID, "error", err)
	}
	s.appendHistory(ctx, r, out.Rewards)

	return out, nil
}

func (s *Service) saveLocked(ctx context.Context) error {
	b, err := json.Marshal(s.progress)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	recs, err := s.missionRecords()
	if err != nil {
		return err
	}
	recs = append(recs, store.Record{Key: store.KeyPlayerProgress, Value: b})
	return s.records.Save(ctx, recs...)
}

func (s *Service) appendHistory(ctx context.Context, r session.Result, rw progress.Rewards) {
	if s.history == nil {
		return
	}
	err := s.history.AppendSession(ctx, store.SessionEventData{
		SessionID: r.SessionID,
		Mode:      string(r.Mode),
		Questions: r.Total,
		Correct:   r.Correct,
		Score:     r.Score,
		Stars:     rw.Stars,
		Coins:     rw.Coins,
		StartedAt: r.StartTime,
		EndedAt:   r.EndTime,
	})
	if err != nil {
		s.log.Warn("append session history failed", "session", r.SessionID, "error", err)
	}
}

// RecentSessions returns the newest finished sessions, or nil when no
// history is configured.
func (s *Service) RecentSessions(ctx context.Context, limit int) ([]store.SessionEventData, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.RecentSessions(ctx, limit)
}

// Reset wipes the player's progress and starts a fresh set of missions.
func (s *Service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.records.Delete(ctx, store.KeyPlayerProgress, store.KeyDailyMissions, store.KeyLastMissionDate); err != nil {
		return fmt.Errorf("reset records: %w", err)
	}

	s.progress = progress.Default()
	s.missions = nil
	s.missionDate = ""
	s.applied = make(map[string]bool)
	s.rolloverLocked(ctx, s.now())
	s.log.Info("player progress reset")
	return nil
}
