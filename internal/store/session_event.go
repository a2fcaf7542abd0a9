package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (s *Store) AppendSession(ctx context.Context, data SessionEventData) error {
	query, args := builder().
		Insert(sessionEventsTable).
		Columns("session_id", "mode", "questions", "correct", "score", "stars", "coins", "started_at", "ended_at").
		Values(data.SessionID, data.Mode, data.Questions, data.Correct, data.Score, data.Stars, data.Coins,
			data.StartedAt.UTC(), data.EndedAt.UTC()).
		OnConflict(entsql.DoNothing()).
		Query()

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}

	return s.pruneSessions(ctx)
}

func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionEventData, error) {
	sel := builder().
		Select("session_id", "mode", "questions", "correct", "score", "stars", "coins", "started_at", "ended_at").
		From(entsql.Table(sessionEventsTable)).
		OrderBy(entsql.Desc("ended_at"), entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}
	defer rows.Close()

	var records []SessionEventData
	for rows.Next() {
		var d SessionEventData
		if err := rows.Scan(&d.SessionID, &d.Mode, &d.Questions, &d.Correct, &d.Score,
			&d.Stars, &d.Coins, &d.StartedAt, &d.EndedAt); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		records = append(records, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session events: %w", err)
	}
	return records, nil
}

// pruneSessions deletes all but the MaxHistory most recent session events.
func (s *Store) pruneSessions(ctx context.Context) error {
	keep := builder().
		Select("id").
		From(entsql.Table(sessionEventsTable)).
		OrderBy(entsql.Desc("id")).
		Limit(MaxHistory)

	query, args := builder().
		Delete(sessionEventsTable).
		Where(entsql.NotIn("id", keep)).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune session events: %w", err)
	}
	return nil
}
