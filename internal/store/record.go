package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query, args := builder().
		Select("value").
		From(entsql.Table(recordsTable)).
		Where(entsql.EQ("id", key)).
		Query()

	var value []byte
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Save(ctx context.Context, records ...Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}

	now := time.Now().UTC()
	for _, r := range records {
		query, args := builder().
			Insert(recordsTable).
			Columns("id", "value", "updated_at").
			Values(r.Key, r.Value, now).
			OnConflict(
				entsql.ConflictColumns("id"),
				entsql.ResolveWithNewValues(),
			).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("save %s: %w", r.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	query, qargs := builder().
		Delete(recordsTable).
		Where(entsql.In("id", args...)).
		Query()
	if _, err := s.db.ExecContext(ctx, query, qargs...); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}
