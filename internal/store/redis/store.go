// Package redis stores records and session history in Redis so several
// machines can share one player profile.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/abhisek/mathstar/internal/store"
)

// DefaultPrefix namespaces every key this store writes.
const DefaultPrefix = "mathstar:"

const sessionsKey = "sessions"

// maxAppendRetries bounds optimistic retries when another writer touches
// the session index mid-append.
const maxAppendRetries = 3

// Store is a Redis-backed RecordStore and HistoryRepo.
type Store struct {
	client *redis.Client
	prefix string
}

var (
	_ store.RecordStore = (*Store)(nil)
	_ store.HistoryRepo = (*Store)(nil)
)

// New wraps an existing client. An empty prefix uses DefaultPrefix.
func New(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Open connects with opts and pings the server.
func Open(ctx context.Context, opts *redis.Options, prefix string) (*Store, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, prefix), nil
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	return v, nil
}

// Save writes all records inside one MULTI/EXEC block.
func (s *Store) Save(ctx context.Context, records ...store.Record) error {
	if len(records) == 0 {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, r := range records {
			pipe.Set(ctx, s.key(r.Key), r.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// AppendSession pushes the event onto a capped list, newest first.
// Events already present by session ID are skipped. The ID index is a
// sorted set trimmed alongside the list, and both change in one
// MULTI/EXEC guarded by WATCH on the index.
func (s *Store) AppendSession(ctx context.Context, data store.SessionEventData) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode session event: %w", err)
	}

	idsKey := s.key(sessionsKey + ":ids")
	txf := func(tx *redis.Tx) error {
		err := tx.ZScore(ctx, idsKey, data.SessionID).Err()
		if err == nil {
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			return fmt.Errorf("check session: %w", err)
		}
		seq, err := tx.Incr(ctx, s.key(sessionsKey+":seq")).Result()
		if err != nil {
			return fmt.Errorf("next session seq: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LPush(ctx, s.key(sessionsKey), b)
			pipe.LTrim(ctx, s.key(sessionsKey), 0, store.MaxHistory-1)
			pipe.ZAdd(ctx, idsKey, redis.Z{Score: float64(seq), Member: data.SessionID})
			pipe.ZRemRangeByRank(ctx, idsKey, 0, -store.MaxHistory-1)
			return nil
		})
		return err
	}

	for range maxAppendRetries {
		err = s.client.Watch(ctx, txf, idsKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (s *Store) RecentSessions(ctx context.Context, limit int) ([]store.SessionEventData, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	raw, err := s.client.LRange(ctx, s.key(sessionsKey), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	out := make([]store.SessionEventData, 0, len(raw))
	for _, r := range raw {
		var d store.SessionEventData
		if err := json.Unmarshal([]byte(r), &d); err != nil {
			return nil, fmt.Errorf("decode session event: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Store) key(k string) string {
	return s.prefix + k
}
