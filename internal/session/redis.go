package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "aura:session:"
	maxTxAttempts = 8
)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return rdb, nil
}

// RedisStore keeps JSON-encoded sessions under aura:session:<id>. Updates
// use WATCH/MULTI and retry on conflicts. Every write refreshes the TTL.
type RedisStore struct {
	rdb redis.UniversalClient
	ttl time.Duration
	now func() time.Time
}

func NewRedisStore(rdb redis.UniversalClient, opts Options) *RedisStore {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &RedisStore{rdb: rdb, ttl: ttl, now: now}
}

func redisKey(id string) string {
	return keyPrefix + id
}

func (s *RedisStore) Create(ctx context.Context, st State) error {
	st.UpdatedAt = s.now()
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ok, err := s.rdb.SetNX(ctx, redisKey(st.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("redis setnx: %w", err)
	}
	if !ok {
		return ErrExists
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (State, error) {
	data, err := s.rdb.Get(ctx, redisKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("redis get: %w", err)
	}
	return decodeState(data)
}

func (s *RedisStore) Update(ctx context.Context, id string, fn func(*State) error) (State, error) {
	key := redisKey(id)

	var (
		out   State
		fnErr error
	)
	txf := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		cur, err := decodeState(data)
		if err != nil {
			return err
		}

		next := cur.clone()
		if fn != nil {
			if err := fn(&next); err != nil {
				out, fnErr = cur, err
				return nil
			}
		}
		next.ID = id
		next.UpdatedAt = s.now()

		encoded, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("encode session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		out, fnErr = next, nil
		return nil
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := s.rdb.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if errors.Is(err, ErrNotFound) {
			return State{}, ErrNotFound
		}
		if err != nil {
			return State{}, fmt.Errorf("redis update: %w", err)
		}
		return out, fnErr
	}
	return State{}, fmt.Errorf("redis update %s: %w", id, redis.TxFailedErr)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, redisKey(id)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func decodeState(data []byte) (State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("decode session: %w", err)
	}
	return st, nil
}
