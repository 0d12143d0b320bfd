package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SAP-F-2025/lingua-service/internal/repositories"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "quiz:session:"

type SessionRedis struct {
	client *redis.Client
}

func NewSessionRedis(client *redis.Client) repositories.SessionRepository {
	return &SessionRedis{client: client}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

// Save writes the record inside a WATCH transaction so that a concurrent
// writer makes it fail with ErrVersionConflict.
func (r *SessionRedis) Save(ctx context.Context, record *repositories.QuizSessionRecord, ttl time.Duration) error {
	id := record.ID()
	key := sessionKey(id)

	next := *record
	next.Version++
	data, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", id, err)
	}

	txf := func(tx *redis.Tx) error {
		var stored int64
		raw, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			var current struct {
				Version int64 `json:"version"`
			}
			if err := json.Unmarshal(raw, &current); err != nil {
				return fmt.Errorf("failed to decode stored session: %w", err)
			}
			stored = current.Version
		}
		if stored != record.Version {
			return repositories.ErrVersionConflict
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, key)
	if errors.Is(err, redis.TxFailedErr) || errors.Is(err, repositories.ErrVersionConflict) {
		return fmt.Errorf("session %s: %w", id, repositories.ErrVersionConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}

	record.Version = next.Version
	return nil
}

func (r *SessionRedis) Get(ctx context.Context, id string) (*repositories.QuizSessionRecord, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var record repositories.QuizSessionRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", id, err)
	}
	return &record, nil
}

func (r *SessionRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
