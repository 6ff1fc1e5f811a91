// ABOUTME: Redis-backed Store for sharing one data set across devices.
// ABOUTME: Transactions use WATCH/MULTI with buffered writes.

package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects to the server at redisURL and verifies it with a ping.
func OpenRedis(ctx context.Context, redisURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisStore(client), nil
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return val, err
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) Update(ctx context.Context, fn func(tx Txn) error, watch ...string) error {
	for i := 0; i < maxTxnRetries; i++ {
		err := s.client.Watch(ctx, func(tx *redis.Tx) error {
			rt := &redisTxn{ctx: ctx, tx: tx, pending: map[string]*redisOp{}}
			if err := fn(rt); err != nil {
				return err
			}
			if len(rt.ops) == 0 {
				return nil
			}
			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				for _, op := range rt.ops {
					if op.delete {
						pipe.Del(ctx, op.key)
					} else {
						pipe.Set(ctx, op.key, op.value, 0)
					}
				}
				return nil
			})
			return err
		}, watch...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTxnConflict
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

type redisOp struct {
	key    string
	value  []byte
	delete bool
}

// redisTxn buffers writes until the MULTI block; reads see pending writes.
type redisTxn struct {
	ctx     context.Context
	tx      *redis.Tx
	ops     []*redisOp
	pending map[string]*redisOp
}

func (t *redisTxn) Get(key string) ([]byte, error) {
	if op, ok := t.pending[key]; ok {
		if op.delete {
			return nil, ErrKeyNotFound
		}
		return append([]byte(nil), op.value...), nil
	}
	val, err := t.tx.Get(t.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	return val, err
}

func (t *redisTxn) Set(key string, value []byte) error {
	t.record(&redisOp{key: key, value: append([]byte(nil), value...)})
	return nil
}

func (t *redisTxn) Delete(key string) error {
	t.record(&redisOp{key: key, delete: true})
	return nil
}

func (t *redisTxn) record(op *redisOp) {
	t.ops = append(t.ops, op)
	t.pending[op.key] = op
}
