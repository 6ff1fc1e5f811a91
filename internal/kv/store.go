// ABOUTME: Key-value store abstraction backing the storage gateway.
// ABOUTME: Defines Store/Txn contracts and opens the configured backend.

package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

const (
	BackendBadger = "badger"
	BackendRedis  = "redis"

	// maxTxnRetries bounds retries of a transaction that lost a conflict.
	maxTxnRetries = 3
)

var (
	ErrKeyNotFound    = errors.New("key not found")
	ErrTxnConflict    = errors.New("transaction conflict")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Txn is the view of the store inside an Update. Reads observe the
// transaction's own pending writes.
type Txn interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Store is a durable key-value store. Get returns ErrKeyNotFound for absent
// keys; Delete of an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// Update runs fn in a read-write transaction and commits its writes
	// atomically when fn returns nil. watch lists the keys fn reads; backends
	// with optimistic locking use it to detect concurrent writers.
	Update(ctx context.Context, fn func(tx Txn) error, watch ...string) error

	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend  string
	Path     string // badger directory; empty means in-memory
	RedisURL string
	Logger   *log.Logger
}

// Open opens the backend named in opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		s   Store
		err error
	)
	switch opts.Backend {
	case "", BackendBadger:
		if opts.Path == "" {
			s, err = OpenInMemory(opts.Logger)
		} else {
			s, err = OpenBadger(opts.Path, opts.Logger)
		}
	case BackendRedis:
		s, err = OpenRedis(ctx, opts.RedisURL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		// never hand back a typed nil Store
		return nil, err
	}
	return s, nil
}
