// Package redis provides a Blackboard adapter backed by Redis, for
// trees whose entries must be visible to observers in other processes
// (dashboards, sibling workers sharing one data plane).
//
// Entries round-trip through their textual form, so reads surface as
// strings and port resolution applies its string-conversion path. Keys
// live under a tree-scoped prefix; Clear removes only that prefix.
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/arbor/internal/logging"
)

const defaultPrefix = "arbor:bb:"

// Blackboard implements ports.Blackboard using Redis.
type Blackboard struct {
	client  *backend.Client
	prefix  string
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures the Blackboard.
type Option func(*Blackboard)

// WithPrefix sets the key prefix, scoping this blackboard to one tree.
func WithPrefix(prefix string) Option {
	return func(b *Blackboard) {
		b.prefix = prefix
	}
}

// WithTimeout bounds each Redis round-trip. Port resolution has no
// context parameter, so the adapter owns the deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(b *Blackboard) {
		b.timeout = timeout
	}
}

// WithLogger sets the logger for transport errors. Transport failures
// surface to the core as misses; the log line is the only trace.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Blackboard) {
		b.logger = logger
	}
}

// New creates a Redis blackboard with its own client.
func New(address, password string, db int, opts ...Option) *Blackboard {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis blackboard from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Blackboard {
	b := &Blackboard{
		client:  client,
		prefix:  defaultPrefix,
		timeout: 2 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Blackboard) key(k string) string {
	return b.prefix + k
}

func (b *Blackboard) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), b.timeout)
}

// Get returns the entry stored under key. Transport errors are logged
// and reported as a miss.
func (b *Blackboard) Get(key string) (any, bool) {
	ctx, cancel := b.ctx()
	defer cancel()

	val, err := b.client.Get(ctx, b.key(key)).Result()
	if err != nil {
		if err != backend.Nil {
			b.logger.Error("blackboard get failed", "key", key, "err", err)
		}
		return nil, false
	}
	return val, true
}

// Set stores the textual form of value under key.
func (b *Blackboard) Set(key string, value any) {
	ctx, cancel := b.ctx()
	defer cancel()

	if err := b.client.Set(ctx, b.key(key), fmt.Sprint(value), 0).Err(); err != nil {
		b.logger.Error("blackboard set failed", "key", key, "err", err)
	}
}

// Keys returns the keys under this blackboard's prefix.
func (b *Blackboard) Keys() []string {
	ctx, cancel := b.ctx()
	defer cancel()

	var keys []string
	iter := b.client.Scan(ctx, 0, b.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), b.prefix))
	}
	if err := iter.Err(); err != nil {
		b.logger.Error("blackboard scan failed", "err", err)
	}
	return keys
}

// Clear removes every entry under this blackboard's prefix.
func (b *Blackboard) Clear() {
	ctx, cancel := b.ctx()
	defer cancel()

	iter := b.client.Scan(ctx, 0, b.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := b.client.Del(ctx, iter.Val()).Err(); err != nil {
			b.logger.Error("blackboard delete failed", "key", iter.Val(), "err", err)
		}
	}
	if err := iter.Err(); err != nil {
		b.logger.Error("blackboard scan failed", "err", err)
	}
}
