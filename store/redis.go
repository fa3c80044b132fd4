package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/enetx/automaton"
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
	backend "github.com/redis/go-redis/v9"
)

const defaultPrefix = "automaton:"

// Redis implements Store using Redis. Each document is a JSON string under
// prefix+"doc:"+name; a sorted set at prefix+"index" indexes the stored names.
type Redis struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Redis)

// WithTTL sets the expiration of saved documents.
func WithTTL(ttl time.Duration) Option {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// WithPrefix sets the key prefix for documents.
func WithPrefix(prefix string) Option {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// NewRedis creates a Redis store connected to address.
func NewRedis(address, password string, db int, opts ...Option) *Redis {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})

	return NewRedisFromClient(client, opts...)
}

// NewRedisFromClient creates a Redis store from an existing client.
func NewRedisFromClient(client *backend.Client, opts ...Option) *Redis {
	r := &Redis{
		client: client,
		prefix: defaultPrefix,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Redis) key(name string) string {
	return r.prefix + "doc:" + name
}

func (r *Redis) indexKey() string {
	return r.prefix + "index"
}

// Save stores doc as JSON and records its name in the index.
func (r *Redis) Save(ctx context.Context, name string, doc *automaton.Document) error {
	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	// Score = expiry time; documents without TTL never expire.
	score := float64(time.Now().Add(r.ttl).Unix())
	if r.ttl == 0 {
		score = 4102444800
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(name), data, r.ttl)
	pipe.ZAdd(ctx, r.indexKey(), backend.Z{Score: score, Member: name})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}

	return nil
}

// Load retrieves and decodes the document.
func (r *Redis) Load(ctx context.Context, name string) (*automaton.Document, error) {
	val, err := r.client.Get(ctx, r.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	doc, err := decode(val)
	if err != nil {
		return nil, fmt.Errorf("failed to decode document %q: %w", name, err)
	}

	return doc, nil
}

// Delete removes the document and its index entry.
func (r *Redis) Delete(ctx context.Context, name string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(name))
	pipe.ZRem(ctx, r.indexKey(), name)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}

	return nil
}

// List prunes expired names from the index and returns the rest.
func (r *Redis) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	err := r.client.ZRemRangeByScore(ctx, r.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired documents: %w", err)
	}

	members, err := r.client.ZRange(ctx, r.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	names := g.Slice[string](members)
	names.SortBy(cmp.Cmp)

	return names, nil
}

// Close closes the redis client.
func (r *Redis) Close() error {
	return r.client.Close()
}
