package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/enetx/automaton/store"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestRedis_Contract(t *testing.T) {
	_, client := newMiniredis(t)
	runContract(t, store.NewRedisFromClient(client))
}

func TestRedis_Prefix(t *testing.T) {
	mr, client := newMiniredis(t)

	s := store.NewRedisFromClient(client, store.WithPrefix("custom:app:"))
	require.NoError(t, s.Save(context.Background(), "machine", sampleDocument(t)))

	assert.True(t, mr.Exists("custom:app:doc:machine"), "Expected key with custom prefix to exist")
	assert.True(t, mr.Exists("custom:app:index"), "Expected index with custom prefix to exist")
}

func TestRedis_TTL(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()

	s := store.NewRedisFromClient(client, store.WithTTL(time.Second))
	require.NoError(t, s.Save(ctx, "machine", sampleDocument(t)))

	_, err := s.Load(ctx, "machine")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	_, err = s.Load(ctx, "machine")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRedis_CorruptDocument(t *testing.T) {
	mr, client := newMiniredis(t)

	require.NoError(t, mr.Set("automaton:doc:broken", "{"))

	_, err := store.NewRedisFromClient(client).Load(context.Background(), "broken")
	assert.ErrorContains(t, err, "failed to decode document")
}

func TestRedis_DocumentNamedIndex(t *testing.T) {
	mr, client := newMiniredis(t)
	ctx := context.Background()

	s := store.NewRedisFromClient(client)
	require.NoError(t, s.Save(ctx, "alpha", sampleDocument(t)))
	require.NoError(t, s.Save(ctx, "index", sampleDocument(t)))

	assert.True(t, mr.Exists("automaton:doc:index"))

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "index"}, names)
}
