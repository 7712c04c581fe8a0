package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/molpadia/molpashow/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// Every backend must behave the same for the repository built on top of it.
func testKeyValueStore(t *testing.T, s repository.KeyValueStore) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "videoData")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, s.Set(ctx, "videoData", []byte(`{"title":"first"}`)))
	got, err := s.Get(ctx, "videoData")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"first"}`, string(got))

	require.NoError(t, s.Set(ctx, "videoData", []byte(`{"title":"second"}`)))
	got, err = s.Get(ctx, "videoData")
	require.NoError(t, err)
	assert.Equal(t, `{"title":"second"}`, string(got))

	require.NoError(t, s.Set(ctx, "other", []byte("x")))
	require.NoError(t, s.Delete(ctx, "videoData"))
	_, err = s.Get(ctx, "videoData")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	got, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "x", string(got))

	assert.NoError(t, s.Delete(ctx, "videoData"), "deleting an unset key")
}

func TestMemoryStore(t *testing.T) {
	testKeyValueStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	got[1] = 'z'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "store.json"), zaptest.NewLogger(t))
	require.NoError(t, err)
	testKeyValueStore(t, s)
}

func TestFileStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	s, err := NewFileStore(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "videoData", []byte(`{"id":"1"}`)))

	reopened, err := NewFileStore(path, zaptest.NewLogger(t))
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "videoData")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, string(got))
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	defer s.Close()
	testKeyValueStore(t, s)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := DialRedis(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer s.Close()
	testKeyValueStore(t, s)

	require.NoError(t, s.Set(context.Background(), "videoData", []byte("v")))
	assert.Zero(t, mr.TTL("videoData"), "values must not expire")
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer s.Close()
	mr.Close()

	_, err = s.Get(context.Background(), "videoData")
	var serr *StoreError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "redis", serr.Backend)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestDialRedisUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	_, err = DialRedis(context.Background(), addr, "", 0)
	assert.Error(t, err)
}
