package session

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ai/internal/edit"
)

// Runs against a live server when AURA_TEST_REDIS_ADDR is set.
func newTestRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	addr := os.Getenv("AURA_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("AURA_TEST_REDIS_ADDR not set")
	}
	rdb, err := Connect(context.Background(), RedisOptions{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, Options{TTL: time.Minute})
}

func TestRedisKey(t *testing.T) {
	assert.Equal(t, "aura:session:abc", redisKey("abc"))
}

func TestDecodeStateRejectsGarbage(t *testing.T) {
	_, err := decodeState([]byte("{not json"))
	assert.Error(t, err)
}

func TestRedisStoreLifecycle(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()
	id := uuid.NewString()
	t.Cleanup(func() { _ = s.Delete(ctx, id) })

	require.NoError(t, s.Create(ctx, New(id)))
	assert.ErrorIs(t, s.Create(ctx, New(id)), ErrExists)

	st, err := s.Update(ctx, id, func(st *State) error {
		st.Upload(edit.Image{Data: []byte{1, 2, 3}, MimeType: "image/png"}, "p.png")
		return st.ToggleStyle("anime", time.Now(), time.Second)
	})
	require.NoError(t, err)
	assert.Equal(t, PhaseCustomizing, st.Phase)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got.Image)
	assert.Equal(t, []byte{1, 2, 3}, got.Image.Data)
	assert.Equal(t, []string{"anime"}, []string(got.Selected))

	boom := errors.New("boom")
	_, err = s.Update(ctx, id, func(st *State) error {
		st.CustomPrompt = "lost"
		return boom
	})
	assert.ErrorIs(t, err, boom)
	got, _ = s.Get(ctx, id)
	assert.Empty(t, got.CustomPrompt)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreConcurrentUpdates(t *testing.T) {
	s := newTestRedisStore(t)
	ctx := context.Background()
	id := uuid.NewString()
	t.Cleanup(func() { _ = s.Delete(ctx, id) })
	require.NoError(t, s.Create(ctx, New(id)))

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, id, func(st *State) error {
				st.Epoch++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.Epoch)
}
