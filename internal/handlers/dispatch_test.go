package handlers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ai/internal/mediagroup"
)

func TestDispatcherWorkOutlivesCallerContext(t *testing.T) {
	d := NewDispatcher(2, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	release := make(chan struct{})
	var alive atomic.Bool
	require.True(t, d.Go(ctx, func(ctx context.Context) {
		<-release
		alive.Store(ctx.Err() == nil)
	}))

	cancel()
	close(release)
	d.Wait()
	assert.True(t, alive.Load())
}

func TestDispatcherRejectsWhenFullAndCancelled(t *testing.T) {
	d := NewDispatcher(1, 0)
	release := make(chan struct{})
	require.True(t, d.Go(context.Background(), func(context.Context) { <-release }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, d.Go(ctx, func(context.Context) { t.Error("must not run") }))

	close(release)
	d.Wait()
}

func TestDispatcherAppliesTimeout(t *testing.T) {
	d := NewDispatcher(1, 10*time.Millisecond)
	var deadline atomic.Bool
	d.Go(context.Background(), func(ctx context.Context) {
		_, ok := ctx.Deadline()
		deadline.Store(ok)
	})
	d.Wait()
	assert.True(t, deadline.Load())
}

// Shutdown order used by the bot: the update context is already cancelled
// when the aggregator is stopped, and the flushed album must still upload.
func TestShutdownFlushesPendingAlbum(t *testing.T) {
	h, bot, svc := newTestHandler(t, fakeEditor{})
	d := NewDispatcher(2, time.Minute)

	ag := mediagroup.New(mediagroup.Options{
		Debounce: time.Hour,
		OnFlush: func(g mediagroup.Group) {
			d.Go(context.Background(), func(ctx context.Context) { h.HandleMediaGroup(ctx, g) })
		},
	})
	h.SetMediaGroupAggregator(ag)

	ctx, cancel := context.WithCancel(context.Background())
	update := photo()
	update.Message.MediaGroupID = "album-1"
	require.NoError(t, h.HandleUpdate(ctx, update))
	assert.Equal(t, 1, ag.Pending())

	cancel()
	ag.Stop()
	d.Wait()

	st, err := svc.Get(context.Background(), sessionID(testChat, testUser))
	require.NoError(t, err)
	assert.NotNil(t, st.Image)
	assert.Contains(t, bot.texts, "Photo received. Pick your styles.")
}
