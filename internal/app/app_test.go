package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ai/internal/config"
	"aura-ai/internal/gemini"
	"aura-ai/internal/proxy"
	"aura-ai/internal/session"
)

func TestNewEditorByBackend(t *testing.T) {
	hc := &http.Client{}

	ed := NewEditor(config.Config{EditBackend: config.BackendREST}, hc, nil)
	assert.IsType(t, &gemini.Client{}, ed)

	ed = NewEditor(config.Config{EditBackend: config.BackendSDK}, hc, nil)
	assert.IsType(t, &gemini.SDKEditor{}, ed)

	ed = NewEditor(config.Config{EditBackend: config.BackendProxy, ProxyURL: "http://localhost:9/api/generate"}, hc, nil)
	assert.IsType(t, &proxy.Client{}, ed)
}

func TestModelEditorNeverProxies(t *testing.T) {
	ed := NewModelEditor(config.Config{EditBackend: config.BackendProxy}, &http.Client{}, nil)
	assert.IsType(t, &gemini.Client{}, ed)
}

func TestBuildWithMemoryStore(t *testing.T) {
	cfg := config.Config{
		EditBackend:    config.BackendREST,
		SessionBackend: config.SessionMemory,
		MaxConcurrent:  2,
		DefaultLocale:  "vi",
	}

	a, err := Build(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.IsType(t, &session.MemoryStore{}, a.Store)
	assert.Equal(t, "vi", a.Translator.Default())

	st, err := a.Studio.Create(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, session.PhaseIdle, st.Phase)
}

func TestBuildRedisUnreachable(t *testing.T) {
	cfg := config.Config{
		EditBackend:    config.BackendREST,
		SessionBackend: config.SessionRedis,
		RedisAddr:      "127.0.0.1:1",
	}

	_, err := Build(context.Background(), cfg, nil)
	assert.Error(t, err)
}
