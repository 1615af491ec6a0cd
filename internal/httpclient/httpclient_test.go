package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, 180*time.Second, c.Timeout)

	tr, ok := c.Transport.(*http.Transport)
	require.True(t, ok)
	assert.GreaterOrEqual(t, tr.MaxIdleConnsPerHost, MinConnsPerHost)
	assert.GreaterOrEqual(t, tr.MaxConnsPerHost, MinConnsPerHost)
}

func TestNewHonoursOptions(t *testing.T) {
	c := New(Options{Timeout: time.Second, MaxConnsPerHost: 10})
	assert.Equal(t, time.Second, c.Timeout)

	tr := c.Transport.(*http.Transport)
	assert.Equal(t, 10, tr.MaxIdleConnsPerHost)
}
