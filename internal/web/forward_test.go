package web

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ai/internal/edit"
	"aura-ai/internal/proxy"
)

func forwardServer(t *testing.T, ed *fakeEditor) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(New(Options{Forward: ed}).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func validBody() string {
	b, _ := json.Marshal(proxy.Request{
		Prompt:      "make it anime",
		ImageBase64: base64.StdEncoding.EncodeToString([]byte("img")),
		MimeType:    "image/png",
	})
	return string(b)
}

func postForward(t *testing.T, ts *httptest.Server, body string) (int, proxy.ErrorResponse, proxy.Response) {
	t.Helper()
	resp, err := ts.Client().Post(ts.URL+"/api/generate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	var e proxy.ErrorResponse
	var ok proxy.Response
	_ = json.Unmarshal(raw, &e)
	_ = json.Unmarshal(raw, &ok)
	return resp.StatusCode, e, ok
}

func TestForwardMethodNotAllowed(t *testing.T) {
	ts := forwardServer(t, &fakeEditor{})

	resp, err := ts.Client().Get(ts.URL + "/api/generate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "POST", resp.Header.Get("Allow"))
}

func TestForwardMissingKeyCheckedFirst(t *testing.T) {
	ts := forwardServer(t, &fakeEditor{off: true})

	status, e, _ := postForward(t, ts, `{}`)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, proxy.MsgMissingKey, e.Error)
	assert.Equal(t, proxy.CodeConfiguration, e.Code)
}

func TestForwardMissingFields(t *testing.T) {
	ed := &fakeEditor{}
	ts := forwardServer(t, ed)

	for _, body := range []string{`{}`, `{"prompt":"x","mimeType":"image/png"}`, `not json`} {
		status, e, _ := postForward(t, ts, body)
		assert.Equal(t, http.StatusBadRequest, status, body)
		assert.Equal(t, proxy.MsgMissingFields, e.Error)
	}
	assert.Zero(t, ed.calls)
}

func TestForwardSuccess(t *testing.T) {
	ts := forwardServer(t, &fakeEditor{})

	status, _, ok := postForward(t, ts, validBody())
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, strings.HasPrefix(ok.ImageURL, "data:image/png;base64,"))
	assert.Nil(t, ok.Text)
}

func TestForwardErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantCode   string
	}{
		{"configuration", edit.ErrConfiguration, 500, proxy.MsgMissingKey, proxy.CodeConfiguration},
		{"upstream status", edit.Upstream(429, "quota"), 429, proxy.MsgUpstreamStatus, proxy.CodeUpstream},
		{"no candidates", edit.ErrNoCandidates, 500, proxy.MsgNoCandidates, proxy.CodeUpstream},
		{"no image", edit.ErrNoImage, 500, proxy.MsgNoImage, proxy.CodeUpstream},
		{"transport", edit.Communication("request", errors.New("refused")), 500, proxy.MsgInternal, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := forwardServer(t, &fakeEditor{err: tt.err})
			status, e, _ := postForward(t, ts, validBody())
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, e.Error)
			assert.Equal(t, tt.wantCode, e.Code)
		})
	}
}

// The proxy client recovers the same error kinds the forwarding service saw.
func TestForwardThroughProxyClient(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"configuration", edit.ErrConfiguration, edit.ErrConfiguration},
		{"upstream", edit.Upstream(503, "overloaded"), edit.ErrUpstream},
		{"no candidates", edit.ErrNoCandidates, edit.ErrNoCandidates},
		{"no image", edit.ErrNoImage, edit.ErrNoImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := forwardServer(t, &fakeEditor{err: tt.err})
			c := proxy.New(proxy.Options{URL: ts.URL + "/api/generate", HTTPClient: ts.Client()})

			_, err := c.EditImage(context.Background(), edit.Image{Data: []byte("img"), MimeType: "image/png"}, "x")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("success", func(t *testing.T) {
		ts := forwardServer(t, &fakeEditor{})
		c := proxy.New(proxy.Options{URL: ts.URL + "/api/generate", HTTPClient: ts.Client()})

		res, err := c.EditImage(context.Background(), edit.Image{Data: []byte("img"), MimeType: "image/png"}, "x")
		require.NoError(t, err)
		assert.NotEmpty(t, res.ImageURL)
	})
}
