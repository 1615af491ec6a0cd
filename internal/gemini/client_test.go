package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aura-ai/internal/edit"
	"aura-ai/internal/imaging"
)

var testImage = edit.Image{Data: []byte{0xff, 0xd8, 0xff, 0xe0}, MimeType: "image/jpeg"}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{APIKey: "test-key", BaseURL: srv.URL, HTTPClient: srv.Client()})
}

func TestEditImageSuccess(t *testing.T) {
	png := []byte("fake-png")
	var got generateContentRequest

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/"+DefaultModel+":generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[
			{"text":"Here you go"},
			{"inlineData":{"mimeType":"image/png","data":"`+base64.StdEncoding.EncodeToString(png)+`"}}
		]}}]}`)
	})

	res, err := c.EditImage(context.Background(), testImage, "make it anime")
	require.NoError(t, err)

	mime, data, err := imaging.ParseDataURL(res.ImageURL, "")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, png, data)
	require.NotNil(t, res.Text)
	assert.Equal(t, "Here you go", *res.Text)

	require.Len(t, got.Contents, 1)
	parts := got.Contents[0].Parts
	require.Len(t, parts, 2)
	require.NotNil(t, parts[0].InlineData)
	assert.Equal(t, "image/jpeg", parts[0].InlineData.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(testImage.Data), parts[0].InlineData.Data)
	assert.Equal(t, "make it anime", parts[1].Text)
	assert.Equal(t, []string{"IMAGE", "TEXT"}, got.GenerationConfig.ResponseModalities)
}

func TestEditImageWireCasing(t *testing.T) {
	var raw map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&raw)
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"eA=="}}]}}]}`)
	})

	_, err := c.EditImage(context.Background(), testImage, "x")
	require.NoError(t, err)

	assert.Contains(t, raw, "generationConfig")
	assert.NotContains(t, raw, "generation_config")
	parts := raw["contents"].([]any)[0].(map[string]any)["parts"].([]any)
	assert.Contains(t, parts[0].(map[string]any), "inlineData")
}

func TestEditImageErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"upstream status", http.StatusTooManyRequests, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, edit.ErrUpstream},
		{"no candidates", http.StatusOK, `{"candidates":[]}`, edit.ErrNoCandidates},
		{"blocked", http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`, edit.ErrNoCandidates},
		{"no image", http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"sorry"}]}}]}`, edit.ErrNoImage},
		{"empty parts", http.StatusOK, `{"candidates":[{"content":{"parts":[]},"finishReason":"IMAGE_SAFETY"}]}`, edit.ErrNoImage},
		{"malformed", http.StatusOK, `{"candidates":`, edit.ErrCommunication},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			res, err := c.EditImage(context.Background(), testImage, "x")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, res.ImageURL)
		})
	}
}

func TestEditImageUpstreamMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"code":400,"message":"API key not valid"}}`)
	})

	_, err := c.EditImage(context.Background(), testImage, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestEditImageMissingKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL, HTTPClient: srv.Client()})
	_, err := c.EditImage(context.Background(), testImage, "x")
	assert.ErrorIs(t, err, edit.ErrConfiguration)
	assert.False(t, called)
}

func TestEditImageTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(Options{APIKey: "k", BaseURL: srv.URL, HTTPClient: srv.Client()})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.EditImage(ctx, testImage, "x")
	assert.ErrorIs(t, err, edit.ErrCommunication)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCustomModel(t *testing.T) {
	var path string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"eA=="}}]}}]}`)
	})
	c.model = "gemini-2.5-flash-image"

	_, err := c.EditImage(context.Background(), testImage, "x")
	require.NoError(t, err)
	assert.Equal(t, "/v1beta/models/gemini-2.5-flash-image:generateContent", path)
	assert.Equal(t, "gemini-2.5-flash-image", c.Model())
}
