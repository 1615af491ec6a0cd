package gemini

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"aura-ai/internal/edit"
)

func TestSDKEditorMissingKey(t *testing.T) {
	e := NewSDK(Options{})
	_, err := e.EditImage(context.Background(), testImage, "x")
	assert.ErrorIs(t, err, edit.ErrConfiguration)
}

func TestParseSDKResponse(t *testing.T) {
	t.Run("image and text", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{Text: "done"},
					{InlineData: &genai.Blob{Data: []byte("x"), MIMEType: "image/webp"}},
				}},
			}},
		}
		res, err := parseSDKResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, "data:image/webp;base64,eA==", res.ImageURL)
		require.NotNil(t, res.Text)
		assert.Equal(t, "done", *res.Text)
	})

	t.Run("image only", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{Parts: []*genai.Part{
					{InlineData: &genai.Blob{Data: []byte("x")}},
				}},
			}},
		}
		res, err := parseSDKResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, "data:image/png;base64,eA==", res.ImageURL)
		assert.Nil(t, res.Text)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, err := parseSDKResponse(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, edit.ErrNoCandidates)
		_, err = parseSDKResponse(nil)
		assert.ErrorIs(t, err, edit.ErrNoCandidates)
	})

	t.Run("no image", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []*genai.Part{{Text: "no"}}}}},
		}
		_, err := parseSDKResponse(resp)
		assert.ErrorIs(t, err, edit.ErrNoImage)
	})
}

func TestClassifySDKError(t *testing.T) {
	err := classifySDKError(genai.APIError{Code: 503, Message: "overloaded"})
	assert.ErrorIs(t, err, edit.ErrUpstream)
	assert.Contains(t, err.Error(), "503")

	err = classifySDKError(errors.New("dial tcp: connection refused"))
	assert.ErrorIs(t, err, edit.ErrCommunication)
}
