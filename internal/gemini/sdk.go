package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"google.golang.org/genai"

	"aura-ai/internal/edit"
	"aura-ai/internal/imaging"
)

// SDKEditor is the same edit capability over the official genai SDK. The
// SDK client is created on first use so a missing key surfaces per call.
type SDKEditor struct {
	apiKey     string
	baseURL    string
	apiVersion string
	model      string
	httpClient *http.Client
	logger     *slog.Logger

	mu     sync.Mutex
	client *genai.Client
}

func NewSDK(opts Options) *SDKEditor {
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &SDKEditor{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiVersion: strings.TrimSpace(opts.APIVersion),
		model:      model,
		httpClient: opts.HTTPClient,
		logger:     logger,
	}
}

func (e *SDKEditor) Configured() bool {
	return e.apiKey != ""
}

func (e *SDKEditor) EditImage(ctx context.Context, img edit.Image, instruction string) (edit.Result, error) {
	client, err := e.genaiClient(ctx)
	if err != nil {
		return edit.Result{}, err
	}

	parts := []*genai.Part{
		genai.NewPartFromBytes(img.Data, img.MimeType),
		genai.NewPartFromText(instruction),
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		e.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		&genai.GenerateContentConfig{
			ResponseModalities: responseModalities,
		},
	)
	if err != nil {
		return edit.Result{}, classifySDKError(err)
	}
	return parseSDKResponse(resp)
}

func (e *SDKEditor) genaiClient(ctx context.Context) (*genai.Client, error) {
	if e.apiKey == "" {
		return nil, edit.ErrConfiguration
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client != nil {
		return e.client, nil
	}

	cfg := &genai.ClientConfig{
		APIKey:     e.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: e.httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    e.baseURL,
			APIVersion: e.apiVersion,
		},
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %w", edit.ErrConfiguration, err)
	}
	e.client = client
	return client, nil
}

func classifySDKError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return edit.Upstream(apiErr.Code, apiErr.Message)
	}
	return edit.Communication("generate content", err)
}

func parseSDKResponse(resp *genai.GenerateContentResponse) (edit.Result, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return edit.Result{}, fmt.Errorf("%w: blocked: %s", edit.ErrNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return edit.Result{}, edit.ErrNoCandidates
	}

	cand := resp.Candidates[0]
	var (
		imageURL string
		text     strings.Builder
	)
	if cand.Content != nil {
		for _, p := range cand.Content.Parts {
			if p == nil {
				continue
			}
			if p.Text != "" {
				text.WriteString(p.Text)
			}
			if imageURL == "" && p.InlineData != nil && len(p.InlineData.Data) > 0 {
				mime := p.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				imageURL = imaging.DataURLBase64(mime, base64.StdEncoding.EncodeToString(p.InlineData.Data))
			}
		}
	}

	if imageURL == "" {
		if cand.FinishReason != "" && cand.FinishReason != genai.FinishReasonStop {
			return edit.Result{}, fmt.Errorf("%w: finish reason %s", edit.ErrNoImage, cand.FinishReason)
		}
		return edit.Result{}, edit.ErrNoImage
	}

	res := edit.Result{ImageURL: imageURL}
	if s := strings.TrimSpace(text.String()); s != "" {
		res.Text = &s
	}
	return res, nil
}

var _ edit.Editor = (*SDKEditor)(nil)
