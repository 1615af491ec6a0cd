package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"aura-ai/internal/edit"
	"aura-ai/internal/imaging"
)

const DefaultModel = "gemini-2.5-flash-image-preview"

var responseModalities = []string{"IMAGE", "TEXT"}

type Options struct {
	APIKey     string
	BaseURL    string
	APIVersion string
	Model      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client calls the generateContent REST endpoint directly.
type Client struct {
	apiKey     string
	baseURL    string
	apiVersion string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}

	apiVersion := strings.TrimSpace(opts.APIVersion)
	if apiVersion == "" {
		apiVersion = "v1beta"
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = DefaultModel
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		apiVersion: apiVersion,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) Model() string {
	return c.model
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// EditImage sends the image and one instruction and returns the first image
// part of the first candidate as a data URL.
func (c *Client) EditImage(ctx context.Context, img edit.Image, instruction string) (edit.Result, error) {
	if c.apiKey == "" {
		return edit.Result{}, edit.ErrConfiguration
	}

	req := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &blob{MimeType: img.MimeType, Data: base64.StdEncoding.EncodeToString(img.Data)}},
				{Text: instruction},
			},
		}},
		GenerationConfig: generationConfig{ResponseModalities: responseModalities},
	}

	resp, err := c.generateContent(ctx, req)
	if err != nil {
		return edit.Result{}, err
	}
	return extractResult(resp)
}

func (c *Client) generateContent(ctx context.Context, payload generateContentRequest) (generateContentResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return generateContentResponse{}, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/models/%s:generateContent", c.baseURL, c.apiVersion, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return generateContentResponse{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return generateContentResponse{}, edit.Communication("request", err)
	}
	defer httpResp.Body.Close()

	rawBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return generateContentResponse{}, edit.Communication("read response", err)
	}

	if httpResp.StatusCode >= 400 {
		msg := apiErrorMessage(rawBody)
		c.logger.Warn("gemini API error", "status", httpResp.StatusCode, "model", c.model, "message", msg)
		return generateContentResponse{}, edit.Upstream(httpResp.StatusCode, msg)
	}

	var decoded generateContentResponse
	if err := json.Unmarshal(rawBody, &decoded); err != nil {
		return generateContentResponse{}, edit.Communication("decode response", err)
	}
	return decoded, nil
}

func extractResult(resp generateContentResponse) (edit.Result, error) {
	if len(resp.Candidates) == 0 {
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			return edit.Result{}, fmt.Errorf("%w: blocked: %s", edit.ErrNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return edit.Result{}, edit.ErrNoCandidates
	}

	var (
		imageURL string
		text     strings.Builder
	)
	for _, p := range resp.Candidates[0].Content.Parts {
		if p.Text != "" {
			text.WriteString(p.Text)
		}
		if imageURL == "" && p.InlineData != nil && p.InlineData.Data != "" {
			mime := p.InlineData.MimeType
			if mime == "" {
				mime = "image/png"
			}
			imageURL = imaging.DataURLBase64(mime, p.InlineData.Data)
		}
	}

	if imageURL == "" {
		if reason := resp.Candidates[0].FinishReason; reason != "" && reason != "STOP" {
			return edit.Result{}, fmt.Errorf("%w: finish reason %s", edit.ErrNoImage, reason)
		}
		return edit.Result{}, edit.ErrNoImage
	}

	res := edit.Result{ImageURL: imageURL}
	if s := strings.TrimSpace(text.String()); s != "" {
		res.Text = &s
	}
	return res, nil
}

func apiErrorMessage(raw []byte) string {
	var decoded apiErrorResponse
	if err := json.Unmarshal(raw, &decoded); err == nil && decoded.Error.Message != "" {
		return decoded.Error.Message
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return msg
}

var _ edit.Editor = (*Client)(nil)
