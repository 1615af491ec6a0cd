package proxy

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
)

type Options struct {
	URL        string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client implements edit.Editor against a forwarding service, so the model
// credential never has to live next to the caller.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        strings.TrimSpace(opts.URL),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) Configured() bool {
	return c.url != ""
}

func (c *Client) EditImage(ctx context.Context, img edit.Image, instruction string) (edit.Result, error) {
	if c.url == "" {
		return edit.Result{}, fmt.Errorf("%w: proxy url is empty", edit.ErrConfiguration)
	}

	body, err := json.Marshal(Request{
		Prompt:      instruction,
		ImageBase64: base64.StdEncoding.EncodeToString(img.Data),
		MimeType:    img.MimeType,
	})
	if err != nil {
		return edit.Result{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return edit.Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return edit.Result{}, edit.Communication("proxy request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return edit.Result{}, edit.Communication("read proxy response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e ErrorResponse
		if err := json.Unmarshal(raw, &e); err != nil {
			// a gateway in front of the service may answer with HTML or plain text
			msg := strings.TrimSpace(string(raw))
			if len(msg) > 200 {
				msg = msg[:200]
			}
			c.logger.Warn("proxy returned non-JSON error", "status", resp.StatusCode)
			return edit.Result{}, edit.Upstream(resp.StatusCode, msg)
		}
		c.logger.Warn("proxy returned error", "status", resp.StatusCode, "code", e.Code, "error", e.Error)
		return edit.Result{}, errorFor(resp.StatusCode, e)
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return edit.Result{}, edit.Communication("decode proxy response", err)
	}
	if out.ImageURL == "" {
		return edit.Result{}, edit.ErrNoImage
	}
	return edit.Result{ImageURL: out.ImageURL, Text: out.Text}, nil
}

func errorFor(status int, e ErrorResponse) error {
	switch {
	case e.Code == CodeConfiguration:
		return fmt.Errorf("%w: %s", edit.ErrConfiguration, e.Error)
	case e.Error == MsgNoCandidates:
		return edit.ErrNoCandidates
	case e.Error == MsgNoImage:
		return edit.ErrNoImage
	default:
		return edit.Upstream(status, e.Error)
	}
}

var _ edit.Editor = (*Client)(nil)
