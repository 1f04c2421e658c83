// Package vbml is a client for the Vestaboard VBML compose service, which
// lays text out on the board and returns the resulting character codes.
package vbml

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/lyricboard/internal/board"
	"github.com/garrettladley/lyricboard/internal/xerrors"
	"github.com/garrettladley/lyricboard/internal/xhttp"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

const (
	DefaultURL = "https://vbml.vestaboard.com/compose"

	opFormat = "format"
)

type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) { client.httpClient = c }
}

func WithURL(url string) Option {
	return func(client *Client) { client.url = url }
}

// WithAPIKey sends the Read/Write key along with compose requests.
func WithAPIKey(key string) Option {
	return func(client *Client) { client.apiKey = key }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: xhttp.NewHTTPClient(),
		url:        DefaultURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format composes text centered on the board and returns the grid.
func (c *Client) Format(ctx context.Context, text string) (board.Grid, error) {
	payload, err := encode(NewComposeRequest(text))
	if err != nil {
		return board.Grid{}, xerrors.Formatting(xerrors.WithOp(opFormat), xerrors.WithCause(err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return board.Grid{}, xerrors.Formatting(xerrors.WithOp(opFormat), xerrors.WithCause(fmt.Errorf("creating request: %w", err)))
	}
	xhttp.SetRequestHeaderJSON(req)
	if c.apiKey != "" {
		xhttp.SetRequestHeaderReadWriteKey(req, c.apiKey)
	}

	logger := xslog.FromContext(ctx)
	logger.InfoContext(ctx, "formatting lyric", xslog.Lyric(text), xslog.RequestGroup(req))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return board.Grid{}, xerrors.Formatting(
			xerrors.WithOp(opFormat),
			xerrors.WithMessage("formatting service unreachable"),
			xerrors.WithCause(err),
		)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.DebugContext(ctx, "formatting service responded", xslog.ResponseGroup(resp.StatusCode, time.Since(start)))

	if !xhttp.IsSuccess(resp.StatusCode) {
		return board.Grid{}, xerrors.Formatting(
			xerrors.WithOp(opFormat),
			xerrors.WithMessage("formatting service rejected lyric"),
			xerrors.WithStatus(resp.StatusCode),
			xerrors.WithBody(xhttp.ReadExcerpt(resp)),
		)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return board.Grid{}, xerrors.Formatting(
			xerrors.WithOp(opFormat),
			xerrors.WithStatus(resp.StatusCode),
			xerrors.WithCause(fmt.Errorf("reading response: %w", err)),
		)
	}

	grid, err := board.Decode(body)
	if err != nil {
		return board.Grid{}, xerrors.Formatting(
			xerrors.WithOp(opFormat),
			xerrors.WithMessage("malformed grid"),
			xerrors.WithStatus(resp.StatusCode),
			xerrors.WithBody(xhttp.Excerpt(string(body))),
			xerrors.WithCause(err),
		)
	}

	logger.InfoContext(ctx, "formatted lyric", xslog.Rows(board.Rows))
	return grid, nil
}

// encode keeps characters like & and < literal, as lyrics often contain them.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := go_json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
