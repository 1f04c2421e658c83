// Package vestaboard is a client for the Vestaboard Read/Write API.
package vestaboard

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
	DefaultURL = "https://rw.vestaboard.com/"

	opSend = "send"
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

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		httpClient: xhttp.NewHTTPClient(),
		url:        DefaultURL,
		apiKey:     apiKey,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Ack is the display service's acknowledgement. Fields beyond StatusCode are
// best effort: any 2xx counts as delivered even if the body is unexpected.
type Ack struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	ID         string `json:"id"`
	Created    int64  `json:"created"`
}

type textMessage struct {
	Text string `json:"text"`
}

// Send replaces the board contents with grid.
func (c *Client) Send(ctx context.Context, grid board.Grid) (*Ack, error) {
	return c.post(ctx, grid)
}

// SendText lets the display service lay out plain text itself.
func (c *Client) SendText(ctx context.Context, text string) (*Ack, error) {
	return c.post(ctx, textMessage{Text: text})
}

func (c *Client) post(ctx context.Context, payload any) (*Ack, error) {
	if c.apiKey == "" {
		return nil, xerrors.Configuration(xerrors.WithOp(opSend), xerrors.WithMessage("missing read/write key"))
	}

	var buf bytes.Buffer
	enc := go_json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, xerrors.Delivery(xerrors.WithOp(opSend), xerrors.WithCause(fmt.Errorf("encoding request: %w", err)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(bytes.TrimRight(buf.Bytes(), "\n")))
	if err != nil {
		return nil, xerrors.Delivery(xerrors.WithOp(opSend), xerrors.WithCause(fmt.Errorf("creating request: %w", err)))
	}
	xhttp.SetRequestHeaderJSON(req)
	xhttp.SetRequestHeaderReadWriteKey(req, c.apiKey)

	logger := xslog.FromContext(ctx)
	logger.InfoContext(ctx, "sending message to display", xslog.RequestGroup(req))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Delivery(
			xerrors.WithOp(opSend),
			xerrors.WithMessage("display service unreachable"),
			xerrors.WithCause(err),
		)
	}
	defer func() { _ = resp.Body.Close() }()

	logger.DebugContext(ctx, "display service responded", xslog.ResponseGroup(resp.StatusCode, time.Since(start)))

	if !xhttp.IsSuccess(resp.StatusCode) {
		return nil, xerrors.Delivery(
			xerrors.WithOp(opSend),
			xerrors.WithMessage("display service rejected message"),
			xerrors.WithStatus(resp.StatusCode),
			xerrors.WithBody(xhttp.ReadExcerpt(resp)),
		)
	}

	ack := &Ack{StatusCode: resp.StatusCode}
	if body, err := io.ReadAll(resp.Body); err == nil && len(bytes.TrimSpace(body)) > 0 {
		if err := go_json.Unmarshal(body, ack); err != nil {
			logger.DebugContext(ctx, "ignoring unexpected acknowledgement body", xslog.Error(err))
		}
	}

	logger.InfoContext(ctx, "display updated", xslog.HTTPStatus(ack.StatusCode))
	return ack, nil
}
