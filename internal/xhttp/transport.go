package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/lyricboard/internal/version"
)

type lyricboardTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*lyricboardTransport)(nil)

func (t *lyricboardTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())
	req.Header.Set(UserAgent, version.UserAgent())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard lyricboard headers.
func NewTransport() http.RoundTripper {
	return &lyricboardTransport{base: http.DefaultTransport}
}
