package xslog

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const (
	groupRequest  = "request"
	groupResponse = "response"
	groupError    = "error"
)

const (
	keyMethod     = "method"
	keyHost       = "host"
	keyPath       = "path"
	keyStatusText = "status_text"
	keyDurationMS = "duration_ms"
	keyMessage    = "message"
	keyType       = "type"
)

// RequestGroup describes an outbound request. Headers are omitted so the
// credential never reaches the log.
func RequestGroup(r *http.Request) slog.Attr {
	return slog.Group(groupRequest,
		slog.String(keyMethod, r.Method),
		slog.String(keyHost, r.URL.Host),
		slog.String(keyPath, r.URL.Path),
	)
}

func ResponseGroup(status int, duration time.Duration) slog.Attr {
	return slog.Group(groupResponse,
		HTTPStatus(status),
		slog.String(keyStatusText, http.StatusText(status)),
		Duration(duration),
		slog.Int64(keyDurationMS, duration.Milliseconds()),
	)
}

func ErrorGroup(err error) slog.Attr {
	if err == nil {
		return slog.Group(groupError)
	}
	return slog.Group(groupError,
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	)
}
