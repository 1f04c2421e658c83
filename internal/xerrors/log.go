package xerrors

import (
	"context"
	"log/slog"

	"github.com/garrettladley/lyricboard/internal/xslog"
)

const (
	keyKind    = "kind"
	keyOp      = "op"
	keyMessage = "message"
	keyBody    = "body"
)

// Log writes err at error level with enough context (kind, status, body
// excerpt) to diagnose a failed run from its logs alone.
func Log(ctx context.Context, err error) {
	logger := xslog.FromContext(ctx)

	appErr := As(err)
	if appErr == nil {
		logger.ErrorContext(ctx, "run failed", xslog.ErrorGroup(err))
		return
	}

	attrs := []any{
		slog.String(keyKind, string(appErr.Kind)),
	}
	if appErr.Op != "" {
		attrs = append(attrs, slog.String(keyOp, appErr.Op))
	}
	if appErr.Message != "" {
		attrs = append(attrs, slog.String(keyMessage, appErr.Message))
	}
	if appErr.StatusCode != 0 {
		attrs = append(attrs, xslog.HTTPStatus(appErr.StatusCode))
	}
	if appErr.Body != "" {
		attrs = append(attrs, slog.String(keyBody, appErr.Body))
	}
	if appErr.Cause != nil {
		attrs = append(attrs, xslog.Error(appErr.Cause))
	}

	logger.ErrorContext(ctx, string(appErr.Kind)+" failed", attrs...)
}
