package main

import (
	"context"
	"net/http"

	"github.com/garrettladley/lyricboard/internal/client/sheets"
	"github.com/garrettladley/lyricboard/internal/client/vbml"
	"github.com/garrettladley/lyricboard/internal/client/vestaboard"
	"github.com/garrettladley/lyricboard/internal/config"
	"github.com/garrettladley/lyricboard/internal/dispatch"
	"github.com/garrettladley/lyricboard/internal/lyrics"
	"github.com/garrettladley/lyricboard/internal/xhttp"
	"github.com/garrettladley/lyricboard/internal/xslog"
)

func newDispatcher(ctx context.Context, cfg config.Config) *dispatch.Dispatcher {
	httpClient := xhttp.NewHTTPClient(xhttp.WithTimeout(cfg.HTTPTimeout))
	apiKey := cfg.APIKey.Reveal()

	formatter := vbml.NewClient(
		vbml.WithURL(cfg.VBMLURL),
		vbml.WithHTTPClient(httpClient),
		vbml.WithAPIKey(apiKey),
	)
	display := vestaboard.NewClient(apiKey,
		vestaboard.WithURL(cfg.DisplayURL),
		vestaboard.WithHTTPClient(httpClient),
	)

	return dispatch.New(newSelector(ctx, cfg, httpClient), formatter, display)
}

// newSelector uses the sheet when it is fully configured. A sheet that
// cannot be set up is reported and the static lyrics are used instead.
func newSelector(ctx context.Context, cfg config.Config, httpClient *http.Client) *lyrics.Selector {
	if !cfg.Sheet.Enabled() {
		return lyrics.NewSelector(lyrics.Static)
	}

	src, err := sheets.NewFromCredentialsFile(ctx, httpClient, cfg.Sheet.CredentialsFile, cfg.Sheet.ID, cfg.Sheet.Range)
	if err != nil {
		xslog.FromContext(ctx).WarnContext(ctx, "lyric sheet unavailable, using static lyrics", xslog.Error(err))
		return lyrics.NewSelector(lyrics.Static)
	}

	return lyrics.NewSelector(lyrics.Static, lyrics.WithPrimary(src))
}
